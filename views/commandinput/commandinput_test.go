// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commandinput

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prefixSuggester(keys ...string) Suggester {
	return func(input string) []string {
		if strings.TrimSpace(input) == "" {
			return nil
		}
		var out []string
		for _, k := range keys {
			if strings.HasPrefix(k, strings.ToLower(input)) {
				out = append(out, k)
			}
		}
		return out
	}
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func TestSubmitEmitsTrimmedCommand(t *testing.T) {
	m := New("$ ", 50, nil)
	typeText(m, "  about ")

	cmd := m.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, SubmitMsg{Command: "about"}, cmd())

	assert.Equal(t, "", m.Value())
	assert.Equal(t, []string{"about"}, m.History().Entries())
	assert.Equal(t, -1, m.History().Cursor())
}

func TestSubmitEmptyDoesNothing(t *testing.T) {
	m := New("$ ", 50, nil)
	typeText(m, "   ")

	assert.Nil(t, m.Update(key(tea.KeyEnter)))
	assert.Equal(t, 0, m.History().Len())
	assert.Equal(t, "", m.Value())
}

func TestArrowKeysRecallHistory(t *testing.T) {
	m := New("$ ", 50, nil)
	for _, c := range []string{"a", "b", "c"} {
		m.Run(c)
	}

	for i := 0; i < 3; i++ {
		m.Update(key(tea.KeyUp))
	}
	assert.Equal(t, "a", m.Value())
	assert.Equal(t, 2, m.History().Cursor())

	for i := 0; i < 3; i++ {
		m.Update(key(tea.KeyDown))
	}
	assert.Equal(t, "", m.Value())
	assert.Equal(t, -1, m.History().Cursor())
}

func TestSuggestionsFollowInput(t *testing.T) {
	m := New("$ ", 50, prefixSuggester("help", "history", "about"))

	typeText(m, "h")
	assert.Equal(t, []string{"help", "history"}, m.Suggestions())

	typeText(m, "e")
	assert.Equal(t, []string{"help"}, m.Suggestions())

	m.Update(key(tea.KeyBackspace))
	m.Update(key(tea.KeyBackspace))
	assert.Empty(t, m.Suggestions())
}

func TestTabWithSingleMatchCompletes(t *testing.T) {
	m := New("$ ", 50, prefixSuggester("help", "history"))
	typeText(m, "he")

	assert.Nil(t, m.Update(key(tea.KeyTab)))
	assert.Equal(t, "help", m.Value())
	assert.Empty(t, m.Suggestions())
}

func TestTabWithSeveralMatchesReportsThem(t *testing.T) {
	m := New("$ ", 50, prefixSuggester("help", "history"))
	typeText(m, "h")

	cmd := m.Update(key(tea.KeyTab))
	require.NotNil(t, cmd)
	assert.Equal(t, CompletionsMsg{Matches: []string{"help", "history"}}, cmd())
	assert.Equal(t, "h", m.Value(), "input is left alone")
}

func TestTabWithoutMatchesIsNoop(t *testing.T) {
	m := New("$ ", 50, prefixSuggester("help"))
	typeText(m, "zz")
	assert.Nil(t, m.Update(key(tea.KeyTab)))
	assert.Equal(t, "zz", m.Value())
}

func TestCtrlLSubmitsClear(t *testing.T) {
	m := New("$ ", 50, nil)
	typeText(m, "half-typed")

	cmd := m.Update(key(tea.KeyCtrlL))
	require.NotNil(t, cmd)
	assert.Equal(t, SubmitMsg{Command: "clear"}, cmd())
	assert.Equal(t, []string{"clear"}, m.History().Entries())
	assert.Equal(t, "", m.Value())
}

func TestBlurredInputIgnoresKeys(t *testing.T) {
	m := New("$ ", 50, nil)
	m.Blur()
	typeText(m, "abc")
	assert.Equal(t, "", m.Value())

	m.Focus()
	typeText(m, "abc")
	assert.Equal(t, "abc", m.Value())
}

func TestResetClearsHistory(t *testing.T) {
	m := New("$ ", 7, nil)
	m.Run("about")
	typeText(m, "x")

	m.Reset()
	assert.Equal(t, 0, m.History().Len())
	assert.Equal(t, 7, m.History().Cap())
	assert.Equal(t, "", m.Value())
}

func TestViewShowsSuggestions(t *testing.T) {
	m := New("$ ", 50, prefixSuggester("help", "history"))
	typeText(m, "h")
	assert.Contains(t, m.View(), "Suggestions:")
}
