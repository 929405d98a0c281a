// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package confirmdialog

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func open() Model {
	return New(80, 24, "Are you sure you want to exit?").Open()
}

func TestThreeConfirmationsShowGoodbye(t *testing.T) {
	m := open()

	m, cmd := m.Update(runes("y"))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.Clicks())
	assert.Contains(t, m.View(), "Clicks: 1/3")
	assert.Contains(t, m.View(), "2 more clicks required")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "1 more click required")

	m, cmd = m.Update(runes("y"))
	require.NotNil(t, cmd)
	assert.True(t, m.Goodbye())
	assert.Contains(t, m.View(), "Good Bye!!!")

	m, cmd = m.Update(goodbyeDoneMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestOtherKeyResetsCounter(t *testing.T) {
	m := open()
	m, _ = m.Update(runes("y"))
	m, _ = m.Update(runes("y"))
	m, _ = m.Update(runes("x"))
	assert.Equal(t, 0, m.Clicks())
	assert.True(t, m.Visible)
	assert.NotContains(t, m.View(), "Clicks:")
}

func TestCancelClosesAndResets(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("n"), {Type: tea.KeyEsc}} {
		m := open()
		m, _ = m.Update(runes("y"))

		m, cmd := m.Update(k)
		require.NotNil(t, cmd)
		assert.Equal(t, ResultMsg{Confirmed: false}, cmd())
		assert.False(t, m.Visible)
		assert.Equal(t, 0, m.Clicks())
		assert.Equal(t, "", m.View())
	}
}

func TestReopenStartsFromZero(t *testing.T) {
	m := open()
	m, _ = m.Update(runes("y"))
	m, _ = m.Update(runes("n"))
	m = m.Open()
	assert.Equal(t, 0, m.Clicks())
}

func TestHiddenDialogIgnoresKeys(t *testing.T) {
	m := New(80, 24, "bye?")
	m, cmd := m.Update(runes("y"))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Clicks())
}
