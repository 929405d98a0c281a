// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commandinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Suggester returns the completion candidates for the current input.
type Suggester func(input string) []string

// Model is the prompt line: current input, command history and suggestions.
type Model struct {
	input       textinput.Model
	history     *History
	suggest     Suggester
	suggestions []string
}

// New creates a focused prompt with the given prompt string and history size.
func New(prompt string, historySize int, suggest Suggester) *Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.CharLimit = 256
	ti.Focus()

	if suggest == nil {
		suggest = func(string) []string { return nil }
	}

	return &Model{
		input:   ti,
		history: NewHistory(historySize),
		suggest: suggest,
	}
}

func (m *Model) Value() string { return m.input.Value() }

// SetValue replaces the input and recomputes suggestions.
func (m *Model) SetValue(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
	m.refreshSuggestions()
}

func (m *Model) Suggestions() []string {
	cpy := make([]string, len(m.suggestions))
	copy(cpy, m.suggestions)
	return cpy
}

func (m *Model) History() *History { return m.history }

func (m *Model) Focused() bool { return m.input.Focused() }

// Focus restores keyboard focus, e.g. after an overlay closes.
func (m *Model) Focus() tea.Cmd {
	m.input.Focus()
	return textinput.Blink
}

func (m *Model) Blur() { m.input.Blur() }

func (m *Model) SetWidth(w int) {
	if w > 0 {
		m.input.Width = w
	}
}

// Reset clears input, history and suggestions, as for a fresh session.
func (m *Model) Reset() {
	m.input.Reset()
	m.history.Reset()
	m.suggestions = nil
}

func (m *Model) refreshSuggestions() {
	m.suggestions = m.suggest(m.input.Value())
}
