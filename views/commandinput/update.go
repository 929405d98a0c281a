// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commandinput

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles key events and manages input/history state.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.input.Focused() {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			return m.Submit()
		case "up":
			m.RecallOlder()
			return nil
		case "down":
			m.RecallNewer()
			return nil
		case "tab":
			return m.Complete()
		case "ctrl+l":
			return m.ClearShortcut()
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refreshSuggestions()
	}
	return cmd
}

// Submit emits a SubmitMsg for non-empty input and records it in history.
// Input, cursor and suggestions are reset either way.
func (m *Model) Submit() tea.Cmd {
	cmd := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	m.suggestions = nil
	m.history.ResetCursor()

	if cmd == "" {
		return nil
	}
	m.history.Push(cmd)
	return func() tea.Msg { return SubmitMsg{Command: cmd} }
}

// RecallOlder steps back through history.
func (m *Model) RecallOlder() {
	if v, ok := m.history.Older(); ok {
		m.SetValue(v)
	}
}

// RecallNewer steps forward through history; past the newest entry it clears the input.
func (m *Model) RecallNewer() {
	if v, ok := m.history.Newer(); ok {
		m.SetValue(v)
	}
}

// Complete applies a unique suggestion, or reports all candidates when ambiguous.
func (m *Model) Complete() tea.Cmd {
	switch len(m.suggestions) {
	case 0:
		return nil
	case 1:
		m.input.SetValue(m.suggestions[0])
		m.input.CursorEnd()
		m.suggestions = nil
		return nil
	}
	matches := m.Suggestions()
	return func() tea.Msg { return CompletionsMsg{Matches: matches} }
}

// ClearShortcut submits "clear" through the normal path so history stays consistent.
func (m *Model) ClearShortcut() tea.Cmd {
	m.input.SetValue("clear")
	return m.Submit()
}

// Run submits cmd as if it had been typed, replacing the current input.
func (m *Model) Run(cmd string) tea.Cmd {
	m.input.SetValue(cmd)
	return m.Submit()
}
