// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package view

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a full-screen view that takes over input until it reports DoneMsg.
type Overlay interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Overlay, tea.Cmd)
	View() string
	Name() string
	ID() int
}

// DoneMsg tells the session the overlay with ID has finished.
type DoneMsg struct {
	ID int
}

// Done returns a command emitting DoneMsg for id.
func Done(id int) tea.Cmd {
	return func() tea.Msg { return DoneMsg{ID: id} }
}
