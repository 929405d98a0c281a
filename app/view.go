// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"github.com/charmbracelet/lipgloss"

	"termfolio/ui"
)

// chromeHeight is the rows taken by header, prompt, suggestions and help bar.
const chromeHeight = 4

func (m *Model) View() string {
	if m.overlay != nil {
		return lipgloss.JoinVertical(lipgloss.Left, m.overlay.View(), m.helpbar.View())
	}

	input := m.input.View()
	if len(m.input.Suggestions()) == 0 {
		input += "\n"
	}

	base := lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		m.transcript.View(),
		input,
		m.helpbar.View(),
	)

	if m.confirm.Visible {
		return ui.OverlayCentered(base, m.confirm.View(), m.width, m.height)
	}
	return base
}
