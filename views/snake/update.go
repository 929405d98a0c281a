// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package snake

import (
	tea "github.com/charmbracelet/bubbletea"

	"termfolio/views/view"
)

func (m *Model) Update(msg tea.Msg) (view.Overlay, tea.Cmd) {
	if m.finished {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeySpace && !m.playing {
			m.start()
			return m, nil
		}
		switch msg.String() {
		case "esc":
			m.finished = true
			return m, view.Done(m.id)
		case "enter":
			if !m.playing {
				m.start()
			}
		case "up":
			m.steer(up)
		case "down":
			m.steer(down)
		case "left":
			m.steer(left)
		case "right":
			m.steer(right)
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case stepMsg:
		if msg.id != m.id {
			return m, nil
		}
		m.step()
		return m, m.stepTick()
	}
	return m, nil
}
