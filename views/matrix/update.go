// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package matrix

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"termfolio/views/view"
)

func (m *Model) Update(msg tea.Msg) (view.Overlay, tea.Cmd) {
	if m.finished {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" {
			m.finished = true
			return m, view.Done(m.id)
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case shiftMsg:
		if msg.id != m.id || m.stopped {
			return m, nil
		}
		m.shift()
		return m, m.shiftTick()

	case countdownMsg:
		if msg.id != m.id || m.stopped {
			return m, nil
		}
		if m.timeLeft <= 1 {
			m.timeLeft = 0
			m.stopped = true
			id := m.id
			return m, tea.Tick(Linger, func(time.Time) tea.Msg { return view.DoneMsg{ID: id} })
		}
		m.timeLeft--
		return m, m.countdownTick()
	}
	return m, nil
}
