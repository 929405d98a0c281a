// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package systeminfoview

import tea "github.com/charmbracelet/bubbletea"

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg.(type) {
	case SpinnerTickMsg:
		// Always keep running; frames only advance while output is pending.
		if m.pending {
			m.spinner++
		}
		return m.spinnerTickCmd()
	}
	return nil
}
