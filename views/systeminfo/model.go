// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package systeminfoview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const SpinnerInterval = 80 * time.Millisecond

// Model is the header strip: who is logged in, how long the session has
// been up, how many commands ran, and a spinner while output is pending.
type Model struct {
	identity  string
	sessionID string
	now       func() time.Time
	started   time.Time
	commands  int
	pending   bool
	spinner   int
	width     int
}

func New(identity string, now func() time.Time) *Model {
	if now == nil {
		now = time.Now
	}
	return &Model{identity: identity, now: now, started: now()}
}

// Reset starts counting for a new session.
func (m *Model) Reset(sessionID string) {
	m.sessionID = sessionID
	m.started = m.now()
	m.commands = 0
	m.pending = false
	l().Debugf("session %s started", sessionID)
}

func (m *Model) CommandRun() { m.commands++ }

func (m *Model) Commands() int { return m.commands }

func (m *Model) SetPending(p bool) { m.pending = p }

func (m *Model) Pending() bool { return m.pending }

func (m *Model) SetWidth(w int) { m.width = w }

func (m *Model) Init() tea.Cmd {
	return m.spinnerTickCmd()
}

func (m *Model) spinnerTickCmd() tea.Cmd {
	return tea.Tick(SpinnerInterval, func(t time.Time) tea.Msg {
		return SpinnerTickMsg(t)
	})
}
