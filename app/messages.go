// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Every scheduled message carries the epoch of the session that scheduled
// it. A restart bumps the epoch, so late deliveries are dropped.

// outputMsg releases the next queued line of the batch.
type outputMsg struct {
	epoch int
	batch int
}

// restartMsg performs the reset announced by a restart command.
type restartMsg struct {
	epoch int
}

func after(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}
