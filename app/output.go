// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"termfolio/views/transcript"
)

func (m *Model) appendOutput(content string) {
	m.transcript.Append(transcript.Output(content, m.opts.Now()))
}

// enqueue schedules lines as one batch: the first after first, the rest
// every `every`. Lines still pending from an earlier batch are flushed first,
// so batches never interleave.
func (m *Model) enqueue(lines []string, first, every time.Duration) tea.Cmd {
	m.flush()
	if len(lines) == 0 {
		return nil
	}
	m.batch++
	m.pending = make([]pendingLine, len(lines))
	for i, line := range lines {
		d := every
		if i == 0 {
			d = first
		}
		m.pending[i] = pendingLine{content: line, delay: d}
	}
	m.header.SetPending(true)
	return m.scheduleNext()
}

func (m *Model) scheduleNext() tea.Cmd {
	if len(m.pending) == 0 {
		m.header.SetPending(false)
		return nil
	}
	return after(m.pending[0].delay, outputMsg{epoch: m.epoch, batch: m.batch})
}

// flush appends every pending line right away and invalidates their timers.
func (m *Model) flush() {
	if len(m.pending) == 0 {
		return
	}
	for _, p := range m.pending {
		m.appendOutput(p.content)
	}
	m.pending = nil
	m.batch++
	m.header.SetPending(false)
}

func (m *Model) handleOutput(msg outputMsg) tea.Cmd {
	if msg.epoch != m.epoch || msg.batch != m.batch || len(m.pending) == 0 {
		return nil
	}
	next := m.pending[0]
	m.pending = m.pending[1:]
	m.appendOutput(next.content)
	return m.scheduleNext()
}

// Pending reports how many output lines are still waiting.
func (m *Model) Pending() int { return len(m.pending) }

func (m *Model) bannerLines() []string {
	role := m.profile.Basic.Role
	if role == "" {
		role = "Portfolio"
	}
	return []string{
		m.profile.Banner,
		"",
		fmt.Sprintf("Welcome to my %s Portfolio Terminal!", role),
		`Type "help" to see available commands.`,
		"Use Tab for auto-completion and arrow keys for command history.",
		"",
	}
}

// playBanner stages the welcome lines, the first one immediately.
func (m *Model) playBanner() tea.Cmd {
	return m.enqueue(m.bannerLines(), 0, m.opts.Timing.BannerStagger)
}

// historyLines numbers the session's commands oldest first, like a shell.
func (m *Model) historyLines() []string {
	entries := m.input.History().Entries()
	lines := make([]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		lines = append(lines, fmt.Sprintf("%5d  %s", len(entries)-i, entries[i]))
	}
	return lines
}
