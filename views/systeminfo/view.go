// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package systeminfoview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"termfolio/styles"
	"termfolio/ui"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(styles.Yellow).Bold(true)
	valueStyle = lipgloss.NewStyle().Foreground(styles.Green)
	sepStyle   = lipgloss.NewStyle().Foreground(styles.Gray)
)

func (m *Model) View() string {
	parts := []string{
		valueStyle.Render(m.identity),
		labelStyle.Render("up ") + valueStyle.Render(formatUptime(m.now().Sub(m.started))),
		labelStyle.Render("cmds ") + valueStyle.Render(fmt.Sprint(m.commands)),
	}
	if m.sessionID != "" {
		parts = append(parts, labelStyle.Render("session ")+valueStyle.Render(shortID(m.sessionID)))
	}
	if m.pending {
		parts = append(parts, valueStyle.Render(ui.SpinnerCharAt(m.spinner)+" processing"))
	}

	line := strings.Join(parts, sepStyle.Render("  │  "))
	if m.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
	}
	return line
}

func formatUptime(d time.Duration) string {
	d = max(0, d).Truncate(time.Second)
	h := int(d / time.Hour)
	mnt := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", h, mnt, s)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
