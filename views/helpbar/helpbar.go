// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package helpbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"termfolio/styles"
)

type HelpEntry struct {
	Key  string
	Desc string
}

// Model renders key hints on one line, dropping trailing entries that do not fit.
type Model struct {
	globalHelp []HelpEntry
	viewHelp   []HelpEntry
	width      int
}

func New(width int) *Model {
	return &Model{
		globalHelp: []HelpEntry{{Key: "ctrl+c", Desc: "quit"}},
		width:      width,
	}
}

func (m *Model) WithGlobalHelp(entries []HelpEntry) *Model {
	m.globalHelp = entries
	return m
}

func (m *Model) WithViewHelp(entries []HelpEntry) *Model {
	m.viewHelp = entries
	return m
}

func (m *Model) SetWidth(width int) *Model {
	m.width = width
	return m
}

var keyStyle = lipgloss.NewStyle().Foreground(styles.Yellow).Bold(true)

func (m *Model) View() string {
	all := make([]HelpEntry, 0, len(m.viewHelp)+len(m.globalHelp))
	all = append(all, m.viewHelp...)
	all = append(all, m.globalHelp...)

	var b strings.Builder
	used := 0
	for i, e := range all {
		item := keyStyle.Render("<"+e.Key+">") + " " + Style.Render(e.Desc)
		w := lipgloss.Width(item)
		if i > 0 {
			w += 2
		}
		if m.width > 0 && used+w > m.width {
			break
		}
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(item)
		used += w
	}
	return b.String()
}
