// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package matrix

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"termfolio/styles"
	"termfolio/ui"
)

var (
	headStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#dcfce7")).Bold(true)
	bodyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#86efac"))
	tailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a"))

	quoteStyle = lipgloss.NewStyle().Foreground(styles.Green).Bold(true)
	timerStyle = lipgloss.NewStyle().Foreground(styles.Green)
)

func cellStyle(row int) lipgloss.Style {
	switch {
	case row < 3:
		return headStyle
	case row < 6:
		return bodyStyle
	default:
		return tailStyle
	}
}

func (m *Model) View() string {
	rows := columnHeight
	if m.height > 1 {
		rows = min(rows, m.height-1)
	}

	lines := make([]string, 0, rows+1)
	for r := 0; r < rows; r++ {
		var b strings.Builder
		style := cellStyle(r)
		for _, col := range m.columns {
			b.WriteString(style.Render(string(col[r])))
			b.WriteString(" ")
		}
		lines = append(lines, b.String())
	}

	quote := quoteStyle.Render("Welcome to the Matrix") + "\n" +
		lipgloss.NewStyle().Foreground(styles.Green).Render("Reality is merely an illusion")
	rain := ui.OverlayCentered(strings.Join(lines, "\n"), lipgloss.PlaceHorizontal(30, lipgloss.Center, quote), m.width, rows)

	return rain + "\n" + timerStyle.Render(fmt.Sprintf("%ds", m.timeLeft))
}
