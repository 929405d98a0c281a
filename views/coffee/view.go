// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package coffee

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"termfolio/styles"
	"termfolio/ui"
)

var (
	machineStyle = lipgloss.NewStyle().Foreground(styles.Yellow)
	coffeeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#92400e"))
	steamStyle   = lipgloss.NewStyle().Foreground(styles.Gray)
	statusStyle  = lipgloss.NewStyle().Foreground(styles.Green).Bold(true)
	noteStyle    = lipgloss.NewStyle().Foreground(styles.Gray).Italic(true)
)

const mugRows = 4

func (m *Model) View() string {
	var lines []string

	lines = append(lines,
		machineStyle.Render("╔══════════════════╗"),
		machineStyle.Render("║   COFFEE MAKER   ║"),
		machineStyle.Render("╚════════╤═════════╝"),
		machineStyle.Render("         │"),
	)
	if m.stage == StagePouring {
		lines = append(lines, "         │", "         │ ☕", "         │")
	}

	if m.steam && m.stage == StageBrewing {
		lines = append(lines, steamStyle.Render("       ~ ~ ~ ~ ~"), steamStyle.Render("        ~ ~ ~ ~"))
	}

	lines = append(lines, "      ╭─────────╮")
	filled := m.progress * mugRows / 100
	for r := 0; r < mugRows; r++ {
		inner := "         "
		if mugRows-r <= filled {
			inner = coffeeStyle.Render("█████████")
		}
		if m.stage == StageComplete {
			switch r {
			case 1:
				inner = "   TOP   "
			case 2:
				inner = "    G    "
			}
		}
		lines = append(lines, "      │"+inner+"│")
	}
	lines = append(lines, "      ╰─────────╯", "")

	switch m.stage {
	case StageBrewing:
		lines = append(lines,
			statusStyle.Render("☕ Brewing coffee..."),
			noteStyle.Render("Optimized for late-night deployments..."))
	case StagePouring:
		lines = append(lines,
			statusStyle.Render("☕ Pouring into TOP G mug..."),
			noteStyle.Render(fmt.Sprintf("Filling: %d%%", m.progress)))
	case StageComplete:
		lines = append(lines,
			statusStyle.Render("☕ Coffee ready! TOP G fuel prepared."),
			noteStyle.Render("Vulnerability scan: No known security issues detected."))
	}

	return ui.Center(strings.Join(lines, "\n"), m.width, m.height)
}
