// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package snake

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"termfolio/styles"
	"termfolio/ui"
)

var (
	snakeCell = lipgloss.NewStyle().Foreground(styles.Green).Render("██")
	foodCell  = lipgloss.NewStyle().Foreground(styles.Red).Render("██")
	emptyCell = lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")).Render("· ")

	scoreStyle = lipgloss.NewStyle().Foreground(styles.Yellow).Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(styles.Gray)
	overStyle  = lipgloss.NewStyle().Foreground(styles.Red).Bold(true)

	printer = message.NewPrinter(language.English)
)

func (m *Model) View() string {
	var grid strings.Builder
	for y := 0; y < GridSize; y++ {
		if y > 0 {
			grid.WriteByte('\n')
		}
		for x := 0; x < GridSize; x++ {
			p := Point{x, y}
			switch {
			case m.occupied(p):
				grid.WriteString(snakeCell)
			case p == m.food:
				grid.WriteString(foodCell)
			default:
				grid.WriteString(emptyCell)
			}
		}
	}

	var footer string
	switch {
	case m.gameOver:
		footer = overStyle.Render("Game Over!") + "\n" +
			hintStyle.Render("enter play again • esc exit")
	case m.playing:
		footer = hintStyle.Render("Use arrow keys to control the snake • Press ESC to exit")
	default:
		footer = hintStyle.Render("enter start game • esc exit")
	}

	header := scoreStyle.Render(printer.Sprintf("Score: %d", m.score))
	box := ui.RenderFramedBox("Snake", header, grid.String(), footer, 0)
	return ui.Center(box, m.width, m.height)
}
