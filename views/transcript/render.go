// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package transcript

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"termfolio/styles"
	"termfolio/ui"
)

const timestampLayout = "15:04:05"

// RenderPrompt styles the user@host:path$ prefix.
func RenderPrompt(p Prompt) string {
	return styles.PromptUserStyle.Render(p.User) +
		styles.PromptSepStyle.Render("@") +
		styles.PromptHostStyle.Render(p.Host) +
		styles.PromptSepStyle.Render(":") +
		styles.PromptPathStyle.Render(p.Path) +
		styles.PromptSepStyle.Render("$")
}

func renderEntry(e Entry, p Prompt, stamps bool, width int) string {
	var s string
	switch e.Kind {
	case KindCommand:
		s = RenderPrompt(p) + " " + styles.CommandStyle.Render(e.Content)
	default:
		rows := strings.Split(e.Content, "\n")
		for i, r := range rows {
			rows[i] = ui.RenderMarkup(r, styles.OutputStyle)
		}
		s = strings.Join(rows, "\n")
	}
	if stamps && e.Kind == KindCommand && !e.Timestamp.IsZero() {
		s = styles.TimestampStyle.Render("["+e.Timestamp.Format(timestampLayout)+"]") + " " + s
	}
	if width > 0 {
		s = lipgloss.NewStyle().Width(width).Render(s)
	}
	return s
}

func plainEntry(e Entry, p Prompt) string {
	if e.Kind == KindCommand {
		return p.String() + " " + e.Content
	}
	return ui.StripMarkup(e.Content)
}
