// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package styles

import "github.com/charmbracelet/lipgloss"

var (
	Green  = lipgloss.Color("#4ade80")
	Yellow = lipgloss.Color("#facc15")
	Blue   = lipgloss.Color("#60a5fa")
	Red    = lipgloss.Color("#f87171")
	Gray   = lipgloss.Color("#6b7280")
	White  = lipgloss.Color("#f9fafb")
)

var (
	OutputStyle = lipgloss.NewStyle().Foreground(Green)

	CommandStyle = lipgloss.NewStyle().Foreground(White)

	PromptUserStyle = lipgloss.NewStyle().Foreground(Green)
	PromptHostStyle = lipgloss.NewStyle().Foreground(Yellow)
	PromptPathStyle = lipgloss.NewStyle().Foreground(Blue)
	PromptSepStyle  = lipgloss.NewStyle().Foreground(White)

	TimestampStyle = lipgloss.NewStyle().Foreground(Gray)

	SuggestionStyle = lipgloss.NewStyle().Foreground(Yellow)

	HighlightStyle = lipgloss.NewStyle().Background(lipgloss.Color("205")).Foreground(lipgloss.Color("0"))

	HelpStyle = lipgloss.NewStyle().
			Foreground(Gray).
			Italic(true)

	StatusStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Padding(0, 1)
)

// MarkupColors maps the inline markup tags used in command output to colors.
var MarkupColors = map[string]lipgloss.Color{
	"green":  Green,
	"yellow": Yellow,
	"blue":   Blue,
	"red":    Red,
	"gray":   Gray,
}
