// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"termfolio/styles"
)

var (
	FrameTitleStyle = lipgloss.NewStyle().
			Foreground(styles.Green).
			Bold(true)

	FrameHeaderStyle = lipgloss.NewStyle().
				Foreground(styles.Yellow).
				Bold(true)

	FrameBorderColor = styles.Green
)

// RenderFramedBox draws a rounded frame with a centered title, an optional
// header line, content and footer. Width <= 0 fits the widest line.
// ANSI sequences in content are preserved.
func RenderFramedBox(title, header, content, footer string, width int) string {
	lines := strings.Split(content, "\n")
	var footerLines []string
	if footer != "" {
		footerLines = strings.Split(footer, "\n")
	}

	inner := 0
	for _, l := range append(append([]string{header}, lines...), footerLines...) {
		if w := lipgloss.Width(l); w > inner {
			inner = w
		}
	}
	if width <= 0 {
		width = inner + 4
	}
	inner = width - 2

	border := lipgloss.NewStyle().Foreground(FrameBorderColor)
	titleStyled := ""
	if title != "" {
		titleStyled = FrameTitleStyle.Render(" " + title + " ")
	}

	left := max(0, (inner-lipgloss.Width(titleStyled))/2)
	right := max(0, inner-left-lipgloss.Width(titleStyled))

	out := make([]string, 0, len(lines)+len(footerLines)+3)
	out = append(out, border.Render("╭"+strings.Repeat("─", left))+titleStyled+
		border.Render(strings.Repeat("─", right)+"╮"))

	row := func(s string) string {
		return border.Render("│") + padLine(s, inner) + border.Render("│")
	}
	if header != "" {
		out = append(out, row(FrameHeaderStyle.Render(header)))
	}
	for _, l := range lines {
		out = append(out, row(l))
	}
	for _, l := range footerLines {
		out = append(out, row(l))
	}
	out = append(out, border.Render("╰"+strings.Repeat("─", inner)+"╯"))

	return strings.Join(out, "\n")
}

// padLine fits a line to width, preserving ANSI sequences.
func padLine(line string, width int) string {
	l := lipgloss.Width(line)
	if l >= width {
		return lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line + strings.Repeat(" ", width-l)
}

// OverlayCentered replaces the middle rows of base with overlay, centered
// both ways inside a width x height canvas. Rows outside the overlay keep
// the base content; base is padded when it is shorter than height.
func OverlayCentered(base, overlay string, width, height int) string {
	canvas := strings.Split(base, "\n")
	for len(canvas) < height {
		canvas = append(canvas, "")
	}

	lines := strings.Split(overlay, "\n")
	boxWidth := 0
	for _, l := range lines {
		boxWidth = max(boxWidth, lipgloss.Width(l))
	}

	top := max(0, (len(canvas)-len(lines))/2)
	leftPad := max(0, (width-boxWidth)/2)

	for i, l := range lines {
		r := top + i
		if r >= len(canvas) {
			break
		}
		canvas[r] = strings.Repeat(" ", leftPad) + l
	}
	return strings.Join(canvas, "\n")
}

// Center places s horizontally and vertically in a width x height area.
func Center(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s)
}
