// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestParseMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []markupSpan
	}{
		{"plain", "hello", []markupSpan{{text: "hello"}}},
		{"tagged", "[green]ok[/green]", []markupSpan{{color: "green", text: "ok"}}},
		{
			"mixed",
			"a [yellow]b[/yellow] c",
			[]markupSpan{{text: "a "}, {color: "yellow", text: "b"}, {text: " c"}},
		},
		{"unknown tag", "[sudo] password", []markupSpan{{text: "[sudo] password"}}},
		{"bar", "[████░░] 60%", []markupSpan{{text: "[████░░] 60%"}}},
		{"unterminated", "[red]oops", []markupSpan{{text: "[red]oops"}}},
		{"dangling bracket", "x [", []markupSpan{{text: "x ["}}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseMarkup(tt.in))
		})
	}
}

func TestStripMarkup(t *testing.T) {
	assert.Equal(t, "Name: Alex [sudo]", StripMarkup("[blue]Name:[/blue] Alex [sudo]"))
}

func TestRenderMarkupKeepsText(t *testing.T) {
	out := RenderMarkup("[green]ok[/green] and [red]fail[/red]", lipgloss.NewStyle())
	assert.True(t, strings.Contains(out, "ok"))
	assert.True(t, strings.Contains(out, "fail"))
	assert.NotContains(t, out, "[green]")
}

func TestRenderFramedBoxShape(t *testing.T) {
	box := RenderFramedBox("Title", "", "line one\nline two", "", 20)
	lines := strings.Split(box, "\n")
	assert.Len(t, lines, 4)
	for _, l := range lines {
		assert.Equal(t, 20, lipgloss.Width(l))
	}
	assert.Contains(t, lines[0], "Title")
}

func TestOverlayCentered(t *testing.T) {
	base := strings.Repeat("..........\n", 4) + ".........."
	out := OverlayCentered(base, "XX", 10, 5)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 5)
	assert.Equal(t, "    XX", lines[2])
	assert.Equal(t, "..........", lines[0])
}

func TestSpinnerCharAtWraps(t *testing.T) {
	n := SpinnerFrames()
	assert.Greater(t, n, 0)
	assert.Equal(t, SpinnerCharAt(0), SpinnerCharAt(n))
}
