// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"termfolio/styles"
)

// markupSpan is a run of text with an optional color tag.
type markupSpan struct {
	color string
	text  string
}

// parseMarkup splits s into spans on [color]..[/color] pairs for the colors in
// styles.MarkupColors. Tags that are unknown or unterminated stay literal, so
// "[sudo]" or "[████]" pass through untouched. Tags do not nest.
func parseMarkup(s string) []markupSpan {
	var spans []markupSpan
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			spans = append(spans, markupSpan{text: plain.String()})
			plain.Reset()
		}
	}

	for i := 0; i < len(s); {
		if s[i] != '[' {
			plain.WriteByte(s[i])
			i++
			continue
		}
		end := strings.IndexByte(s[i:], ']')
		if end < 0 {
			plain.WriteString(s[i:])
			break
		}
		name := s[i+1 : i+end]
		if _, ok := styles.MarkupColors[name]; !ok {
			plain.WriteString(s[i : i+end+1])
			i += end + 1
			continue
		}
		closeTag := "[/" + name + "]"
		bodyStart := i + end + 1
		bodyLen := strings.Index(s[bodyStart:], closeTag)
		if bodyLen < 0 {
			plain.WriteString(s[i:bodyStart])
			i = bodyStart
			continue
		}
		flush()
		spans = append(spans, markupSpan{color: name, text: s[bodyStart : bodyStart+bodyLen]})
		i = bodyStart + bodyLen + len(closeTag)
	}
	flush()
	return spans
}

// RenderMarkup renders color tags with lipgloss; untagged text uses base.
func RenderMarkup(s string, base lipgloss.Style) string {
	var b strings.Builder
	for _, sp := range parseMarkup(s) {
		if sp.color == "" {
			b.WriteString(base.Render(sp.text))
			continue
		}
		b.WriteString(base.Foreground(styles.MarkupColors[sp.color]).Render(sp.text))
	}
	return b.String()
}

// StripMarkup removes known color tags and leaves everything else.
func StripMarkup(s string) string {
	var b strings.Builder
	for _, sp := range parseMarkup(s) {
		b.WriteString(sp.text)
	}
	return b.String()
}
