// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package utils

import (
	"strings"

	"termfolio/styles"
)

// HighlightMatches renders each occurrence of term (at the given byte offsets) in the highlight style.
func HighlightMatches(text, term string, matches []int) string {
	if term == "" || len(matches) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, idx := range matches {
		if idx < last || idx+len(term) > len(text) {
			continue
		}
		b.WriteString(text[last:idx])
		b.WriteString(styles.HighlightStyle.Render(text[idx : idx+len(term)]))
		last = idx + len(term)
	}
	b.WriteString(text[last:])
	return b.String()
}

// FindPrefixMatch returns []int{0} when text starts with term, ignoring case.
func FindPrefixMatch(text, term string) []int {
	if term == "" || !strings.HasPrefix(strings.ToLower(text), strings.ToLower(term)) {
		return nil
	}
	return []int{0}
}
