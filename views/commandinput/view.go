// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commandinput

import (
	"strings"

	"termfolio/styles"
	"termfolio/utils"
)

// View renders the prompt line, with suggestions underneath when there are any.
func (m *Model) View() string {
	view := m.input.View()
	if len(m.suggestions) == 0 {
		return view
	}

	term := m.input.Value()
	parts := make([]string, len(m.suggestions))
	for i, s := range m.suggestions {
		parts[i] = utils.HighlightMatches(s, term, utils.FindPrefixMatch(s, term))
	}
	return view + "\n" + styles.SuggestionStyle.Render("Suggestions: ") + strings.Join(parts, "  ")
}
