// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"fmt"

	"termfolio/registry"
)

var sectionTitles = []struct{ section, title string }{
	{SectionPortfolio, "Available Commands:"},
	{SectionSystem, "System Commands:"},
	{SectionFiles, "File Operations:"},
	{SectionFun, "Fun Commands:"},
}

// Help renders every visible entry grouped by section, in registration order.
func Help(entries []registry.Entry) []string {
	var out []string
	for _, s := range sectionTitles {
		var block []string
		for _, e := range entries {
			if e.Hidden || e.Section != s.section {
				continue
			}
			block = append(block, fmt.Sprintf("%s - %s", tag("green", fmt.Sprintf("%-20s", e.Key)), e.Description))
		}
		if len(block) == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, "")
		}
		out = append(out, tag("yellow", s.title), "")
		out = append(out, block...)
	}
	return append(out,
		"",
		tag("blue", "Pro Tips:"),
		"• Use Tab for auto-completion",
		"• Use ↑↓ arrows for command history",
		"• Ctrl+L clears the terminal",
		"• F1-F9 run the most common commands",
	)
}
