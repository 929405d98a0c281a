// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import "termfolio/commands/api"

// Navigate resolves "cd <target>" for the fixed set of known directories.
// Anything else, including "/" and "~", yields a single error line.
func Navigate(d Deps, target string) api.Result {
	d = d.withDefaults()
	home := d.Profile.HomeDir()

	switch target {
	case "..":
		return api.Lines("Moving up one directory: " + home)
	case "projects":
		out := []string{"Changed directory to: " + home + "/projects", "", "Available projects:"}
		return api.Lines(append(out, listProjects(d)...)...)
	case "skills":
		out := []string{"Changed directory to: " + home + "/skills", "", "Available skill categories:"}
		for _, g := range d.Profile.Skills {
			out = append(out, "• "+g.Slug)
		}
		return api.Lines(out...)
	}
	return api.Text("No such directory: " + target)
}
