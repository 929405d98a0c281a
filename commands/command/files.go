// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"strings"

	"termfolio/commands/api"
	"termfolio/registry"

	"github.com/charmbracelet/glamour"
)

func registerFiles(b *registry.Builder, d Deps) {
	b.Handle("cat", SectionFiles, `Print a section (try "cat about")`, func() api.Result {
		return api.Text(`cat: missing file operand. Try "cat about" or "cat skills"`)
	})
	b.Alias("cat about", "about")
	b.Alias("cat skills", "skills")
	b.Alias("cat projects", "projects")
	b.Handle("cat skills/cloud", SectionFiles, "View cloud skills", func() api.Result {
		return api.Lines(skillGroup(d, "cloud")...)
	})
	b.Handle("cat readme.md", SectionFiles, "Read the README", func() api.Result {
		return api.Lines(RenderMarkdown(d.Profile.Readme, d.MarkdownWidth)...)
	})
	b.Handle("wget resume.pdf", SectionFiles, "Download resume", func() api.Result {
		return api.Lines(
			"Downloading resume...",
			"[████████████████████████████████] 100%",
			"Resume downloaded successfully!",
			"",
			tag("blue", "Note:")+" This is a simulated download.",
			"Please contact me via email for the actual resume.",
		)
	})
	b.Handle("echo", SectionFiles, "Print text (echo <text>)", func() api.Result {
		return api.Text("echo: missing argument")
	})
}

func skillGroup(d Deps, slug string) []string {
	g, ok := d.Profile.SkillGroup(slug)
	if !ok {
		return []string{"cat: skills/" + slug + ": No such file or directory"}
	}
	out := []string{tag("yellow", g.Category), rule(35), ""}
	for _, s := range g.Skills {
		out = append(out, "• "+s)
	}
	return out
}

// RenderMarkdown renders md for the terminal, one transcript line per output line.
// Rendering failures fall back to the raw markdown.
func RenderMarkdown(md string, width int) []string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return strings.Split(strings.TrimRight(md, "\n"), "\n")
	}
	out, err := r.Render(md)
	if err != nil {
		return strings.Split(strings.TrimRight(md, "\n"), "\n")
	}
	return strings.Split(strings.Trim(out, "\n"), "\n")
}
