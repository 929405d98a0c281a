// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"fmt"
	"strings"

	"termfolio/commands/api"
	"termfolio/registry"
)

func registerPortfolio(b *registry.Builder, d Deps) {
	b.Handle("help", SectionPortfolio, "This help menu", func() api.Result {
		return api.Lines(Help(d.Entries())...)
	})
	b.Handle("about", SectionPortfolio, "Learn who I am", func() api.Result { return api.Lines(about(d)...) })
	b.Handle("skills", SectionPortfolio, "Display categorized technical skill sets", func() api.Result { return api.Lines(skills(d)...) })
	b.Handle("projects", SectionPortfolio, "Showcased DevSecOps & cloud projects", func() api.Result { return api.Lines(projects(d)...) })
	b.Handle("certs", SectionPortfolio, "Certifications and training", func() api.Result { return api.Lines(certs(d)...) })
	b.Handle("contact", SectionPortfolio, "Ways to connect and download resume", func() api.Result { return api.Lines(contact(d)...) })
}

func about(d Deps) []string {
	p := d.Profile
	out := []string{
		tag("yellow", "About "+p.Basic.Name),
		rule(50),
		"",
		tag("green", "Name:") + " " + p.Basic.Name,
		tag("green", "Role:") + " " + p.Basic.Role,
		tag("green", "Location:") + " " + p.Basic.Location,
	}
	if p.Basic.Experience != "" {
		edu := p.Basic.Experience
		if p.Basic.Institution != "" {
			edu += " at " + p.Basic.Institution
		}
		out = append(out, tag("green", "Experience:")+" "+edu)
	}
	out = append(out, "", tag("yellow", "About:"), p.Summary)
	if p.Quote != "" {
		out = append(out, "", tag("blue", p.Quote))
	}
	return out
}

func skills(d Deps) []string {
	out := []string{tag("yellow", "Technical Skills"), rule(50), ""}
	for _, g := range d.Profile.Skills {
		out = append(out,
			tag("green", g.Category+":"),
			"  "+strings.Join(g.Skills, " • "),
			"",
		)
	}
	return out
}

func projects(d Deps) []string {
	out := []string{tag("yellow", "Featured Projects"), rule(50), ""}
	for i, p := range d.Profile.Projects {
		out = append(out,
			tag("green", fmt.Sprintf("%d. %s", i+1, p.Name)),
			"   "+p.Description,
			"   "+tag("blue", "Tech Stack:")+" "+strings.Join(p.TechStack, ", "),
		)
		if p.GitHub != "" {
			out = append(out, "   "+tag("blue", "GitHub:")+" "+p.GitHub)
		}
		if p.Demo != "" {
			out = append(out, "   "+tag("blue", "Demo:")+" "+p.Demo)
		}
		out = append(out, "")
	}
	return out
}

func certs(d Deps) []string {
	out := []string{tag("yellow", "Certifications & Training"), rule(50), ""}
	for i, c := range d.Profile.Certifications {
		out = append(out,
			tag("green", fmt.Sprintf("%d. %s", i+1, c.Name)),
			"   Issuer: "+c.Issuer,
			"   Date: "+c.Date,
		)
		if c.ValidUntil != "" {
			out = append(out, "   Valid Until: "+c.ValidUntil)
		}
		out = append(out, "")
	}
	return out
}

func contact(d Deps) []string {
	c := d.Profile.Contact
	out := []string{
		tag("yellow", "Contact Information"),
		rule(50),
		"",
		tag("green", "Email:") + "       " + c.Email,
		tag("green", "LinkedIn:") + "    " + c.LinkedIn,
		tag("green", "GitHub:") + "      " + c.GitHub,
	}
	if c.Website != "" {
		out = append(out, tag("green", "Website:")+"     "+c.Website)
	}
	out = append(out,
		tag("green", "Resume:")+"      [Download Resume PDF]",
		"",
		tag("blue", "Tip: Run `wget resume.pdf` to download."),
	)
	if len(d.Profile.AvailableFor) > 0 {
		out = append(out, "", tag("yellow", "Available for:"))
		for _, a := range d.Profile.AvailableFor {
			out = append(out, "• "+a)
		}
	}
	return out
}
