// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package portfolio holds the biographical reference data the commands print.
package portfolio

import "time"

type Profile struct {
	Basic          Basic           `yaml:"basic"`
	Summary        string          `yaml:"summary"`
	Quote          string          `yaml:"quote"`
	Skills         []SkillGroup    `yaml:"skills"`
	Projects       []Project       `yaml:"projects"`
	Certifications []Certification `yaml:"certifications"`
	Contact        Contact         `yaml:"contact"`
	AvailableFor   []string        `yaml:"available_for"`
	Fortunes       []string        `yaml:"fortunes"`
	Banner         string          `yaml:"banner"`
	Readme         string          `yaml:"readme"`
	// Birthday drives the tongue-in-cheek "uptime" command.
	Birthday time.Time `yaml:"birthday"`
}

type Basic struct {
	Name        string `yaml:"name"`
	Username    string `yaml:"username"`
	Role        string `yaml:"role"`
	Location    string `yaml:"location"`
	Experience  string `yaml:"experience"`
	Institution string `yaml:"institution"`
}

// SkillGroup keeps skills in a list rather than a map so ordering is stable.
type SkillGroup struct {
	Category string   `yaml:"category"`
	Slug     string   `yaml:"slug"`
	Skills   []string `yaml:"skills"`
}

type Project struct {
	Name        string   `yaml:"name"`
	Slug        string   `yaml:"slug"`
	Description string   `yaml:"description"`
	TechStack   []string `yaml:"tech_stack"`
	GitHub      string   `yaml:"github"`
	Demo        string   `yaml:"demo"`
}

type Certification struct {
	Name       string `yaml:"name"`
	Issuer     string `yaml:"issuer"`
	Date       string `yaml:"date"`
	ValidUntil string `yaml:"valid_until"`
}

type Contact struct {
	Email    string `yaml:"email"`
	LinkedIn string `yaml:"linkedin"`
	GitHub   string `yaml:"github"`
	Website  string `yaml:"website"`
}

// SkillGroup returns the group with the given slug.
func (p *Profile) SkillGroup(slug string) (SkillGroup, bool) {
	for _, g := range p.Skills {
		if g.Slug == slug {
			return g, true
		}
	}
	return SkillGroup{}, false
}

// HomeDir is the fake home directory shown by pwd, cd and friends.
func (p *Profile) HomeDir() string {
	return "/home/" + p.Basic.Username
}
