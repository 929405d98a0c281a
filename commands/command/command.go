// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package command defines the handlers behind every registered command.
package command

import (
	"math/rand/v2"
	"strings"
	"time"

	"termfolio/portfolio"
	"termfolio/registry"
)

// Help sections, in the order help prints them.
const (
	SectionPortfolio = "portfolio"
	SectionSystem    = "system"
	SectionFiles     = "files"
	SectionFun       = "fun"
)

// Deps is the read-only data handlers may consult.
type Deps struct {
	Profile *portfolio.Profile
	// Now is the clock used by date and uptime.
	Now func() time.Time
	// Pick returns an index in [0, n); fortune uses it.
	Pick func(n int) int
	// Entries lists the frozen registry for help. It is only called after Build.
	Entries func() []registry.Entry
	// MarkdownWidth is the word-wrap width for rendered markdown.
	MarkdownWidth int
}

func (d Deps) withDefaults() Deps {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Pick == nil {
		d.Pick = rand.IntN
	}
	if d.Entries == nil {
		d.Entries = func() []registry.Entry { return nil }
	}
	if d.MarkdownWidth <= 0 {
		d.MarkdownWidth = 80
	}
	return d
}

// RegisterAll adds the whole command set to b, in help order.
func RegisterAll(b *registry.Builder, d Deps) {
	d = d.withDefaults()
	registerPortfolio(b, d)
	registerSystem(b, d)
	registerFiles(b, d)
	registerFun(b, d)
}

func rule(n int) string { return strings.Repeat("=", n) }

func tag(color, s string) string { return "[" + color + "]" + s + "[/" + color + "]" }
