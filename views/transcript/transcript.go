// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package transcript

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"termfolio/core/primitives/hash"
)

// Transcript is the append-only session log shown above the prompt. It
// renders through a viewport that sticks to the bottom while new entries
// arrive, unless the user scrolled up.
type Transcript struct {
	entries        []Entry
	prompt         Prompt
	showTimestamps bool

	viewport viewport.Model
	width    int
	height   int

	cacheKey string
	renders  int
}

func New(prompt Prompt, showTimestamps bool) *Transcript {
	return &Transcript{
		prompt:         prompt,
		showTimestamps: showTimestamps,
		viewport:       viewport.New(0, 0),
	}
}

func (t *Transcript) Append(e Entry) {
	t.entries = append(t.entries, e)
}

// Clear drops every entry; the next render shows an empty screen.
func (t *Transcript) Clear() {
	t.entries = nil
	t.viewport.GotoTop()
}

func (t *Transcript) Entries() []Entry {
	cpy := make([]Entry, len(t.entries))
	copy(cpy, t.entries)
	return cpy
}

func (t *Transcript) Len() int { return len(t.entries) }

func (t *Transcript) Prompt() Prompt { return t.prompt }

func (t *Transcript) SetSize(width, height int) {
	t.width = max(0, width)
	t.height = max(1, height)
	t.viewport.Width = t.width
	t.viewport.Height = t.height
}

// Update forwards scroll keys and mouse wheel events to the viewport.
func (t *Transcript) Update(msg tea.Msg) tea.Cmd {
	t.refresh()
	var cmd tea.Cmd
	t.viewport, cmd = t.viewport.Update(msg)
	return cmd
}

func (t *Transcript) View() string {
	t.refresh()
	return t.viewport.View()
}

// Plain returns the transcript as unstyled text, one line per entry line.
func (t *Transcript) Plain() string {
	var b strings.Builder
	for i, e := range t.entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(plainEntry(e, t.prompt))
	}
	return b.String()
}

type renderKey struct {
	Kinds      []int
	Contents   []string
	Stamps     []int64
	Width      int
	Timestamps bool
}

func (t *Transcript) key() string {
	k := renderKey{
		Kinds:      make([]int, len(t.entries)),
		Contents:   make([]string, len(t.entries)),
		Stamps:     make([]int64, len(t.entries)),
		Width:      t.width,
		Timestamps: t.showTimestamps,
	}
	for i, e := range t.entries {
		k.Kinds[i] = int(e.Kind)
		k.Contents[i] = e.Content
		k.Stamps[i] = e.Timestamp.Unix()
	}
	return hash.Key(k)
}

// refresh re-renders only when the entries or width changed since the last pass.
func (t *Transcript) refresh() {
	key := t.key()
	if key != "" && key == t.cacheKey {
		return
	}
	atBottom := t.viewport.AtBottom() || t.cacheKey == ""
	t.cacheKey = key
	t.renders++

	lines := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		lines = append(lines, renderEntry(e, t.prompt, t.showTimestamps, t.width))
	}
	t.viewport.SetContent(strings.Join(lines, "\n"))
	if atBottom {
		t.viewport.GotoBottom()
	}
}
