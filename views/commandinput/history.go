// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commandinput

// DefaultHistorySize is how many submitted commands are remembered.
const DefaultHistorySize = 50

// History is a bounded, most-recent-first list of submitted commands with a
// recall cursor. Cursor -1 means "not browsing".
type History struct {
	entries []string
	max     int
	cursor  int
}

func NewHistory(max int) *History {
	if max <= 0 {
		max = DefaultHistorySize
	}
	return &History{
		entries: make([]string, 0, max),
		max:     max,
		cursor:  -1,
	}
}

// Push records cmd as the most recent entry, evicting the oldest beyond capacity,
// and stops browsing.
func (h *History) Push(cmd string) {
	if len(h.entries) < h.max {
		h.entries = append(h.entries, "")
	}
	copy(h.entries[1:], h.entries)
	h.entries[0] = cmd
	h.cursor = -1
}

// Older moves the cursor one step back in time, clamped to the oldest entry.
// It returns false when there is nothing to recall.
func (h *History) Older() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor < len(h.entries)-1 {
		h.cursor++
	}
	return h.entries[h.cursor], true
}

// Newer moves the cursor one step forward. Stepping past the newest entry
// stops browsing and returns "" with ok=true; when not browsing it is a no-op
// returning ok=false.
func (h *History) Newer() (string, bool) {
	switch {
	case h.cursor < 0:
		return "", false
	case h.cursor == 0:
		h.cursor = -1
		return "", true
	default:
		h.cursor--
		return h.entries[h.cursor], true
	}
}

// ResetCursor stops browsing without touching the entries.
func (h *History) ResetCursor() { h.cursor = -1 }

// Reset forgets every entry, as for a fresh session.
func (h *History) Reset() {
	h.entries = h.entries[:0]
	h.cursor = -1
}

// Cursor returns the current recall position, -1 when not browsing.
func (h *History) Cursor() int { return h.cursor }

func (h *History) Len() int { return len(h.entries) }

func (h *History) Cap() int { return h.max }

// Entries returns a copy, most recent first.
func (h *History) Entries() []string {
	cpy := make([]string, len(h.entries))
	copy(cpy, h.entries)
	return cpy
}
