// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package registry

import (
	"fmt"
	"strings"

	"termfolio/commands/api"
)

// Handler produces the response for a command. Handlers must be total.
type Handler func() api.Result

// Entry is one registered command.
type Entry struct {
	Key         string
	Description string
	// Section groups the entry in help output ("", "system", "files", "fun", ...).
	Section string
	// Hidden entries resolve normally but are left out of help.
	Hidden  bool
	Handler Handler
}

// Registry is the immutable mapping from normalized command keys to handlers.
// Build one with a Builder; it is safe for concurrent reads.
type Registry struct {
	entries    []Entry
	index      map[string]int
	recognized []Entry
}

// Normalize trims surrounding whitespace and lowercases a key or raw input.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Lookup resolves an exact normalized key and invokes its handler.
func (r *Registry) Lookup(key string) (api.Result, bool) {
	i, ok := r.index[Normalize(key)]
	if !ok {
		return api.Result{}, false
	}
	return r.entries[i].Handler(), true
}

// Entries returns all entries in registration order.
func (r *Registry) Entries() []Entry {
	cpy := make([]Entry, len(r.entries))
	copy(cpy, r.entries)
	return cpy
}

// AvailableKeys returns the single-token keys in registration order followed by
// the keys the dispatcher recognizes without a handler. Used for suggestions only.
func (r *Registry) AvailableKeys() []string {
	keys := make([]string, 0, len(r.entries)+len(r.recognized))
	for _, e := range r.entries {
		if strings.ContainsAny(e.Key, " \t") {
			continue
		}
		keys = append(keys, e.Key)
	}
	for _, e := range r.recognized {
		keys = append(keys, e.Key)
	}
	return keys
}

// Described returns the entries followed by the recognized keys, for help output.
// Recognized entries have a nil Handler.
func (r *Registry) Described() []Entry {
	out := r.Entries()
	return append(out, r.recognized...)
}

// Suggest returns the available keys that start with prefix, case-insensitively.
// An empty (or all-whitespace) prefix suggests nothing.
func (r *Registry) Suggest(prefix string) []string {
	if strings.TrimSpace(prefix) == "" {
		return nil
	}
	p := strings.ToLower(prefix)
	var out []string
	for _, k := range r.AvailableKeys() {
		if strings.HasPrefix(k, p) {
			out = append(out, k)
		}
	}
	return out
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int { return len(r.entries) }

// Builder collects entries before the registry is frozen.
type Builder struct {
	entries    []Entry
	seen       map[string]bool
	recognized []Entry
	errs       []error
}

func NewBuilder() *Builder {
	return &Builder{seen: map[string]bool{}}
}

// Register adds an entry. Duplicate keys are reported by Build.
func (b *Builder) Register(e Entry) *Builder {
	e.Key = Normalize(e.Key)
	switch {
	case e.Key == "":
		b.errs = append(b.errs, fmt.Errorf("register: %w", api.ErrEmptyCommand))
		return b
	case e.Handler == nil:
		b.errs = append(b.errs, fmt.Errorf("register %q: nil handler", e.Key))
		return b
	case b.seen[e.Key]:
		b.errs = append(b.errs, fmt.Errorf("register %q: %w", e.Key, api.ErrDuplicateCommand))
		return b
	}
	b.seen[e.Key] = true
	b.entries = append(b.entries, e)
	return b
}

// Handle is shorthand for registering a visible entry.
func (b *Builder) Handle(key, section, description string, h Handler) *Builder {
	return b.Register(Entry{Key: key, Section: section, Description: description, Handler: h})
}

// Alias registers name as a hidden entry sharing target's handler.
// The target must already be registered.
func (b *Builder) Alias(name, target string) *Builder {
	target = Normalize(target)
	for _, e := range b.entries {
		if e.Key == target {
			return b.Register(Entry{
				Key:         name,
				Section:     e.Section,
				Description: e.Description,
				Hidden:      true,
				Handler:     e.Handler,
			})
		}
	}
	b.errs = append(b.errs, fmt.Errorf("alias %q: unknown target %q", name, target))
	return b
}

// Recognize records a key the dispatcher handles outside the registry,
// so that it still shows up in suggestions.
func (b *Builder) Recognize(key, section, description string) *Builder {
	key = Normalize(key)
	if b.seen[key] {
		b.errs = append(b.errs, fmt.Errorf("recognize %q: %w", key, api.ErrDuplicateCommand))
		return b
	}
	b.seen[key] = true
	b.recognized = append(b.recognized, Entry{Key: key, Section: section, Description: description})
	return b
}

// Build freezes the collected entries.
func (b *Builder) Build() (*Registry, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	r := &Registry{
		entries:    make([]Entry, len(b.entries)),
		index:      make(map[string]int, len(b.entries)),
		recognized: append([]Entry(nil), b.recognized...),
	}
	copy(r.entries, b.entries)
	for i, e := range r.entries {
		r.index[e.Key] = i
	}
	return r, nil
}
