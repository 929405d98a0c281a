// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package view

import tea "github.com/charmbracelet/bubbletea"

// Factory builds an overlay sized to the terminal; id tags every tick it schedules.
type Factory func(id, width, height int) (Overlay, tea.Cmd)

// Registry maps animation names to overlay factories.
type Registry map[string]Factory

// Mount creates the overlay registered under name. ok is false for unknown names.
func (r Registry) Mount(name string, id, width, height int) (Overlay, tea.Cmd, bool) {
	f, ok := r[name]
	if !ok {
		return nil, nil, false
	}
	o, cmd := f(id, width, height)
	return o, cmd, true
}
