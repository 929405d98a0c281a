// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package view

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stub struct{ id int }

func (s stub) Init() tea.Cmd { return nil }
func (s stub) Update(tea.Msg) (Overlay, tea.Cmd) { return s, nil }
func (s stub) View() string { return "stub" }
func (s stub) Name() string { return "stub" }
func (s stub) ID() int { return s.id }

func TestRegistryMount(t *testing.T) {
	r := Registry{"stub": func(id, _, _ int) (Overlay, tea.Cmd) {
		return stub{id: id}, Done(id)
	}}

	o, cmd, ok := r.Mount("stub", 7, 80, 24)
	require.True(t, ok)
	assert.Equal(t, 7, o.ID())
	assert.Equal(t, DoneMsg{ID: 7}, cmd())

	_, _, ok = r.Mount("missing", 1, 80, 24)
	assert.False(t, ok)
}
