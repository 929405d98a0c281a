// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package coffee

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/views/view"
)

func TestBrewPourComplete(t *testing.T) {
	m := New(4, 80, 24)
	assert.Equal(t, StageBrewing, m.Stage())
	assert.Contains(t, m.View(), "Brewing coffee")

	m.Update(steamMsg{id: 4})
	assert.True(t, m.steam)
	assert.Contains(t, m.View(), "~ ~ ~")

	_, cmd := m.Update(pourMsg{id: 4})
	require.NotNil(t, cmd)
	assert.Equal(t, StagePouring, m.Stage())

	for i := 1; i < 10; i++ {
		_, cmd = m.Update(pourStepMsg{id: 4})
		require.NotNil(t, cmd)
		assert.Equal(t, i*PourStep, m.Progress())
	}
	assert.Contains(t, m.View(), "Filling: 90%")

	_, cmd = m.Update(pourStepMsg{id: 4})
	require.NotNil(t, cmd)
	assert.Equal(t, StageComplete, m.Stage())
	assert.Equal(t, 100, m.Progress())
	assert.Contains(t, m.View(), "Coffee ready!")

	_, cmd = m.Update(pourStepMsg{id: 4})
	assert.Nil(t, cmd)
}

func TestTicksForOtherOverlaysAreIgnored(t *testing.T) {
	m := New(1, 80, 24)
	m.Update(steamMsg{id: 2})
	_, cmd := m.Update(pourMsg{id: 2})
	assert.Nil(t, cmd)
	assert.False(t, m.steam)
	assert.Equal(t, StageBrewing, m.Stage())
}

func TestEscExitsEarly(t *testing.T) {
	m := New(5, 80, 24)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, view.DoneMsg{ID: 5}, cmd())

	_, cmd = m.Update(pourMsg{id: 5})
	assert.Nil(t, cmd)
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "brewing", StageBrewing.String())
	assert.Equal(t, "pouring", StagePouring.String())
	assert.Equal(t, "complete", StageComplete.String())
}
