// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package coffee

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"termfolio/views/view"
)

const (
	SteamAfter   = 500 * time.Millisecond
	PourAfter    = 2 * time.Second
	PourInterval = 100 * time.Millisecond
	PourStep     = 10
	ShowComplete = time.Second
)

type Stage int

const (
	StageBrewing Stage = iota
	StagePouring
	StageComplete
)

func (s Stage) String() string {
	switch s {
	case StagePouring:
		return "pouring"
	case StageComplete:
		return "complete"
	default:
		return "brewing"
	}
}

type steamMsg struct{ id int }

type pourMsg struct{ id int }

type pourStepMsg struct{ id int }

// Model brews, pours and serves one mug, then reports done.
type Model struct {
	id       int
	width    int
	height   int
	stage    Stage
	steam    bool
	progress int
	finished bool
}

func New(id, width, height int) *Model {
	return &Model{id: id, width: width, height: height}
}

func Factory() view.Factory {
	return func(id, width, height int) (view.Overlay, tea.Cmd) {
		m := New(id, width, height)
		return m, m.Init()
	}
}

func (m *Model) Name() string { return view.NameCoffee }

func (m *Model) ID() int { return m.id }

func (m *Model) Stage() Stage { return m.stage }

func (m *Model) Progress() int { return m.progress }

func (m *Model) Init() tea.Cmd {
	id := m.id
	return tea.Batch(
		tea.Tick(SteamAfter, func(time.Time) tea.Msg { return steamMsg{id: id} }),
		tea.Tick(PourAfter, func(time.Time) tea.Msg { return pourMsg{id: id} }),
	)
}

func (m *Model) pourTick() tea.Cmd {
	id := m.id
	return tea.Tick(PourInterval, func(time.Time) tea.Msg { return pourStepMsg{id: id} })
}

func (m *Model) Update(msg tea.Msg) (view.Overlay, tea.Cmd) {
	if m.finished {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" {
			m.finished = true
			return m, view.Done(m.id)
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case steamMsg:
		if msg.id == m.id {
			m.steam = true
		}

	case pourMsg:
		if msg.id != m.id || m.stage != StageBrewing {
			return m, nil
		}
		m.stage = StagePouring
		return m, m.pourTick()

	case pourStepMsg:
		if msg.id != m.id || m.stage != StagePouring {
			return m, nil
		}
		m.progress += PourStep
		if m.progress < 100 {
			return m, m.pourTick()
		}
		m.progress = 100
		m.stage = StageComplete
		id := m.id
		return m, tea.Tick(ShowComplete, func(time.Time) tea.Msg { return view.DoneMsg{ID: id} })
	}
	return m, nil
}
