// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package matrix

import (
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"termfolio/views/view"
)

const (
	ShiftInterval = 100 * time.Millisecond
	Countdown     = 5
	Linger        = 500 * time.Millisecond

	columnHeight = 20
	columnGap    = 2
)

type shiftMsg struct{ id int }

type countdownMsg struct{ id int }

// Model is the binary rain overlay. It counts down Countdown seconds and
// reports done shortly after reaching zero; esc leaves early.
type Model struct {
	id       int
	width    int
	height   int
	rng      *rand.Rand
	columns  [][]byte
	timeLeft int
	stopped  bool
	finished bool
}

func New(id, width, height int, rng *rand.Rand) *Model {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	m := &Model{
		id:       id,
		width:    width,
		height:   height,
		rng:      rng,
		timeLeft: Countdown,
	}
	n := max(1, width/columnGap)
	m.columns = make([][]byte, n)
	for i := range m.columns {
		col := make([]byte, columnHeight)
		for j := range col {
			col[j] = m.bit()
		}
		m.columns[i] = col
	}
	return m
}

// Factory adapts New to view.Factory.
func Factory(rng *rand.Rand) view.Factory {
	return func(id, width, height int) (view.Overlay, tea.Cmd) {
		m := New(id, width, height, rng)
		return m, m.Init()
	}
}

func (m *Model) Name() string { return view.NameMatrix }

func (m *Model) ID() int { return m.id }

func (m *Model) TimeLeft() int { return m.timeLeft }

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.shiftTick(), m.countdownTick())
}

func (m *Model) bit() byte {
	if m.rng.IntN(2) == 1 {
		return '1'
	}
	return '0'
}

func (m *Model) shiftTick() tea.Cmd {
	id := m.id
	return tea.Tick(ShiftInterval, func(time.Time) tea.Msg { return shiftMsg{id: id} })
}

func (m *Model) countdownTick() tea.Cmd {
	id := m.id
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return countdownMsg{id: id} })
}

// shift drops the bottom bit of every column and feeds a new one on top.
func (m *Model) shift() {
	for _, col := range m.columns {
		copy(col[1:], col[:len(col)-1])
		col[0] = m.bit()
	}
}
