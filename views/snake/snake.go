// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package snake

import (
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"termfolio/views/view"
)

const (
	GridSize     = 20
	StepInterval = 150 * time.Millisecond
	FoodPoints   = 10
)

type Point struct{ X, Y int }

func (p Point) add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

var (
	startBody = []Point{{X: 10, Y: 10}}
	startFood = Point{X: 15, Y: 15}

	up    = Point{Y: -1}
	down  = Point{Y: 1}
	left  = Point{X: -1}
	right = Point{X: 1}
)

type stepMsg struct{ id int }

// Model is a 20x20 snake game. Enter or space starts a round, arrows steer,
// esc leaves.
type Model struct {
	id     int
	width  int
	height int
	rng    *rand.Rand

	body     []Point
	food     Point
	dir      Point
	heading  Point // direction of the last step taken
	score    int
	playing  bool
	gameOver bool
	finished bool
}

func New(id, width, height int, rng *rand.Rand) *Model {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	m := &Model{id: id, width: width, height: height, rng: rng}
	m.reset()
	return m
}

func Factory(rng *rand.Rand) view.Factory {
	return func(id, width, height int) (view.Overlay, tea.Cmd) {
		m := New(id, width, height, rng)
		return m, m.Init()
	}
}

func (m *Model) Name() string { return view.NameSnake }

func (m *Model) ID() int { return m.id }

func (m *Model) Score() int { return m.score }

func (m *Model) Playing() bool { return m.playing }

func (m *Model) GameOver() bool { return m.gameOver }

func (m *Model) Body() []Point {
	cpy := make([]Point, len(m.body))
	copy(cpy, m.body)
	return cpy
}

func (m *Model) Init() tea.Cmd { return m.stepTick() }

func (m *Model) stepTick() tea.Cmd {
	id := m.id
	return tea.Tick(StepInterval, func(time.Time) tea.Msg { return stepMsg{id: id} })
}

func (m *Model) reset() {
	m.body = append([]Point(nil), startBody...)
	m.food = startFood
	m.dir = Point{}
	m.heading = Point{}
	m.score = 0
	m.playing = false
	m.gameOver = false
}

func (m *Model) start() {
	m.reset()
	m.playing = true
	m.dir = right
	m.heading = right
}

// steer turns the snake unless it would reverse onto itself. Turns are
// checked against the last step taken, so several keys within one step
// cannot fold the snake back.
func (m *Model) steer(d Point) {
	if !m.playing || m.gameOver {
		return
	}
	if d.X != 0 && m.heading.X != 0 || d.Y != 0 && m.heading.Y != 0 {
		return
	}
	m.dir = d
}

func (m *Model) occupied(p Point) bool {
	for _, s := range m.body {
		if s == p {
			return true
		}
	}
	return false
}

// step advances one cell. Walls and the snake's own body end the round.
func (m *Model) step() {
	if !m.playing || m.gameOver {
		return
	}
	head := m.body[0].add(m.dir)
	if head.X < 0 || head.X >= GridSize || head.Y < 0 || head.Y >= GridSize || m.occupied(head) {
		m.gameOver = true
		m.playing = false
		return
	}

	m.heading = m.dir
	m.body = append([]Point{head}, m.body...)
	if head == m.food {
		m.score += FoodPoints
		m.food = m.placeFood()
		return
	}
	m.body = m.body[:len(m.body)-1]
}

// placeFood picks a random free cell.
func (m *Model) placeFood() Point {
	free := make([]Point, 0, GridSize*GridSize-len(m.body))
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			if p := (Point{x, y}); !m.occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return m.body[0]
	}
	return free[m.rng.IntN(len(free))]
}
