// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package snake

import (
	"math/rand/v2"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/views/view"
)

func newTest() *Model {
	return New(1, 80, 30, rand.New(rand.NewPCG(7, 7)))
}

func press(m *Model, k tea.KeyType) { m.Update(tea.KeyMsg{Type: k}) }

func TestStepsOnlyAfterStart(t *testing.T) {
	m := newTest()
	_, cmd := m.Update(stepMsg{id: 1})
	require.NotNil(t, cmd, "the step timer keeps running")
	assert.Equal(t, []Point{{10, 10}}, m.Body())

	press(m, tea.KeyEnter)
	require.True(t, m.Playing())
	m.Update(stepMsg{id: 1})
	assert.Equal(t, []Point{{11, 10}}, m.Body())
}

func TestSpaceStarts(t *testing.T) {
	m := newTest()
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, m.Playing())
}

func TestNoReversal(t *testing.T) {
	m := newTest()
	press(m, tea.KeyEnter)

	press(m, tea.KeyLeft)
	assert.Equal(t, right, m.dir)

	press(m, tea.KeyUp)
	assert.Equal(t, up, m.dir)
	m.step()
	press(m, tea.KeyDown)
	assert.Equal(t, up, m.dir)
}

func TestTwoTurnsInOneStepCannotReverse(t *testing.T) {
	m := newTest()
	press(m, tea.KeyEnter)
	m.step()
	m.step()
	require.Equal(t, []Point{{12, 10}}, m.Body())
	m.body = []Point{{12, 10}, {11, 10}, {10, 10}}

	press(m, tea.KeyUp)
	press(m, tea.KeyLeft)
	assert.Equal(t, up, m.dir, "left is still a reversal of the last step")

	m.step()
	assert.False(t, m.GameOver())
	assert.Equal(t, Point{12, 9}, m.Body()[0])
}

func TestEatingFoodGrowsAndScores(t *testing.T) {
	m := newTest()
	press(m, tea.KeyEnter)
	m.food = Point{11, 10}

	m.step()
	assert.Equal(t, FoodPoints, m.Score())
	assert.Equal(t, []Point{{11, 10}, {10, 10}}, m.Body())
	assert.NotContains(t, m.Body(), m.food, "food never lands on the snake")
	assert.Contains(t, m.View(), "Score: 10")
}

func TestWallCollisionEndsGame(t *testing.T) {
	m := newTest()
	press(m, tea.KeyEnter)
	for i := 0; i < GridSize; i++ {
		m.step()
	}
	assert.True(t, m.GameOver())
	assert.False(t, m.Playing())
	assert.Contains(t, m.View(), "Game Over!")

	press(m, tea.KeyEnter)
	assert.True(t, m.Playing())
	assert.Equal(t, 0, m.Score())
}

func TestSelfCollisionEndsGame(t *testing.T) {
	m := newTest()
	press(m, tea.KeyEnter)
	m.body = []Point{{5, 5}, {4, 5}, {4, 6}, {5, 6}, {6, 6}}
	m.dir = down

	m.step()
	assert.True(t, m.GameOver())
}

func TestScoreUsesThousandsSeparator(t *testing.T) {
	m := newTest()
	m.score = 1230
	assert.Contains(t, m.View(), "Score: 1,230")
}

func TestEscAndStaleTicks(t *testing.T) {
	m := newTest()
	_, cmd := m.Update(stepMsg{id: 2})
	assert.Nil(t, cmd)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, view.DoneMsg{ID: 1}, cmd())
	assert.Equal(t, view.NameSnake, m.Name())
}
