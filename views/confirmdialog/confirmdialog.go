// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package confirmdialog

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termfolio/styles"
	"termfolio/ui"
)

const (
	RequiredConfirmations = 3
	GoodbyeDelay          = 2 * time.Second
)

// ResultMsg reports how the dialog closed. Confirmed dialogs are followed by
// a quit once the goodbye screen has been shown.
type ResultMsg struct {
	Confirmed bool
}

type goodbyeDoneMsg struct{}

// Model asks for exit confirmation several times in a row before leaving.
// Any key other than a confirmation or a cancel resets the count.
type Model struct {
	Visible bool
	Message string
	Width   int
	Height  int

	clicks  int
	goodbye bool
}

func New(width, height int, message string) Model {
	return Model{Width: width, Height: height, Message: message}
}

// Open shows the dialog with a fresh counter.
func (m Model) Open() Model {
	m.Visible = true
	m.clicks = 0
	m.goodbye = false
	return m
}

func (m Model) Clicks() int { return m.clicks }

func (m Model) Goodbye() bool { return m.goodbye }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.Visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case goodbyeDoneMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		if m.goodbye {
			return m, nil
		}
		switch msg.String() {
		case "y", "Y", "enter":
			m.clicks++
			if m.clicks >= RequiredConfirmations {
				m.goodbye = true
				return m, tea.Batch(
					func() tea.Msg { return ResultMsg{Confirmed: true} },
					tea.Tick(GoodbyeDelay, func(time.Time) tea.Msg { return goodbyeDoneMsg{} }),
				)
			}
		case "n", "N", "esc":
			m.Visible = false
			m.clicks = 0
			return m, func() tea.Msg { return ResultMsg{Confirmed: false} }
		default:
			m.clicks = 0
		}
	}
	return m, nil
}

var (
	warnStyle    = lipgloss.NewStyle().Foreground(styles.Yellow).Bold(true)
	counterStyle = lipgloss.NewStyle().Foreground(styles.Red)
	noteStyle    = lipgloss.NewStyle().Foreground(styles.Gray).Italic(true)
	byeStyle     = lipgloss.NewStyle().Foreground(styles.Green).Bold(true)
)

func (m Model) View() string {
	if !m.Visible {
		return ""
	}

	if m.goodbye {
		body := byeStyle.Render("Good Bye!!! <3") + "\n\n" + "Thank you for visiting! 🚀"
		return ui.RenderFramedBox("", "", pad(body), "", 0)
	}

	lines := []string{
		warnStyle.Render("⚠️  Exit Confirmation"),
		"",
		m.Message,
	}
	if m.clicks > 0 {
		remaining := RequiredConfirmations - m.clicks
		plural := "s"
		if remaining == 1 {
			plural = ""
		}
		lines = append(lines, "",
			counterStyle.Render(fmt.Sprintf("Clicks: %d/%d", m.clicks, RequiredConfirmations)),
			counterStyle.Render(fmt.Sprintf("%d more click%s required", remaining, plural)))
	}
	yes := "[y] Yes"
	if m.clicks > 0 {
		yes = fmt.Sprintf("[y] Yes (%d/%d)", m.clicks, RequiredConfirmations)
	}
	lines = append(lines, "", yes+"   [n] No")

	footer := noteStyle.Render("Terminal security protocol: Triple confirmation required")
	return ui.RenderFramedBox("Confirm", "", pad(strings.Join(lines, "\n")), footer, 0)
}

func pad(s string) string {
	return lipgloss.NewStyle().Padding(1, 2).Render(s)
}
