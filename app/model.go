// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"termfolio/commands"
	"termfolio/portfolio"
	"termfolio/views/coffee"
	"termfolio/views/commandinput"
	"termfolio/views/confirmdialog"
	"termfolio/views/helpbar"
	"termfolio/views/matrix"
	"termfolio/views/snake"
	systeminfoview "termfolio/views/systeminfo"
	"termfolio/views/transcript"
	"termfolio/views/view"
)

const exitMessage = "Are you sure you want to exit this terminal?"

// QuickKeys maps function keys to the commands they submit.
var QuickKeys = map[string]string{
	"f1": "help",
	"f2": "about",
	"f3": "skills",
	"f4": "projects",
	"f5": "clear",
	"f6": "restart",
	"f7": "snake",
	"f8": "matrix",
	"f9": "coffee",
}

var globalHelp = []helpbar.HelpEntry{
	{Key: "tab", Desc: "complete"},
	{Key: "↑↓", Desc: "history"},
	{Key: "ctrl+l", Desc: "clear"},
	{Key: "F1", Desc: "help"},
	{Key: "F2", Desc: "about"},
	{Key: "F3", Desc: "skills"},
	{Key: "F4", Desc: "projects"},
	{Key: "F6", Desc: "restart"},
	{Key: "F7-F9", Desc: "games"},
	{Key: "ctrl+c", Desc: "quit"},
}

var overlayGlobalHelp = []helpbar.HelpEntry{{Key: "ctrl+c", Desc: "quit"}}

// overlayHelp lists the keys each overlay understands.
var overlayHelp = map[string][]helpbar.HelpEntry{
	view.NameMatrix: {{Key: "esc", Desc: "exit"}},
	view.NameCoffee: {{Key: "esc", Desc: "exit"}},
	view.NameSnake: {
		{Key: "enter", Desc: "start"},
		{Key: "←↑→↓", Desc: "steer"},
		{Key: "esc", Desc: "exit"},
	},
}

// pendingLine is an output line waiting for its timer.
type pendingLine struct {
	content string
	delay   time.Duration
}

// Model is the shell session: transcript, prompt, header and whatever
// overlay or dialog currently owns the keyboard.
type Model struct {
	opts       Options
	dispatcher *commands.Dispatcher
	profile    *portfolio.Profile

	input      *commandinput.Model
	transcript *transcript.Transcript
	header     *systeminfoview.Model
	helpbar    *helpbar.Model
	confirm    confirmdialog.Model

	overlays  view.Registry
	overlay   view.Overlay
	overlayID int

	sessionID  string
	epoch      int
	batch      int
	pending    []pendingLine
	restarting bool

	width  int
	height int
}

// New builds a session. The welcome banner starts playing from Init.
func New(opts Options) (*Model, error) {
	opts = opts.withDefaults()
	if opts.Dispatcher == nil {
		return nil, errors.New("new session: dispatcher is required")
	}
	if opts.Profile == nil {
		return nil, errors.New("new session: profile is required")
	}

	reg := opts.Dispatcher.Registry()
	m := &Model{
		opts:       opts,
		dispatcher: opts.Dispatcher,
		profile:    opts.Profile,
		input:      commandinput.New(opts.Prompt.String()+" ", opts.HistorySize, reg.Suggest),
		transcript: transcript.New(opts.Prompt, opts.ShowTimestamps),
		header:     systeminfoview.New(opts.Prompt.User+"@"+opts.Prompt.Host, opts.Now),
		helpbar:    helpbar.New(0).WithGlobalHelp(globalHelp),
		confirm:    confirmdialog.New(0, 0, exitMessage),
		overlays: view.Registry{
			view.NameMatrix: matrix.Factory(opts.Rand),
			view.NameCoffee: coffee.Factory(),
			view.NameSnake:  snake.Factory(opts.Rand),
		},
	}
	m.startSession()
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.input.Focus(), m.header.Init(), m.playBanner())
}

// SessionID identifies the current session; it changes on restart.
func (m *Model) SessionID() string { return m.sessionID }

func (m *Model) Transcript() *transcript.Transcript { return m.transcript }

func (m *Model) Input() *commandinput.Model { return m.input }

func (m *Model) Overlay() view.Overlay { return m.overlay }

func (m *Model) ConfirmVisible() bool { return m.confirm.Visible }

func (m *Model) startSession() {
	m.sessionID = m.opts.NewSessionID()
	m.header.Reset(m.sessionID)
	l().Infow("session started", "session", m.sessionID)
}

// reset tears the session down and starts a fresh one, as on first launch.
func (m *Model) reset() tea.Cmd {
	l().Infow("session restarting", "session", m.sessionID)
	m.epoch++
	m.batch = 0
	m.pending = nil
	m.restarting = false
	m.overlay = nil
	m.helpbar.WithViewHelp(nil).WithGlobalHelp(globalHelp)
	m.confirm.Visible = false
	m.transcript.Clear()
	m.input.Reset()
	m.startSession()
	return tea.Batch(m.input.Focus(), m.playBanner())
}
