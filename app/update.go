// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"termfolio/commands/api"
	"termfolio/views/commandinput"
	"termfolio/views/confirmdialog"
	systeminfoview "termfolio/views/systeminfo"
	"termfolio/views/transcript"
	"termfolio/views/view"
)

const restartNotice = "Restarting terminal..."

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.resize(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case commandinput.SubmitMsg:
		return m, m.submit(msg.Command)

	case commandinput.CompletionsMsg:
		m.flush()
		m.appendOutput(strings.Join(msg.Matches, "  "))
		return m, nil

	case outputMsg:
		return m, m.handleOutput(msg)

	case restartMsg:
		if msg.epoch != m.epoch || !m.restarting {
			return m, nil
		}
		return m, m.reset()

	case view.DoneMsg:
		return m, m.unmountOverlay(msg.ID)

	case confirmdialog.ResultMsg:
		if !msg.Confirmed {
			return m, m.input.Focus()
		}
		l().Infow("exit confirmed", "session", m.sessionID)
		return m, nil

	case systeminfoview.SpinnerTickMsg:
		return m, m.header.Update(msg)
	}

	// Timer messages private to the overlay or the dialog.
	var cmds []tea.Cmd
	if m.overlay != nil {
		var cmd tea.Cmd
		m.overlay, cmd = m.overlay.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.confirm.Visible {
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, m.input.Update(msg))
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		l().Infow("quit", "session", m.sessionID)
		return tea.Quit
	}

	if m.confirm.Visible {
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return cmd
	}

	if m.overlay != nil {
		var cmd tea.Cmd
		m.overlay, cmd = m.overlay.Update(msg)
		return cmd
	}

	if m.restarting {
		return nil
	}

	key := msg.String()
	if cmd, ok := QuickKeys[key]; ok {
		return m.input.Run(cmd)
	}
	switch key {
	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		return m.transcript.Update(msg)
	}
	return m.input.Update(msg)
}

// submit records the command and acts on what the dispatcher makes of it.
func (m *Model) submit(raw string) tea.Cmd {
	cmd := strings.TrimSpace(raw)
	if cmd == "" {
		return nil
	}

	m.flush()
	m.transcript.Append(transcript.Command(cmd, m.opts.Now()))
	m.header.CommandRun()

	switch strings.ToLower(cmd) {
	case "exit", "quit":
		m.confirm = m.confirm.Open()
		m.input.Blur()
		return nil
	case "history":
		return m.respond(m.historyLines())
	}

	res := m.dispatcher.Execute(cmd)
	l().Debugw("command", "session", m.sessionID, "cmd", cmd, "kind", res.Kind.String())

	switch res.Kind {
	case api.KindClear:
		m.transcript.Clear()
		return nil

	case api.KindRestart:
		m.restarting = true
		m.input.Blur()
		m.appendOutput(restartNotice)
		return after(m.opts.Timing.RestartDelay, restartMsg{epoch: m.epoch})

	case api.KindAnimation:
		return m.mountOverlay(res.Animation)

	default:
		return m.respond(res.Output())
	}
}

func (m *Model) respond(lines []string) tea.Cmd {
	return m.enqueue(lines, m.opts.Timing.TypingDelay, m.opts.Timing.LineStagger)
}

func (m *Model) mountOverlay(name string) tea.Cmd {
	m.overlayID++
	o, cmd, ok := m.overlays.Mount(name, m.overlayID, m.width, m.overlayHeight())
	if !ok {
		l().Warnw("no overlay registered", "name", name)
		return m.respond([]string{"Animation not available: " + name})
	}
	m.overlay = o
	m.helpbar.WithViewHelp(overlayHelp[name]).WithGlobalHelp(overlayGlobalHelp)
	m.input.Blur()
	return cmd
}

func (m *Model) unmountOverlay(id int) tea.Cmd {
	if m.overlay == nil || m.overlay.ID() != id {
		return nil
	}
	m.overlay = nil
	m.helpbar.WithViewHelp(nil).WithGlobalHelp(globalHelp)
	m.input.SetValue("")
	return m.input.Focus()
}

func (m *Model) resize(msg tea.WindowSizeMsg) tea.Cmd {
	m.width, m.height = msg.Width, msg.Height
	m.transcript.SetSize(msg.Width, max(1, msg.Height-chromeHeight))
	m.input.SetWidth(msg.Width - len(m.opts.Prompt.String()) - 2)
	m.header.SetWidth(msg.Width)
	m.helpbar.SetWidth(msg.Width)
	m.confirm.Width, m.confirm.Height = msg.Width, msg.Height

	if m.overlay != nil {
		var cmd tea.Cmd
		m.overlay, cmd = m.overlay.Update(tea.WindowSizeMsg{Width: msg.Width, Height: m.overlayHeight()})
		return cmd
	}
	return nil
}

// overlayHeight leaves a row for the help bar under the overlay.
func (m *Model) overlayHeight() int { return max(1, m.height-1) }
