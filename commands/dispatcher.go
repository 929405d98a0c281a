// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commands

import (
	"strings"

	"termfolio/commands/api"
	"termfolio/commands/command"
	"termfolio/registry"
)

const (
	echoPrefix = "echo "
	cdPrefix   = "cd "
	clearKey   = "clear"
)

// Dispatcher resolves raw input lines to results. It holds no session state.
type Dispatcher struct {
	reg  *registry.Registry
	deps command.Deps
}

func NewDispatcher(reg *registry.Registry, deps command.Deps) *Dispatcher {
	return &Dispatcher{reg: reg, deps: deps}
}

// Registry exposes the registry the dispatcher resolves against.
func (d *Dispatcher) Registry() *registry.Registry { return d.reg }

// Execute resolves raw to a Result. Unknown input resolves to api.NotFound;
// Execute never fails.
func (d *Dispatcher) Execute(raw string) api.Result {
	trimmed := strings.TrimSpace(raw)
	cmd := strings.ToLower(trimmed)

	if cmd == "" {
		return api.Text("")
	}

	// Prefix rules short-circuit the registry, so "echo $user" echoes itself.
	switch {
	case strings.HasPrefix(cmd, echoPrefix):
		return api.Text(strings.TrimSpace(trimmed[len(echoPrefix):]))
	case strings.HasPrefix(cmd, cdPrefix):
		return command.Navigate(d.deps, strings.TrimSpace(cmd[len(cdPrefix):]))
	}

	if res, ok := d.reg.Lookup(cmd); ok {
		l().Debugw("dispatch", "cmd", cmd, "kind", res.Kind.String())
		return res
	}
	if cmd == clearKey {
		return api.Clear()
	}

	l().Debugw("dispatch: unknown command", "cmd", cmd)
	return api.NotFound(cmd)
}
