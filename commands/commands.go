// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commands

import (
	"fmt"

	"termfolio/commands/command"
	"termfolio/registry"
)

// NewRegistry builds the closed command set over the given dependencies.
func NewRegistry(deps command.Deps) (*registry.Registry, error) {
	if deps.Profile == nil {
		return nil, fmt.Errorf("build registry: profile is required")
	}

	var reg *registry.Registry
	deps.Entries = func() []registry.Entry {
		if reg == nil {
			return nil
		}
		return reg.Described()
	}

	b := registry.NewBuilder()
	command.RegisterAll(b, deps)

	built, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}
	reg = built
	l().Debugf("registry built with %d commands", reg.Len())
	return reg, nil
}
