// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package portfolio

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultProfile []byte

var ErrIncompleteProfile = errors.New("incomplete profile")

// Default returns the built-in profile.
func Default() (*Profile, error) {
	return Parse(defaultProfile)
}

// Load reads a profile from path. An empty path yields the built-in profile.
func Load(path string) (*Profile, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a YAML profile. Unknown fields are rejected so typos surface early.
func Parse(data []byte) (*Profile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Profile) validate() error {
	switch {
	case p.Basic.Name == "":
		return fmt.Errorf("%w: basic.name is required", ErrIncompleteProfile)
	case p.Basic.Username == "":
		return fmt.Errorf("%w: basic.username is required", ErrIncompleteProfile)
	case len(p.Fortunes) == 0:
		return fmt.Errorf("%w: at least one fortune is required", ErrIncompleteProfile)
	}
	return nil
}
