// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package api

import "errors"

// ErrEmptyCommand is returned when a registry key is blank after normalization.
var ErrEmptyCommand = errors.New("empty command")

// ErrDuplicateCommand is returned when two registry entries share a key.
var ErrDuplicateCommand = errors.New("duplicate command")
