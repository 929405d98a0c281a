// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package view

// Overlay names; they match the animation names commands ask for.
const (
	NameMatrix = "matrix"
	NameCoffee = "coffee"
	NameSnake  = "snake"
)
