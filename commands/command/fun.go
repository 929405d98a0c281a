// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"termfolio/commands/api"
	"termfolio/registry"
)

// Overlay names understood by the session.
const (
	AnimationMatrix = "matrix"
	AnimationCoffee = "coffee"
	AnimationSnake  = "snake"
)

func registerFun(b *registry.Builder, d Deps) {
	p := d.Profile

	b.Handle("matrix", SectionFun, "Enter the matrix", func() api.Result { return api.Animation(AnimationMatrix) })
	b.Handle("coffee", SectionFun, "Brew some coffee", func() api.Result { return api.Animation(AnimationCoffee) })
	b.Handle("snake", SectionFun, "Play the classic Snake game", func() api.Result { return api.Animation(AnimationSnake) })
	b.Handle("fortune", SectionFun, "Get a random tech quote", func() api.Result {
		return api.Text(p.Fortunes[d.Pick(len(p.Fortunes))])
	})
	b.Handle("sudo", SectionFun, "Ask for more power", func() api.Result {
		return api.Lines(
			"We trust you have received the usual lecture from the local System",
			"Administrator. It usually boils down to these three things:",
			"",
			"    #1) Respect the privacy of others.",
			"    #2) Think before you type.",
			"    #3) With great power comes great responsibility.",
			"",
			"[sudo] password for "+p.Basic.Username+": ********",
			"Access granted! What would you like to sudo today?",
		)
	})
	b.Handle("sudo make me a cto", SectionFun, "Try your luck", func() api.Result {
		return api.Lines(
			"[sudo] password for user: *********",
			"Permission denied: "+p.Basic.Name+" earns that title, not just grants it.",
		)
	})
	b.Register(registry.Entry{
		Key:     "sudo make me a sandwich",
		Section: SectionFun,
		Hidden:  true,
		Handler: func() api.Result {
			return api.Lines(
				"🥪 *poof*",
				"Here's your sandwich! Extra security layers included.",
				"Ingredients: SSL certificates, encrypted pickles, and hardened bread.",
			)
		},
	})
	b.Register(registry.Entry{
		Key:     "sudo rm -rf /",
		Section: SectionFun,
		Hidden:  true,
		Handler: func() api.Result {
			return api.Lines(
				"Nice try! 😄",
				"Permission denied: Cannot delete the universe.",
				`Maybe try "sudo make me a sandwich" instead?`,
			)
		},
	})
}
