// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commandinput

type (
	// SubmitMsg is emitted when the user submits a non-empty command.
	SubmitMsg struct {
		Command string
	}

	// CompletionsMsg lists the candidates when tab completion is ambiguous.
	CompletionsMsg struct {
		Matches []string
	}
)
