// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package transcript

import (
	"fmt"
	"time"
)

type Kind int

const (
	KindCommand Kind = iota
	KindOutput
)

func (k Kind) String() string {
	if k == KindCommand {
		return "command"
	}
	return "output"
}

// Entry is one rendered record: a submitted command or a line of output.
type Entry struct {
	Kind      Kind
	Content   string
	Timestamp time.Time
}

func Command(content string, at time.Time) Entry {
	return Entry{Kind: KindCommand, Content: content, Timestamp: at}
}

func Output(content string, at time.Time) Entry {
	return Entry{Kind: KindOutput, Content: content, Timestamp: at}
}

// Prompt identifies the simulated shell user, e.g. "alex@termfolio:~$".
type Prompt struct {
	User string
	Host string
	Path string
}

func (p Prompt) String() string {
	return fmt.Sprintf("%s@%s:%s$", p.User, p.Host, p.Path)
}
