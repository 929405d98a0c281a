// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"termfolio/commands"
	"termfolio/portfolio"
	"termfolio/views/commandinput"
	"termfolio/views/transcript"
)

// Timing controls the presentation delays of the session.
type Timing struct {
	// TypingDelay precedes the first line of every response.
	TypingDelay time.Duration
	// LineStagger separates consecutive lines of a multi-line response.
	LineStagger time.Duration
	// BannerStagger separates the lines of the welcome banner.
	BannerStagger time.Duration
	// RestartDelay is how long the restart notice shows before the reset.
	RestartDelay time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		TypingDelay:   100 * time.Millisecond,
		LineStagger:   50 * time.Millisecond,
		BannerStagger: 100 * time.Millisecond,
		RestartDelay:  time.Second,
	}
}

// Options wires a session to its collaborators.
type Options struct {
	Dispatcher     *commands.Dispatcher
	Profile        *portfolio.Profile
	Prompt         transcript.Prompt
	HistorySize    int
	ShowTimestamps bool
	// Timing defaults to DefaultTiming when nil. Zero durations are kept.
	Timing *Timing

	Now          func() time.Time
	NewSessionID func() string
	Rand         *rand.Rand
}

func (o Options) withDefaults() Options {
	if o.HistorySize <= 0 {
		o.HistorySize = commandinput.DefaultHistorySize
	}
	if o.Timing == nil {
		t := DefaultTiming()
		o.Timing = &t
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewSessionID == nil {
		o.NewSessionID = uuid.NewString
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if o.Prompt.Path == "" {
		o.Prompt.Path = "~"
	}
	return o
}
