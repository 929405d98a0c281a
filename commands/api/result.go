// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package api

import "fmt"

// Kind tags the variant held by a Result.
type Kind int

const (
	// KindText is a single line of output.
	KindText Kind = iota
	// KindLines is multi-line output, rendered with a per-line stagger.
	KindLines
	// KindClear tells the session to discard the transcript.
	KindClear
	// KindRestart tells the session to tear down and reinitialize itself.
	KindRestart
	// KindAnimation asks the session to mount the overlay named by Animation.
	KindAnimation
	// KindNotFound is the unknown-command message.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindLines:
		return "lines"
	case KindClear:
		return "clear"
	case KindRestart:
		return "restart"
	case KindAnimation:
		return "animation"
	case KindNotFound:
		return "not-found"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Result is what a command resolves to. Only the field matching Kind is set.
type Result struct {
	Kind      Kind
	Text      string
	Lines     []string
	Animation string
}

func Text(s string) Result { return Result{Kind: KindText, Text: s} }

func Lines(lines ...string) Result {
	cpy := make([]string, len(lines))
	copy(cpy, lines)
	return Result{Kind: KindLines, Lines: cpy}
}

func Clear() Result { return Result{Kind: KindClear} }

func Restart() Result { return Result{Kind: KindRestart} }

func Animation(name string) Result { return Result{Kind: KindAnimation, Animation: name} }

// NotFound builds the unknown-command message for the normalized input.
func NotFound(cmd string) Result {
	return Result{Kind: KindNotFound, Text: fmt.Sprintf(`Command not found: %s. Type "help" for available commands.`, cmd)}
}

// Output returns the lines to append to the transcript, in order.
// Sentinels and the empty text produce none.
func (r Result) Output() []string {
	switch r.Kind {
	case KindText, KindNotFound:
		if r.Text == "" {
			return nil
		}
		return []string{r.Text}
	case KindLines:
		return r.Lines
	}
	return nil
}
