// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package ui

import (
	"github.com/briandowns/spinner"
)

// DefaultSpinnerCharsetIndex selects the braille dots charset.
const DefaultSpinnerCharsetIndex = 14

// SpinnerCharAt returns the spinner character for the given frame index.
// Falls back to an ellipsis if the charset is not available.
func SpinnerCharAt(frame int) string {
	frames := spinner.CharSets[DefaultSpinnerCharsetIndex]
	if len(frames) == 0 {
		return "…"
	}
	if frame < 0 {
		frame = -frame
	}
	return frames[frame%len(frames)]
}

// SpinnerFrames is the number of distinct frames in the charset.
func SpinnerFrames() int {
	return len(spinner.CharSets[DefaultSpinnerCharsetIndex])
}
