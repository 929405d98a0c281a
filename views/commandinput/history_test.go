// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commandinput

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestHistoryIsBoundedMostRecentFirst(t *testing.T) {
	h := NewHistory(50)
	for i := 0; i < 60; i++ {
		h.Push(fmt.Sprintf("cmd-%d", i))
	}

	entries := h.Entries()
	require.Len(t, entries, 50)
	assert.Equal(t, "cmd-59", entries[0])
	assert.Equal(t, "cmd-10", entries[49])
}

func TestHistoryRecallRoundTrip(t *testing.T) {
	h := NewHistory(10)
	for _, c := range []string{"a", "b", "c"} {
		h.Push(c)
	}

	var got []string
	for i := 0; i < 3; i++ {
		v, ok := h.Older()
		require.True(t, ok)
		got = append(got, v)
	}
	assert.Equal(t, []string{"c", "b", "a"}, got)

	v, ok := h.Older()
	assert.True(t, ok)
	assert.Equal(t, "a", v, "older clamps at the oldest entry")
	assert.Equal(t, 2, h.Cursor())

	got = nil
	for i := 0; i < 3; i++ {
		v, ok := h.Newer()
		require.True(t, ok)
		got = append(got, v)
	}
	assert.Equal(t, []string{"b", "c", ""}, got)
	assert.Equal(t, -1, h.Cursor())

	_, ok = h.Newer()
	assert.False(t, ok, "newer is a no-op when not browsing")
}

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory(0)
	assert.Equal(t, DefaultHistorySize, h.Cap())
	_, ok := h.Older()
	assert.False(t, ok)
	assert.Equal(t, -1, h.Cursor())
}

func TestHistoryInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		size := rapid.IntRange(1, 8).Draw(rt, "size")
		h := NewHistory(size)

		ops := rapid.SliceOf(rapid.IntRange(0, 2)).Draw(rt, "ops")
		for i, op := range ops {
			switch op {
			case 0:
				h.Push(fmt.Sprintf("c%d", i))
			case 1:
				h.Older()
			case 2:
				h.Newer()
			}
			if h.Len() > size {
				rt.Fatalf("len %d exceeds capacity %d", h.Len(), size)
			}
			if h.Cursor() < -1 || h.Cursor() > h.Len()-1 {
				rt.Fatalf("cursor %d out of range for len %d", h.Cursor(), h.Len())
			}
		}
	})
}

func TestHistoryReset(t *testing.T) {
	h := NewHistory(3)
	h.Push("a")
	h.Older()

	h.Reset()
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, -1, h.Cursor())
	assert.Equal(t, 3, h.Cap())
}
