// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package transcript

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	at     = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	prompt = Prompt{User: "alex", Host: "termfolio", Path: "~"}
)

func TestAppendAndClear(t *testing.T) {
	tr := New(prompt, false)
	tr.Append(Command("about", at))
	tr.Append(Output("[green]hello[/green]", at))

	require.Equal(t, 2, tr.Len())
	assert.Equal(t, KindCommand, tr.Entries()[0].Kind)
	assert.Equal(t, "alex@termfolio:~$ about\nhello", tr.Plain())

	tr.Clear()
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, "", tr.Plain())
}

func TestEntriesIsACopy(t *testing.T) {
	tr := New(prompt, false)
	tr.Append(Output("x", at))
	es := tr.Entries()
	es[0].Content = "y"
	assert.Equal(t, "x", tr.Entries()[0].Content)
}

func TestViewRendersOnlyOnChange(t *testing.T) {
	tr := New(prompt, true)
	tr.SetSize(60, 10)
	tr.Append(Command("whoami", at))

	v := tr.View()
	assert.Contains(t, v, "whoami")
	assert.Contains(t, v, "[09:30:00]")
	assert.Equal(t, 1, tr.renders)

	tr.View()
	assert.Equal(t, 1, tr.renders, "unchanged content is served from cache")

	tr.Append(Output("alex", at))
	tr.View()
	assert.Equal(t, 2, tr.renders)

	tr.SetSize(40, 10)
	tr.View()
	assert.Equal(t, 3, tr.renders)
}

func TestViewFollowsBottom(t *testing.T) {
	tr := New(prompt, false)
	tr.SetSize(40, 3)
	for i := 0; i < 10; i++ {
		tr.Append(Output("line", at))
	}
	tr.Append(Output("last", at))
	assert.Contains(t, tr.View(), "last")
}

func TestPromptString(t *testing.T) {
	assert.Equal(t, "alex@termfolio:~$", prompt.String())
	assert.Equal(t, "command", KindCommand.String())
	assert.Equal(t, "output", KindOutput.String())
}
