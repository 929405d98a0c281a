// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package helpbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewListsViewHelpFirst(t *testing.T) {
	m := New(0).WithViewHelp([]HelpEntry{{Key: "tab", Desc: "complete"}})
	assert.Equal(t, "<tab> complete  <ctrl+c> quit", m.View())
}

func TestViewDropsWhatDoesNotFit(t *testing.T) {
	m := New(16).WithGlobalHelp([]HelpEntry{
		{Key: "F1", Desc: "help"},
		{Key: "F2", Desc: "about"},
		{Key: "F3", Desc: "skills"},
	})
	assert.Equal(t, "<F1> help", m.View())

	m.SetWidth(0)
	assert.Equal(t, "<F1> help  <F2> about  <F3> skills", m.View())
}
