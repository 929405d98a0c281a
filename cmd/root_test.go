// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/config"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "termfolio dev\n", out.String())
}

func TestNewSessionFromDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	m, err := newSession(cfg)
	require.NoError(t, err)
	assert.Equal(t, "alexjohnson@termfolio:~$", m.Transcript().Prompt().String())
	assert.NotEmpty(t, m.SessionID())
}

func TestNewSessionMissingProfile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Profile.Path = "/does/not/exist.yaml"
	_, err := newSession(cfg)
	assert.Error(t, err)
}

func TestFlagOverrides(t *testing.T) {
	require.NoError(t, rootCmd.Flags().Set("log-level", "debug"))
	require.NoError(t, rootCmd.Flags().Set("no-timestamps", "true"))
	t.Cleanup(func() {
		logLevel, noStamps = "", false
	})

	got := flagOverrides(rootCmd)
	assert.Equal(t, "debug", got["log.level"])
	assert.Equal(t, false, got["show_timestamps"])
	assert.NotContains(t, got, "profile.path")
}
