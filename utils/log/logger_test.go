// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package termlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	lvl, ok := ParseLevel("WARNING")
	assert.True(t, ok)
	assert.Equal(t, zap.WarnLevel, lvl)

	_, ok = ParseLevel("verbose")
	assert.False(t, ok)
}

func TestDetectLogLevelPrefersExplicit(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	assert.Equal(t, zap.DebugLevel, detectLogLevel("debug", "prod"))
	assert.Equal(t, zap.ErrorLevel, detectLogLevel("", "prod"))
}

func TestDetectLogLevelModeDefault(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, zap.DebugLevel, detectLogLevel("", "dev"))
	assert.Equal(t, zap.InfoLevel, detectLogLevel("", "prod"))
}

func TestLFallsBackToNoop(t *testing.T) {
	logger = nil
	assert.NotNil(t, L())
	assert.NotPanics(t, func() { L().With("k", "v").Infof("hello %d", 1) })
}

func TestInitWritesToGivenPath(t *testing.T) {
	path := t.TempDir() + "/test.log"
	Init(Options{AppName: "termfolio", Level: "debug", Path: path})
	defer func() { logger = nil }()

	L().Debugw("probe", "k", 1)
	Sync()
	assert.FileExists(t, path)
}
