// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package config resolves the effective settings of a termfolio run.
package config

import (
	"errors"
	"fmt"
	"time"

	termlog "termfolio/utils/log"
)

type Config struct {
	Prompt         PromptConfig  `mapstructure:"prompt"`
	History        HistoryConfig `mapstructure:"history"`
	Timing         TimingConfig  `mapstructure:"timing"`
	Profile        ProfileConfig `mapstructure:"profile"`
	Log            LogConfig     `mapstructure:"log"`
	ShowTimestamps bool          `mapstructure:"show_timestamps"`
}

type PromptConfig struct {
	// User defaults to the profile's username when empty.
	User string `mapstructure:"user"`
	Host string `mapstructure:"host"`
}

type HistoryConfig struct {
	Size int `mapstructure:"size"`
}

type TimingConfig struct {
	TypingDelay   time.Duration `mapstructure:"typing_delay"`
	LineStagger   time.Duration `mapstructure:"line_stagger"`
	BannerStagger time.Duration `mapstructure:"banner_stagger"`
	RestartDelay  time.Duration `mapstructure:"restart_delay"`
}

type ProfileConfig struct {
	// Path to a profile YAML file; the embedded profile is used when empty.
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

func DefaultConfig() Config {
	return Config{
		Prompt:  PromptConfig{Host: "termfolio"},
		History: HistoryConfig{Size: 50},
		Timing: TimingConfig{
			TypingDelay:   100 * time.Millisecond,
			LineStagger:   50 * time.Millisecond,
			BannerStagger: 100 * time.Millisecond,
			RestartDelay:  time.Second,
		},
		ShowTimestamps: true,
	}
}

var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects settings the session cannot run with.
func Validate(cfg Config) error {
	var errs []error
	if cfg.History.Size <= 0 {
		errs = append(errs, fmt.Errorf("history.size must be positive, got %d", cfg.History.Size))
	}
	if cfg.Prompt.Host == "" {
		errs = append(errs, errors.New("prompt.host must not be empty"))
	}
	delays := []struct {
		key string
		d   time.Duration
	}{
		{"timing.typing_delay", cfg.Timing.TypingDelay},
		{"timing.line_stagger", cfg.Timing.LineStagger},
		{"timing.banner_stagger", cfg.Timing.BannerStagger},
		{"timing.restart_delay", cfg.Timing.RestartDelay},
	}
	for _, dl := range delays {
		if dl.d < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %s", dl.key, dl.d))
		}
	}
	if cfg.Log.Level != "" {
		if _, ok := termlog.ParseLevel(cfg.Log.Level); !ok {
			errs = append(errs, fmt.Errorf("log.level %q is not a known level", cfg.Log.Level))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
