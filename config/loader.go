// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "TERMFOLIO"

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// ConfigPath is an explicit config file; it must exist when set.
	ConfigPath string
	// FlagOverrides are highest-priority values from CLI flags (dot-notated keys).
	FlagOverrides map[string]any
}

// Load returns the effective configuration after applying precedence:
// defaults < config file < env (TERMFOLIO_*) < flags.
func Load(opts LoadOptions) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, required := opts.ConfigPath, true
	if path == "" {
		path, required = DefaultConfigPath(), false
	}
	if err := mergeConfigFile(v, path, required); err != nil {
		return Config{}, err
	}

	for k, val := range opts.FlagOverrides {
		v.Set(k, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	l().Debugw("config loaded", "file", v.ConfigFileUsed())
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()

	v.SetDefault("prompt.user", def.Prompt.User)
	v.SetDefault("prompt.host", def.Prompt.Host)
	v.SetDefault("history.size", def.History.Size)
	v.SetDefault("timing.typing_delay", def.Timing.TypingDelay)
	v.SetDefault("timing.line_stagger", def.Timing.LineStagger)
	v.SetDefault("timing.banner_stagger", def.Timing.BannerStagger)
	v.SetDefault("timing.restart_delay", def.Timing.RestartDelay)
	v.SetDefault("profile.path", def.Profile.Path)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.path", def.Log.Path)
	v.SetDefault("show_timestamps", def.ShowTimestamps)
}

func mergeConfigFile(v *viper.Viper, path string, required bool) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("stat config %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("merge config %s: %w", path, err)
	}
	return nil
}

// DefaultConfigPath is $XDG_CONFIG_HOME/termfolio/config.yaml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "termfolio", "config.yaml")
}
