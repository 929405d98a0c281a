// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package cmd holds the termfolio command line.
package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"termfolio/app"
	"termfolio/commands"
	"termfolio/commands/command"
	"termfolio/config"
	"termfolio/portfolio"
	termlog "termfolio/utils/log"
	"termfolio/views/transcript"
)

const appName = "termfolio"

// Version is set at build time with -ldflags.
var Version = "dev"

var (
	configPath  string
	profilePath string
	logLevel    string
	noStamps    bool
)

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "A portfolio that lives in your terminal",
	Long: `termfolio opens a simulated shell that answers portfolio questions:
about, skills, projects, contact and a few games. Type "help" once it starts.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default $XDG_CONFIG_HOME/termfolio/config.yaml)")
	rootCmd.Flags().StringVar(&profilePath, "profile", "", "portfolio profile YAML (default: built-in profile)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&noStamps, "no-timestamps", false, "hide command timestamps")

	rootCmd.AddCommand(versionCmd)
}

// HandleError prints err and exits.
func HandleError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func flagOverrides(cmd *cobra.Command) map[string]any {
	overrides := map[string]any{}
	if cmd.Flags().Changed("profile") {
		overrides["profile.path"] = profilePath
	}
	if cmd.Flags().Changed("log-level") {
		overrides["log.level"] = logLevel
	}
	if cmd.Flags().Changed("no-timestamps") {
		overrides["show_timestamps"] = !noStamps
	}
	return overrides
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.LoadOptions{
		ConfigPath:    configPath,
		FlagOverrides: flagOverrides(cmd),
	})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	termlog.Init(termlog.Options{AppName: appName, Level: cfg.Log.Level, Path: cfg.Log.Path})
	defer termlog.Sync()

	session, err := newSession(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(session, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal: %w", err)
	}
	return nil
}

func loadProfile(path string) (*portfolio.Profile, error) {
	if path == "" {
		return portfolio.Default()
	}
	return portfolio.Load(path)
}

func newSession(cfg config.Config) (*app.Model, error) {
	profile, err := loadProfile(cfg.Profile.Path)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	deps := command.Deps{Profile: profile, Now: time.Now}
	reg, err := commands.NewRegistry(deps)
	if err != nil {
		return nil, err
	}

	user := cfg.Prompt.User
	if user == "" {
		user = profile.Basic.Username
	}

	return app.New(app.Options{
		Dispatcher:  commands.NewDispatcher(reg, deps),
		Profile:     profile,
		Prompt:      transcript.Prompt{User: user, Host: cfg.Prompt.Host, Path: "~"},
		HistorySize: cfg.History.Size,
		Timing: &app.Timing{
			TypingDelay:   cfg.Timing.TypingDelay,
			LineStagger:   cfg.Timing.LineStagger,
			BannerStagger: cfg.Timing.BannerStagger,
			RestartDelay:  cfg.Timing.RestartDelay,
		},
		ShowTimestamps: cfg.ShowTimestamps,
	})
}
