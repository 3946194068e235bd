// Package cmd provides the CLI commands for fitjournal.
//
// Copyright (c) The fitjournal authors
//
// Licensed under the MIT License.
// See LICENSE file for full license text.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fitjournal/fitjournal/internal/config"
	"github.com/fitjournal/fitjournal/internal/errors"
	"github.com/fitjournal/fitjournal/internal/output"
	"github.com/fitjournal/fitjournal/internal/runtime"
	"github.com/fitjournal/fitjournal/internal/session"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat   string
	flagColor    string
	flagDebug    bool
	flagFile     string
	flagStore    string
	flagDatabase string
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fitjournal",
	Short: "A menu-driven fitness journal",
	Long: `fitjournal walks you through simple numbered menus to log workouts,
review your workout history and read a few fitness tips.

Run it without arguments for the interactive menus. Workouts are appended
to workout_history.txt in the current directory, one line per workout.

Examples:
  fitjournal
  fitjournal history
  fitjournal log --type Running --duration 30 --date yesterday
  fitjournal --store badger dashboard`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		opts := runtime.DefaultOptions()
		opts.Config = configFromFlags(cmd)
		opts.Writer = cmd.OutOrStdout()
		opts.Format = output.ParseFormat(flagFormat)
		opts.ColorMode = output.ParseColorMode(flagColor)
		opts.Debug = flagDebug

		var err error
		ctx, err = runtime.New(opts)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeContext()
	},
	RunE: runSession,
}

// configFromFlags layers explicitly set flags over the environment config.
func configFromFlags(cmd *cobra.Command) *config.RuntimeConfig {
	cfg := *config.Global
	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.History.File = flagFile
	}
	if flags.Changed("store") {
		cfg.History.Store = flagStore
	}
	if flags.Changed("database") {
		cfg.History.DatabasePath = flagDatabase
	}
	return &cfg
}

func closeContext() error {
	if ctx == nil {
		return nil
	}
	err := ctx.Close()
	ctx = nil
	return err
}

// runSession runs the interactive menus until the user confirms exit.
func runSession(cmd *cobra.Command, args []string) error {
	s := session.New(cmd.InOrStdin(), ctx.CLIFormatter(), ctx.History)
	err := s.Run(cmd.Context())
	if errors.Is(err, errors.ErrInputClosed) {
		// The last prompt has no newline of its own.
		ctx.Formatter.Println()
	}
	return err
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
		// PersistentPostRunE is skipped when RunE fails.
		closeContext()
	}
	return err
}

func printError(err error) {
	if ctx != nil && ctx.IsJSON() {
		ctx.JSONFormatter().PrintError("error", err.Error(), errors.GetSuggestion(err))
		return
	}
	rootCmd.PrintErrln("Error: " + runtime.FormatError(err))
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format for history and log: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", config.DefaultHistoryFile,
		"Workout history file (file store)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", config.StoreFile,
		"History store: file, badger")
	rootCmd.PersistentFlags().StringVar(&flagDatabase, "database", "",
		"Badger database directory (badger store, default $XDG_DATA_HOME/fitjournal/db)")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("fitjournal %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}
