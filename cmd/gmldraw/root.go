package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"gmldraw/internal/config"
	"gmldraw/internal/logging"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gmldraw",
		Short:         "gmldraw interprets GML turtle-graphics commands",
		Long:          `gmldraw runs scripts of GML drawing commands (U, D, L, R, M, B, N, C, S ...) and renders the result to the terminal, a PNG file or a trace of line requests.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().String("config", "", "YAML configuration file")
	root.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("format", "", "Output format: term, png or trace")
	root.PersistentFlags().StringP("out", "o", "", "Output file (required for png)")
	root.PersistentFlags().Float64("zoom", 0, "Pixel multiplier for png output")
	root.PersistentFlags().String("metrics", "", "Write prometheus metrics to this file on exit")

	root.AddCommand(newRunCmd(), newReplCmd(), newCheckCmd())
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads the configuration, applies flag overrides and builds the
// logger.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("format") {
		cfg.Output.Format, _ = flags.GetString("format")
	}
	if flags.Changed("out") {
		cfg.Output.Path, _ = flags.GetString("out")
	}
	if flags.Changed("zoom") {
		cfg.Output.Zoom, _ = flags.GetFloat64("zoom")
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.New(cmd.ErrOrStderr(), level), nil
}
