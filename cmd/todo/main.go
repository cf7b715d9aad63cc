package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/todo/internal/app"
	"github.com/dori/todo/internal/config"
	"github.com/dori/todo/internal/model"
	"github.com/dori/todo/internal/ui"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
)

type options struct {
	configPath string
	debug      bool
	logFile    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "A small terminal todo list",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  todo

  # Use a specific keymap file and write a debug log
  todo --config ./config.toml --debug
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath(), "config file (TOML)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "write a JSON debug log (also "+app.DebugEnv+"=1)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", app.DefaultLogFile, "debug log path")

	cmd.AddCommand(newVersionCmd(), newConfigCmd(opts))
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "todo v%s\n", version)
			return err
		},
	}
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			out, err := config.Encode(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func runTUI(opts *options) error {
	settings, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	logger, closer, err := setupLogger(opts)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	// Create application
	application, err := app.New(&app.Config{
		Settings: settings,
		Seed:     model.Seed(),
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	defer application.Close()

	// Create and run program
	p := tea.NewProgram(
		ui.NewRootModel(application),
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}

func setupLogger(opts *options) (*slog.Logger, io.Closer, error) {
	if !opts.debug && !app.DebugEnabled() {
		return app.DiscardLogger(), nil, nil
	}
	return app.OpenLogger(opts.logFile)
}
