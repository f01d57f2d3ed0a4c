package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/five82/logview/internal/app"
)

type rootFlags struct {
	configPath string
	limit      string
	levels     []string
	theme      string
	debugLog   string
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "logview: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "logview [file]",
		Short: "Browse the tail of a log file by severity",
		Long: `logview shows the most recent part of a log file, newest line first.
Lines are classified by keyword (DEBUG, INFO, WARNING, ERROR, PANIC) and only
lines of enabled levels are listed, each tinted with its level color.

Examples:
  logview /var/log/app.log
  logview --limit "8 MiB" --level debug=on app.log
  logview print --json app.log`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			closeLog, err := setupLogging(flags.debugLog)
			if err != nil {
				return err
			}
			defer closeLog()

			return app.Run(cmd.Context(), flags.options(args))
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "config file (default: ~/.config/logview/config.toml)")
	pf.StringVar(&flags.limit, "limit", "", `bytes read from the end of the file, e.g. "4 MiB"`)
	pf.StringArrayVarP(&flags.levels, "level", "l", nil, "enable or disable a level: name=on|off (repeatable)")
	pf.StringVar(&flags.theme, "theme", "", "color theme: Nightfox, Kanagawa, Slate")
	pf.StringVar(&flags.debugLog, "debug-log", "", "write diagnostic logs to this file")

	cmd.AddCommand(newPrintCmd(flags))
	return cmd
}

func (f *rootFlags) options(args []string) app.Options {
	opts := app.Options{
		ConfigPath: f.configPath,
		Limit:      f.limit,
		Levels:     f.levels,
		Theme:      f.theme,
	}
	if len(args) > 0 {
		opts.File = args[0]
	}
	return opts
}

// setupLogging routes the standard logger away from the terminal.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "logview")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return func() { _ = f.Close() }, nil
}
