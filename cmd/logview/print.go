package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/five82/logview/internal/app"
)

func newPrintCmd(flags *rootFlags) *cobra.Command {
	var asJSON, plain bool

	cmd := &cobra.Command{
		Use:   "print [file]",
		Short: "Print the visible lines once and exit",
		Long: `Print performs a single refresh and writes the lines of enabled levels to
stdout, newest first. Text output is tinted with level colors unless --plain
is given; --json emits one object per line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON && plain {
				return errors.New("--json and --plain are mutually exclusive")
			}
			closeLog, err := setupLogging(flags.debugLog)
			if err != nil {
				return err
			}
			defer closeLog()

			format := app.FormatText
			switch {
			case asJSON:
				format = app.FormatJSON
			case plain:
				format = app.FormatPlain
			}
			return app.Print(cmd.Context(), cmd.OutOrStdout(), flags.options(args), format)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON objects, one per line")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colors")
	return cmd
}
