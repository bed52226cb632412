package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/josephlewis42/batchsh/core"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// shellCmd runs the interactive read loop.
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Read and dispatch command lines until exit.",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

// runShell reads from a line editor when stdin is a terminal and from a plain
// scanner otherwise.
func runShell(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	logger := newLogger(cmd)
	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	var reader core.LineReader
	if isatty.IsTerminal(os.Stdin.Fd()) {
		rl, err := core.NewReadline(os.Stdin, cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer rl.Close()
		reader = rl
	} else {
		reader = core.NewScannerReader(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	shell := core.NewShell(reader, newEngine(cmd, cfg, logger), cfg)
	shell.Errors = cmd.ErrOrStderr()
	shell.Color = !color.NoColor

	return shell.Run(cmd.Context())
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
