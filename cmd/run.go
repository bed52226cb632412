package cmd

import (
	"os"
	"strings"

	"github.com/josephlewis42/batchsh/core"
	"github.com/spf13/cobra"
)

var runFile string

// runCmd dispatches a single line, or every line of a file, without a prompt.
var runCmd = &cobra.Command{
	Use:   "run [command line...]",
	Short: "Dispatch one command line, or each line of a file.",
	Example: `  batchsh run echo hello
  batchsh run SERIAL http://example.com/batch.txt
  batchsh run -f commands.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := newLogger(cmd)
		cfg, err := loadConfig(logger)
		if err != nil {
			return err
		}
		engine := newEngine(cmd, cfg, logger)

		if runFile == "" {
			return engine.DispatchLine(cmd.Context(), strings.Join(args, " "))
		}

		fd, err := os.Open(runFile)
		if err != nil {
			return err
		}
		defer fd.Close()

		shell := core.NewShell(core.NewScannerReader(fd, nil), engine, cfg)
		shell.Errors = cmd.ErrOrStderr()
		return shell.Run(cmd.Context())
	},
}

func init() {
	runCmd.Flags().StringVarP(&runFile, "file", "f", "", "read command lines from a file")
	rootCmd.AddCommand(runCmd)
}
