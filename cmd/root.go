package cmd

import (
	"context"
	"errors"
	"io/fs"
	"log"

	"github.com/josephlewis42/batchsh/core/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	verbose bool
)

func loadConfig(logger *log.Logger) (*config.Configuration, error) {
	configuration, err := config.Load(afero.NewOsFs(), cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		if verbose {
			logger.Println("No configuration found, using defaults (create one with init)")
		}
		return config.Default(), nil
	}

	return configuration, err
}

// rootCmd runs the shell when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "batchsh",
	Args:  cobra.NoArgs,
	Short: "Interactive command dispatcher",
	Long: `Runs programs typed at the prompt, or lists of programs fetched over HTTP.

  <program> [args...]   run the program and wait for it
  SERIAL <url>          run each line of the remote list in order
  PARALLEL <url>        start every line of the remote list, then wait for
                        them last to first`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.ExecuteContext(context.Background()))
}

func init() {
	rootCmd.RunE = runShell

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config directory or file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log batch progress")
}
