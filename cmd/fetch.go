package cmd

import (
	"fmt"

	"github.com/josephlewis42/batchsh/core/fetch"
	"github.com/spf13/cobra"
)

// fetchCmd prints a remote batch without running it.
var fetchCmd = &cobra.Command{
	Use:   "fetch URL",
	Short: "Print the commands of a remote batch without running them.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := newLogger(cmd)
		cfg, err := loadConfig(logger)
		if err != nil {
			return err
		}

		endpoint := fetch.ParseEndpoint(args[0])
		if verbose {
			logger.Printf("Connecting to %s for %s", endpoint.Address(), endpoint.Path)
		}

		stream, err := newFetcher(cfg).Open(cmd.Context(), endpoint)
		if err != nil {
			return err
		}
		defer stream.Close()

		if err := stream.SkipHeaders(); err != nil {
			return err
		}
		for stream.Next() {
			fmt.Fprintln(cmd.OutOrStdout(), stream.Text())
		}
		return stream.Err()
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
