package cmd

import (
	"log"

	"github.com/josephlewis42/batchsh/core/config"
	"github.com/josephlewis42/batchsh/core/dispatch"
	"github.com/josephlewis42/batchsh/core/fetch"
	"github.com/josephlewis42/batchsh/core/proc"
	"github.com/spf13/cobra"
)

func newFetcher(cfg *config.Configuration) *fetch.Fetcher {
	return &fetch.Fetcher{
		Port:        cfg.Fetch.Port,
		DialTimeout: cfg.Fetch.Timeout(),
		RateLimit:   cfg.Fetch.RateLimit,
	}
}

// newEngine wires an engine writing progress to the command's stdout.
// Children inherit the process's standard streams.
func newEngine(cmd *cobra.Command, cfg *config.Configuration, logger *log.Logger) *dispatch.Engine {
	launcher := &proc.Launcher{
		Dir: cfg.Exec.Dir,
		Env: cfg.Exec.Env,
	}

	engine := dispatch.New(cmd.OutOrStdout(), launcher, newFetcher(cfg), logger)
	engine.Verbose = verbose
	return engine
}

func newLogger(cmd *cobra.Command) *log.Logger {
	return log.New(cmd.ErrOrStderr(), "[batchsh] ", 0)
}
