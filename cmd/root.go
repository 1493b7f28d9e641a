package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"movies-api/pkg/utils"
)

// env is what every subcommand needs once flags are parsed.
type env struct {
	config *utils.Config
	log    *zap.Logger
}

// NewRootCmd builds the movies-api command tree. Running it without a
// subcommand starts the HTTP server.
func NewRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "movies-api",
		Short:         "Movies catalog API and web front end",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config, err := utils.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
			if err != nil {
				cmd.PrintErrf("Failed to init logger: %v. Using production defaults.\n", err)
				logger, _ = zap.NewProduction()
			}

			e.config, e.log = config, logger
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if e.log != nil {
				_ = e.log.Sync()
			}
		},
	}

	serve := newServeCmd(e)
	root.RunE = serve.RunE
	root.AddCommand(serve, newSeedCmd(e), newDBCheckCmd(e))
	return root
}

// Execute runs the root command with a context cancelled on SIGINT/SIGTERM.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
