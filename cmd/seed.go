package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"movies-api/internal/seed"
	"movies-api/internal/usecase"
	"movies-api/internal/wire"
)

func newSeedCmd(e *env) *cobra.Command {
	var drop bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the sample catalog into the configured store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			movies, err := seed.Load()
			if err != nil {
				return err
			}

			repo, closeStore, err := wire.OpenStore(ctx, e.config, e.log)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer func() { _ = closeStore(ctx) }()

			result, err := usecase.NewSeedService(repo.Movie, e.log).Seed(ctx, movies, drop)
			if err != nil {
				return err
			}

			e.log.Info("Database seeding completed",
				zap.Int64("dropped", result.Dropped),
				zap.Int("inserted", result.Inserted),
				zap.Int("skipped", result.Skipped),
			)
			cmd.Printf("%d movies inserted, %d already present, %d deleted\n", result.Inserted, result.Skipped, result.Dropped)
			return nil
		},
	}

	cmd.Flags().BoolVar(&drop, "drop", false, "delete every existing movie before inserting")
	return cmd
}
