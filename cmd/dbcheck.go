package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"movies-api/internal/dto/request"
	"movies-api/internal/usecase"
	"movies-api/internal/wire"
)

func newDBCheckCmd(e *env) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "dbcheck",
		Short: "Connect to the store, ping it and print the first page of movies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			repo, closeStore, err := wire.OpenStore(ctx, e.config, e.log)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer func() { _ = closeStore(ctx) }()

			if err := repo.Movie.Ping(ctx); err != nil {
				return fmt.Errorf("ping %s: %w", e.config.Database.Driver, err)
			}
			cmd.Printf("Connected to %s store\n", e.config.Database.Driver)

			service := usecase.NewService(repo, e.config, e.log)
			result, err := service.Movie.GetMovies(ctx, request.MovieListQuery{Page: 1, Limit: limit})
			if err != nil {
				return err
			}

			cmd.Printf("%d movies in total, %d pages of %d\n", result.TotalItems, result.TotalPages, result.Limit)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tYEAR\tCREATED")
			for _, m := range result.Data {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", m.ID.Hex(), m.Title, m.Year(), m.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "number of movies to print")
	return cmd
}
