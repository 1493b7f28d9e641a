package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"movies-api/internal/wire"
	"movies-api/pkg/utils"
)

func newServeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			e.log.Info("Starting application",
				zap.String("app", e.config.App.Name),
				zap.String("env", e.config.App.Env),
				zap.String("port", e.config.App.Port),
				zap.String("driver", e.config.Database.Driver),
				zap.Bool("debug", e.config.App.Debug),
			)

			repo, closeStore, err := wire.OpenStore(ctx, e.config, e.log)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), e.config.HTTP.ShutdownTimeout)
				defer cancel()
				if err := closeStore(shutdownCtx); err != nil {
					e.log.Warn("Failed to close store", zap.Error(err))
				}
			}()

			app, err := wire.Wiring(repo, e.config, e.log)
			if err != nil {
				return err
			}

			return APIServer(ctx, app.Router, e.config, e.log)
		},
	}
}

// APIServer serves handler until ctx is cancelled, then drains in-flight
// requests for at most the configured shutdown timeout.
func APIServer(ctx context.Context, handler http.Handler, config *utils.Config, log *zap.Logger) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort("", config.App.Port),
		Handler:      handler,
		ReadTimeout:  config.HTTP.ReadTimeout,
		WriteTimeout: config.HTTP.WriteTimeout,
		IdleTimeout:  2 * config.HTTP.ReadTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.String("addr", "http://localhost"+srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down HTTP server", zap.Duration("timeout", config.HTTP.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	log.Info("HTTP server stopped")
	return nil
}
