package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/LizeLing/JSONVisualizer/internal/api"
	"github.com/LizeLing/JSONVisualizer/internal/config"
)

// newServeCmd creates the serve command exposing documents over HTTP.
// Settings come from the config file and environment, with --addr taking
// precedence.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve JSON documents over an HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (overrides config)")
	return cmd
}

func runServe(ctx context.Context, cfg config.Config) error {
	logger := loggerFromContext(ctx)

	store := api.NewStore(cfg.DocumentTTL)
	sweep := cfg.DocumentTTL / 2
	if sweep < time.Minute {
		sweep = time.Minute
	}
	go store.CleanupLoop(ctx, sweep)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.NewServer(store, logger, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
