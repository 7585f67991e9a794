package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"crosswarped.com/wordhelper/internal/config"
	"crosswarped.com/wordhelper/internal/httpapi"
)

const (
	defaultGracefulTimeout = 10 * time.Second
	serverReadTimeout      = 10 * time.Second
	serverWriteTimeout     = 15 * time.Second
	serverIdleTimeout      = 60 * time.Second
)

func newServeCmd(v *viper.Viper, configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve puzzle queries over HTTP",
		Long: `Serve puzzle queries over HTTP.

  GET  /v1/solutions?green=...&yellow=...&available=...
  POST /v1/solutions  {"green": "...", "yellow": "...", "available": "..."}
  GET  /healthz
  GET  /metrics`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(v, *configPath)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			filter, err := a.loadFilter(cmd.Context())
			if err != nil {
				return err
			}

			server := &http.Server{
				Addr:         a.cfg.Address,
				Handler:      httpapi.NewServer(filter, a.logger).Handler(),
				ReadTimeout:  serverReadTimeout,
				WriteTimeout: serverWriteTimeout,
				IdleTimeout:  serverIdleTimeout,
			}
			return runServer(cmd.Context(), server, a.logger)
		},
	}

	cmd.Flags().String("address", ":8080", "Address to listen on")
	if err := v.BindPFlag(config.KeyServerAddress, cmd.Flags().Lookup("address")); err != nil {
		panic(fmt.Sprintf("failed to bind address flag: %v", err))
	}
	return cmd
}

// runServer serves until ctx is done, then shuts the server down gracefully.
func runServer(ctx context.Context, server *http.Server, logger *zap.Logger) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server listening", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultGracefulTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		logger.Info("server shutdown complete")
		return nil
	})

	return g.Wait()
}
