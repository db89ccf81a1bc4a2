package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ProviderAPI/internal/config"
	"ProviderAPI/internal/db"
	"ProviderAPI/internal/logger"
	"ProviderAPI/internal/resolver"
	"ProviderAPI/internal/router"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func main() {
	rootCmd := &cobra.Command{
		Use:          "providerapi",
		Short:        "Read-only search API over a healthcare provider directory",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and opens the log sink shared by every command.
func setup(debug bool) (*config.Config, error) {
	cfg := config.LoadConfig()
	if err := logger.Init(cfg.LogDir); err != nil {
		return nil, fmt.Errorf("log init failed: %w", err)
	}
	logger.SetDebug(debug)
	return cfg, nil
}

func newServeCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(debug)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			store, err := db.Open(ctx, cfg.Database)
			if err != nil {
				logger.Error("storage_init_failed", map[string]any{"driver": cfg.Database.Driver, "error": err.Error()})
				return err
			}
			defer store.Close()
			logger.Info("storage_connected", map[string]any{"driver": cfg.Database.Driver})

			svc := resolver.New(store, resolver.Options{
				DefaultLimit:  cfg.Search.DefaultLimit,
				MaxLimit:      cfg.Search.MaxLimit,
				SnapshotReads: cfg.Search.SnapshotReads,
			})

			srv := &http.Server{
				Addr:              ":" + cfg.Port,
				Handler:           router.NewRouter(cfg, svc),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server_start", map[string]any{"port": cfg.Port})
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server_error", map[string]any{"error": err.Error()})
					return err
				}
				return nil
			case <-ctx.Done():
			}

			logger.Info("server_shutdown", nil)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("server_shutdown_failed", map[string]any{"error": err.Error()})
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back the provider schema on the configured store",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(db.Up), string(db.Down)},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(debug)
			if err != nil {
				return err
			}

			dir := db.Up
			if len(args) == 1 {
				dir = db.Direction(args[0])
			}
			if err := db.MigrateConfig(cfg.Database, dir); err != nil {
				logger.Error("migrate_failed", map[string]any{"driver": cfg.Database.Driver, "error": err.Error()})
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	return cmd
}
