package admin

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pathwaylabs/schoolscout/internal/api/handlers"
	"github.com/pathwaylabs/schoolscout/internal/config"
	"github.com/pathwaylabs/schoolscout/internal/directory"
	"github.com/pathwaylabs/schoolscout/internal/server"
	"github.com/pathwaylabs/schoolscout/internal/source"
	"github.com/pathwaylabs/schoolscout/internal/telemetry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the directory server",
		Long:  "Start the schoolscout directory server on the specified port",
		RunE:  runServe,
	}

	cmd.Flags().StringP("port", "p", "", "Port to listen on (overrides config)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()

	if cfg.HasSentry() {
		shutdownTelemetry, err := telemetry.Init(telemetry.Config{
			DSN:         cfg.SentryDSN,
			Environment: cfg.Environment,
			Debug:       cfg.Debug,
		})
		if err != nil {
			logger.Warn("telemetry init failed (continuing without reporting)", zap.Error(err))
		} else {
			defer shutdownTelemetry()
		}
	}

	port := cfg.Port
	if portFlag, _ := cmd.Flags().GetString("port"); portFlag != "" {
		port = portFlag
	}

	ds := source.New(
		source.NewClient(cfg.DirectoryURL, cfg.FetchTimeout),
		source.Bundled{},
		logger,
	)
	store := directory.NewStore(ds, logger)

	router := server.NewRouter(server.RouterConfig{
		DirectoryHandler: handlers.NewDirectoryHandler(store),
		Logger:           logger,
	})

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// The record list is fetched once per process lifetime; requests
	// arriving before the fetch resolves see the loading flag.
	store.Activate(context.Background())

	errCh := make(chan error, 1)
	go func() {
		logger.Info("directory server listening",
			zap.String("port", port),
			zap.String("endpoint", cfg.DirectoryURL),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
