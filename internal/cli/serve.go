package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/stratus-io/stratus/internal/api"
	"github.com/stratus-io/stratus/internal/audit"
	"github.com/stratus-io/stratus/internal/cloud"
	"github.com/stratus-io/stratus/internal/config"
	"github.com/stratus-io/stratus/internal/engine"
	"github.com/stratus-io/stratus/internal/logging"
	"github.com/stratus-io/stratus/internal/store"
)

var (
	serveConfigPath string
	serveListenAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the provisioning API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(serveConfigPath, serveListenAddr)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "path to YAML config file")
	serveCmd.Flags().StringVarP(&serveListenAddr, "listen", "l", "", "listen address (overrides config)")
}

func runServe(configPath, listenAddr string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if listenAddr != "" {
		cfg.Server.Addr = listenAddr
	}
	logging.Init(cfg.Log.Level, cfg.Log.Format)

	auditLog, err := audit.NewLogger(cfg.Audit.Path)
	if err != nil {
		return err
	}
	defer auditLog.Close()

	backend, err := store.NewBackend(cfg.Snapshot)
	if err != nil {
		return err
	}

	eng := engine.New(cloud.NewRegistry(), store.New(), auditLog, engine.WithBackend(backend))
	if err := eng.Restore(context.Background()); err != nil {
		return fmt.Errorf("failed to restore snapshot: %w", err)
	}

	reg := prometheus.NewRegistry()
	handler := api.NewHandler(eng, auditLog, api.NewMetrics(reg))

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler.Router(reg),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info("server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logging.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
