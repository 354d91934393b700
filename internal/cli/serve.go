package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-PickupService/pkg/metrics"
)

func newServeCmd(opts *options) *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and admin dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, migrateUp)
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", false, "apply database migrations before starting")
	return cmd
}

func runServe(opts *options, migrateUp bool) error {
	cfg, log, err := bootstrap(opts)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Starting SMC-PickupService %s...", Version)
	log.Info("Configuration loaded from %s", opts.configPath)

	db, err := openAndMigrate(cfg, log, migrateUp || cfg.Server.MigrateOnStart)
	if err != nil {
		log.Error("%v", err)
		return err
	}
	defer db.Close()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	router, err := buildRouter(deps{
		cfg:     cfg,
		db:      db,
		log:     log,
		metrics: metricsCollector,
		stopCh:  stopMetricsCh,
	})
	if err != nil {
		log.Error("Failed to build router: %v", err)
		return err
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s (timezone=%s)", addr, cfg.Business.Timezone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		log.Error("Server failed to start: %v", err)
		close(stopMetricsCh)
		return err
	}

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}
