package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"wedding/internal/cli"
	"wedding/internal/export"
	apphttp "wedding/internal/http"
	"wedding/internal/services"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	repo := cli.InitStore(logger, cfg.DBPath)
	svc := services.NewGuestService(repo)
	exporter := export.NewExporter(svc)

	srv := apphttp.NewServer(":"+cfg.Port, cfg, logger, svc, svc, exporter)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16

	ctx := cli.GracefulShutdown(logger, 30*time.Second, func(shutdownCtx context.Context) {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		if err := svc.Close(); err != nil {
			logger.Error("Store close error", "error", err)
		}
	})

	logger.Info("Starting wedding server",
		"port", cfg.Port,
		"db", cfg.DBPath,
		"title", cfg.AppTitle)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
