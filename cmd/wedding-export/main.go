// Command wedding-export writes the guest list spreadsheet without starting
// the web UI. The store is opened briefly for a read-only snapshot.
package main

import (
	"context"
	"flag"
	"os"

	"wedding/internal/cli"
	"wedding/internal/export"
	"wedding/internal/services"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	out := flag.String("o", cfg.ExportPath, "destination .xlsx file")
	flag.Parse()

	repo := cli.InitStore(logger, cfg.DBPath)
	svc := services.NewGuestService(repo)
	defer svc.Close()

	exporter := export.NewExporter(svc)
	if err := exporter.SaveAs(context.Background(), *out); err != nil {
		logger.Error("Export failed", "error", err, "file", *out)
		os.Exit(1)
	}

	logger.Info("Export complete", "file", *out)
}
