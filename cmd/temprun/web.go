package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mkositsyn/temprun/internal/api"
	"github.com/mkositsyn/temprun/internal/storage"
)

var flagHTTPAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the scores JSON API over HTTP",
	Long: `Expose the run history as a read-only JSON API.

Endpoints:
  GET /healthz        - Liveness check
  GET /api/progress   - High score and lifetime coin total
  GET /api/runs       - Run listing (?sort=recent, ?limit=N)
  GET /api/stats      - Aggregated run statistics

Examples:
  temprun web
  temprun web --http :9000 --db ./runs.db`,
	Run: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP listen address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "temprun-web",
	})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	server := api.New(flagHTTPAddr, store, logger)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != nil {
			logger.Error("server error", "error", err)
		}
	}()

	<-done
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
