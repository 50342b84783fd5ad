// ABOUTME: Main entry point for the news sentiment dashboard
// ABOUTME: Prints one report to the terminal or serves the refreshing web dashboard

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"news-sentiment-dashboard/api"
	"news-sentiment-dashboard/api/handlers"
	"news-sentiment-dashboard/core/interfaces"
	"news-sentiment-dashboard/infrastructure/logger/structured"
	"news-sentiment-dashboard/infrastructure/render/html"
	"news-sentiment-dashboard/infrastructure/render/terminal"
	"news-sentiment-dashboard/pkg/config"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is fine; real environment variables still apply
	godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := structured.NewLogger(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	logger.Info("Starting news sentiment dashboard", map[string]interface{}{
		"mode":        cfg.Mode,
		"source":      cfg.News.SourceKind,
		"extractor":   cfg.Scraper.Extractor,
		"concurrency": cfg.Scraper.Concurrency,
	})

	deps := newDependencies(cfg, logger)
	reports, err := newPipeline(cfg, deps)
	if err != nil {
		logger.Error("Failed to build pipeline", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch cfg.Mode {
	case config.ModeServer:
		err = serve(ctx, cfg, reports, logger)
	default:
		err = printReport(ctx, reports)
	}

	if err != nil {
		logger.Error("Dashboard failed", map[string]interface{}{"error": err.Error()})
		stop()
		os.Exit(1)
	}
}

// printReport runs the pipeline once and writes the result to stdout
func printReport(ctx context.Context, reports interfaces.ReportService) error {
	report, err := reports.Run(ctx)
	if err != nil {
		return err
	}

	renderer := terminal.NewRenderer(terminal.Options{Hyperlinks: isTerminal(os.Stdout)})
	return renderer.Render(os.Stdout, report)
}

// serve runs the dashboard server until ctx is cancelled
func serve(ctx context.Context, cfg *config.Config, reports interfaces.ReportService, logger interfaces.Logger) error {
	renderer, err := html.NewRenderer()
	if err != nil {
		return err
	}

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:             logger,
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
	})
	handlers.NewArticlesHandler(reports, logger).RegisterRoutes(humaAPI)
	api.MountDashboard(router, handlers.NewDashboardHandler(reports, renderer, logger))

	// Write timeout covers a full pipeline run: every article plus the headline call
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("Server stopped", nil)
	return nil
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
