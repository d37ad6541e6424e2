package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/meeplewise/advisor/internal/adapters/bgg"
	"github.com/meeplewise/advisor/internal/adapters/http/api"
	"github.com/meeplewise/advisor/internal/adapters/http/site"
	"github.com/meeplewise/advisor/internal/adapters/http/swagger"
	"github.com/meeplewise/advisor/internal/app"
	"github.com/meeplewise/advisor/internal/config"
	"github.com/meeplewise/advisor/internal/domain/scoring"
	"github.com/meeplewise/advisor/pkg/logger"
	"github.com/meeplewise/advisor/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout           = 10 * time.Second
	writeTimeout          = 120 * time.Second // a pipeline run can wait on upstream re-polls
	idleTimeout           = 60 * time.Second
	readHeaderTimeout     = 5 * time.Second
	shutdownTimeout       = 30 * time.Second
	systemMetricsInterval = 10 * time.Second
)

func main() {
	// The custom registry carries our own metrics; drop the default
	// collectors to avoid duplicates.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	client := bgg.NewClient(
		bgg.WithBaseURL(cfg.BGGBaseURL),
		bgg.WithTimeout(time.Duration(cfg.BGGTimeoutMS)*time.Millisecond),
		bgg.WithRateLimit(cfg.BGGRatePerSec),
		bgg.WithRetryDelay(time.Duration(cfg.DetailRetryDelayMS)*time.Millisecond),
		bgg.WithMaxAttempts(cfg.DetailMaxAttempts),
		bgg.WithLogger(log.Named("bgg")),
	)

	scorer := scoring.NewPreferenceScorer(
		scoring.WithBaseScore(cfg.BaseScore),
		scoring.WithRatingCountDivisor(cfg.RatingCountDivisor),
		scoring.WithPopularityCap(cfg.PopularityCap),
		scoring.WithMechanicBonus(cfg.MechanicBonus),
		scoring.WithCategoryBonus(cfg.CategoryBonus),
	)

	svc := app.New(
		app.WithUpstream(client),
		app.WithScorer(scorer),
		app.WithCandidateCap(cfg.CandidateCap),
		app.WithTopN(cfg.TopN),
		app.WithFetchConcurrency(cfg.FetchConcurrency),
		app.WithLogger(log.Named("pipeline")),
	)

	go startSystemMetricsUpdater(ctx)

	// HTTP mux and routes. The embedded site owns "/"; specific routes
	// are registered alongside it.
	mux := http.NewServeMux()
	site.Register(ctx, mux)
	swagger.Register(ctx, mux)
	api.NewServer(svc).Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// startSystemMetricsUpdater periodically refreshes system-level gauges.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			metrics.UpdateSystemMemoryUsage(m.Alloc)
			metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())
		}
	}
}
