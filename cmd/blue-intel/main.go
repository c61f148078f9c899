// Command blue-intel serves district opportunity scores over HTTP.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/russellteter/blue-intelligence/internal/adapters/http/api"
	service "github.com/russellteter/blue-intelligence/internal/app"
	"github.com/russellteter/blue-intelligence/internal/config"
	"github.com/russellteter/blue-intelligence/internal/domain/scoring"
	"github.com/russellteter/blue-intelligence/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 60 * time.Second // refresh runs synchronously
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// A .env file is optional; ignore its absence.
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := newService(cfg, log)

	// Score once at startup so the API serves data immediately. A failed
	// initial run is not fatal; POST /api/refresh can retry once the
	// input files appear.
	if err := svc.Refresh(ctx); err != nil {
		log.Warn(ctx, "initial scoring run failed; serving without data", logger.Error(err))
	}

	mux := http.NewServeMux()
	api.NewServer(svc, svc).Register(ctx, mux)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			stop()
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

// newService builds the scoring service from process configuration.
func newService(cfg *config.Config, log logger.Logger) *service.Service {
	engine := scoring.NewEngine(
		scoring.WithTargetParty(cfg.TargetParty),
		scoring.WithWeights(cfg.Weights),
		scoring.WithTrendSpan(cfg.TrendSpan),
		scoring.WithOpenSeatBonus(cfg.OpenSeatBonus),
		scoring.WithDefensiveFloor(cfg.DefensiveFloor),
	)
	return service.New(
		service.WithLogger(log.Named("service")),
		service.WithScorer(engine),
		service.WithDataPaths(cfg.ElectionsPath, cfg.CandidatesPath),
		service.WithWorkerCount(cfg.WorkerCount),
		service.WithQueueSize(cfg.QueueSize),
		service.WithMaxRankingLimit(cfg.MaxRankingLimit),
	)
}
