// Command score runs one batch scoring pass and writes opportunity.json.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	service "github.com/russellteter/blue-intelligence/internal/app"
	"github.com/russellteter/blue-intelligence/internal/config"
	"github.com/russellteter/blue-intelligence/internal/dataset"
	"github.com/russellteter/blue-intelligence/internal/domain/model"
	"github.com/russellteter/blue-intelligence/internal/domain/scoring"
	"github.com/russellteter/blue-intelligence/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		os.Stderr.WriteString("score failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	// Flags parse before anything else so -h and bad invocations never
	// depend on a loadable config. Empty values fall back to the config.
	var (
		elections  = flag.String("elections", "", "path to elections.json (overrides config)")
		candidates = flag.String("candidates", "", "path to candidates.json (overrides config)")
		output     = flag.String("out", "", "path to write opportunity.json (overrides config)")
		backup     = flag.String("backup", "", "path to back up the previous output (overrides config)")
	)
	flag.Parse()

	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return err
	}
	log := logger.Get().Named("score")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		_ = logger.SetLevelString("info")
	}
	applyOverrides(cfg, *elections, *candidates, *output, *backup)

	engine := scoring.NewEngine(
		scoring.WithTargetParty(cfg.TargetParty),
		scoring.WithWeights(cfg.Weights),
		scoring.WithTrendSpan(cfg.TrendSpan),
		scoring.WithOpenSeatBonus(cfg.OpenSeatBonus),
		scoring.WithDefensiveFloor(cfg.DefensiveFloor),
	)
	svc := service.New(
		service.WithLogger(log),
		service.WithScorer(engine),
		service.WithDataPaths(cfg.ElectionsPath, cfg.CandidatesPath),
		service.WithWorkerCount(cfg.WorkerCount),
		service.WithQueueSize(cfg.QueueSize),
	)

	if err := svc.Refresh(ctx); err != nil {
		return err
	}
	snap, err := svc.Snapshot(ctx)
	if err != nil {
		return err
	}

	if cfg.BackupPath != "" {
		if err := dataset.BackupSnapshot(cfg.OutputPath, cfg.BackupPath); err != nil {
			return err
		}
	}
	if err := dataset.WriteSnapshot(cfg.OutputPath, snap); err != nil {
		return err
	}

	logSummary(ctx, log, svc, snap)
	log.Info(ctx, "wrote opportunity snapshot", logger.String("path", cfg.OutputPath))
	return nil
}

// applyOverrides layers non-empty flag values over the loaded config.
func applyOverrides(cfg *config.Config, elections, candidates, output, backup string) {
	if elections != "" {
		cfg.ElectionsPath = elections
	}
	if candidates != "" {
		cfg.CandidatesPath = candidates
	}
	if output != "" {
		cfg.OutputPath = output
	}
	if backup != "" {
		cfg.BackupPath = backup
	}
}

// logSummary prints per-chamber tier tallies the way the dashboard
// groups them.
func logSummary(ctx context.Context, log logger.Logger, svc *service.Service, snap *model.Snapshot) {
	for _, chamber := range []model.Chamber{model.ChamberHouse, model.ChamberSenate} {
		districts := snap.Chamber(chamber)
		counts := map[model.Tier]int{}
		needsCandidate := 0
		for _, rec := range districts {
			counts[rec.Tier]++
			if rec.Flags.NeedsCandidate {
				needsCandidate++
			}
		}

		fields := []logger.Field{
			logger.Int("districts", len(districts)),
			logger.Int("needsCandidate", needsCandidate),
		}
		for _, tier := range model.Tiers() {
			fields = append(fields, logger.Int(string(tier), counts[tier]))
		}
		log.Info(ctx, string(chamber)+" summary", fields...)
	}

	if excluded := svc.Excluded(); len(excluded) > 0 {
		for _, ex := range excluded {
			log.Warn(ctx, "district excluded",
				logger.String("chamber", string(ex.Chamber)),
				logger.String("district", ex.District),
				logger.String("reason", ex.Reason),
			)
		}
	}
}
