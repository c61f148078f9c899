// Package dataset reads and sanitizes the engine's two input files:
// elections.json (history) and candidates.json (filings).
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/russellteter/blue-intelligence/internal/domain/model"
	"github.com/russellteter/blue-intelligence/pkg/logger"
)

// Loader reads the input sets and drops structurally invalid entries
// with a logged warning, so one bad filing never poisons a scoring run.
type Loader struct {
	validate *validator.Validate
	log      logger.Logger
}

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithLogger sets a custom logger for the loader.
func WithLogger(log logger.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// NewLoader creates a dataset loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		validate: validator.New(),
		log:      logger.Get().Named("dataset"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads both input files concurrently and returns the sanitized
// sets. A missing or unparseable file fails the whole load; the engine
// cannot run on half its inputs.
func (l *Loader) Load(ctx context.Context, electionsPath, candidatesPath string) (*model.HistorySet, *model.FilingSet, error) {
	var (
		history *model.HistorySet
		filings *model.FilingSet
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		history, err = l.loadHistory(ctx, electionsPath)
		return err
	})
	g.Go(func() error {
		var err error
		filings, err = l.loadFilings(ctx, candidatesPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return history, filings, nil
}

func (l *Loader) loadHistory(ctx context.Context, path string) (*model.HistorySet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFile, path, err)
	}

	var set model.HistorySet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParseFile, path, err)
	}
	if set.House == nil {
		set.House = map[string]*model.DistrictHistory{}
	}
	if set.Senate == nil {
		set.Senate = map[string]*model.DistrictHistory{}
	}

	l.log.Info(ctx, "loaded election history",
		logger.String("path", path),
		logger.Int("house", len(set.House)),
		logger.Int("senate", len(set.Senate)),
	)
	return &set, nil
}

func (l *Loader) loadFilings(ctx context.Context, path string) (*model.FilingSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFile, path, err)
	}

	var set model.FilingSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParseFile, path, err)
	}
	if set.House == nil {
		set.House = map[string]*model.DistrictFiling{}
	}
	if set.Senate == nil {
		set.Senate = map[string]*model.DistrictFiling{}
	}

	for _, chamber := range []model.Chamber{model.ChamberHouse, model.ChamberSenate} {
		for district, filing := range set.Chamber(chamber) {
			if filing == nil {
				continue
			}
			l.sanitizeFiling(ctx, chamber, district, filing)
		}
	}

	l.log.Info(ctx, "loaded candidate filings",
		logger.String("path", path),
		logger.Int("house", len(set.House)),
		logger.Int("senate", len(set.Senate)),
	)
	return &set, nil
}

// sanitizeFiling drops candidates and incumbent descriptors that fail
// structural validation. The record itself stays; scoring treats it as
// having fewer filers.
func (l *Loader) sanitizeFiling(ctx context.Context, chamber model.Chamber, district string, filing *model.DistrictFiling) {
	kept := filing.Candidates[:0]
	for _, candidate := range filing.Candidates {
		if err := l.validate.Struct(candidate); err != nil {
			l.log.Warn(ctx, "dropping invalid candidate filing",
				logger.String("chamber", string(chamber)),
				logger.String("district", district),
				logger.Error(err),
			)
			continue
		}
		kept = append(kept, candidate)
	}
	filing.Candidates = kept

	if filing.Incumbent != nil {
		if err := l.validate.Struct(filing.Incumbent); err != nil {
			l.log.Warn(ctx, "dropping invalid incumbent record",
				logger.String("chamber", string(chamber)),
				logger.String("district", district),
				logger.Error(err),
			)
			filing.Incumbent = nil
		}
	}
}
