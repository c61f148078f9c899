// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the batch command.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	scorequeue "github.com/russellteter/blue-intelligence/internal/adapters/mq/queue"
	workerpool "github.com/russellteter/blue-intelligence/internal/adapters/mq/worker"
	"github.com/russellteter/blue-intelligence/internal/adapters/repository"
	"github.com/russellteter/blue-intelligence/internal/dataset"
	"github.com/russellteter/blue-intelligence/internal/domain/model"
	"github.com/russellteter/blue-intelligence/internal/domain/scoring"
	"github.com/russellteter/blue-intelligence/pkg/logger"
	"github.com/russellteter/blue-intelligence/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultQueueSize       = 512
	defaultMaxRankingLimit = 170 // the full district universe
)

// Exclusion records one district skipped during a scoring run.
type Exclusion struct {
	Chamber  model.Chamber `json:"chamber"`
	District string        `json:"district"`
	Reason   string        `json:"reason"`
}

// runState is the immutable result of one completed scoring run.
// Queries always read a fully built state; a run in progress never
// shows partial results.
type runState struct {
	snapshot *model.Snapshot
	board    *repository.Board
	excluded []Exclusion
	ranAt    time.Time
	duration time.Duration
}

// Service owns the scoring lifecycle: load inputs, run the engine over
// the worker pool, and serve the resulting snapshot.
type Service struct {
	mu      sync.RWMutex
	current *runState

	loader *dataset.Loader
	scorer scoring.Scorer

	electionsPath   string
	candidatesPath  string
	workerCount     int
	queueSize       int
	maxRankingLimit int

	logger logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		scorer:          scoring.NewEngine(),
		electionsPath:   "data/elections.json",
		candidatesPath:  "data/candidates.json",
		workerCount:     runtime.NumCPU(),
		queueSize:       defaultQueueSize,
		maxRankingLimit: defaultMaxRankingLimit,
		logger:          logger.Get().Named("service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.loader == nil {
		s.loader = dataset.NewLoader(dataset.WithLogger(s.logger.Named("dataset")))
	}
	return s
}

// Refresh loads the input files and runs a full scoring pass. The new
// snapshot replaces the previous one atomically once complete.
func (s *Service) Refresh(ctx context.Context) error {
	start := time.Now()

	history, filings, err := s.loader.Load(ctx, s.electionsPath, s.candidatesPath)
	if err != nil {
		return err
	}

	state, err := s.run(ctx, history, filings)
	if err != nil {
		return err
	}
	state.ranAt = start
	state.duration = time.Since(start)

	s.mu.Lock()
	s.current = state
	s.mu.Unlock()

	s.publishRunMetrics(state)
	s.logger.Info(ctx, "scoring run complete",
		logger.Int("house", len(state.snapshot.House)),
		logger.Int("senate", len(state.snapshot.Senate)),
		logger.Int("excluded", len(state.excluded)),
		logger.Duration("took", state.duration),
	)
	return nil
}

// run fans the district universe out over the worker pool and collects
// the results into a fresh board.
func (s *Service) run(ctx context.Context, history *model.HistorySet, filings *model.FilingSet) (*runState, error) {
	jobs := buildJobs(history, filings)

	capacity := s.queueSize
	if len(jobs) > capacity {
		capacity = len(jobs)
	}
	q := scorequeue.NewInMemoryQueue(scorequeue.WithCapacity(capacity))
	board := repository.NewBoard()
	excluded := &exclusionList{}

	pool := workerpool.NewPool(s.workerCount, q, s.scorer, board,
		workerpool.WithExcludeFunc(excluded.record),
	)
	pool.Start(ctx)

	for _, job := range jobs {
		if !q.Enqueue(ctx, job) {
			s.logger.Warn(ctx, "dropped score job",
				logger.String("chamber", string(job.Chamber)),
				logger.String("district", job.District),
			)
		}
	}
	if err := q.Close(); err != nil {
		return nil, err
	}
	if err := pool.Wait(ctx); err != nil {
		return nil, err
	}
	// Workers stop on cancellation with jobs still queued; those
	// districts are neither scored nor excluded, so the run result is
	// incomplete and must not be published.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("scoring run canceled: %w", err)
	}

	snapshot := &model.Snapshot{
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		House:       board.Chamber(model.ChamberHouse),
		Senate:      board.Chamber(model.ChamberSenate),
	}
	return &runState{
		snapshot: snapshot,
		board:    board,
		excluded: excluded.entries(),
	}, nil
}

// Snapshot returns the most recent scoring run output.
func (s *Service) Snapshot(ctx context.Context) (*model.Snapshot, error) {
	state, err := s.state()
	if err != nil {
		return nil, err
	}
	return state.snapshot, nil
}

// District returns one district's result from the latest run.
func (s *Service) District(ctx context.Context, chamber model.Chamber, district string) (*model.DistrictOpportunity, error) {
	state, err := s.state()
	if err != nil {
		return nil, err
	}
	return state.board.Get(ctx, chamber, district)
}

// TopN returns the chamber's ranked districts, best first. The limit is
// capped at the configured maximum.
func (s *Service) TopN(ctx context.Context, chamber model.Chamber, n int) ([]repository.Entry, error) {
	state, err := s.state()
	if err != nil {
		return nil, err
	}
	if n > s.maxRankingLimit {
		n = s.maxRankingLimit
	}
	return state.board.TopN(ctx, chamber, n)
}

// Excluded returns the districts skipped by the latest run.
func (s *Service) Excluded() []Exclusion {
	state, err := s.state()
	if err != nil {
		return nil
	}
	return state.excluded
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	stats := map[string]interface{}{
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
	}

	state, err := s.state()
	if err != nil {
		stats["ready"] = false
		return stats
	}

	stats["ready"] = true
	stats["lastUpdated"] = state.snapshot.LastUpdated
	stats["runDurationMs"] = state.duration.Milliseconds()
	stats["excludedDistricts"] = len(state.excluded)
	stats["totalDistricts"] = len(state.snapshot.House) + len(state.snapshot.Senate)

	for _, chamber := range []model.Chamber{model.ChamberHouse, model.ChamberSenate} {
		byTier, needsCandidate := tierCounts(state.snapshot.Chamber(chamber))
		stats[string(chamber)] = map[string]interface{}{
			"districts":      len(state.snapshot.Chamber(chamber)),
			"byTier":         byTier,
			"needsCandidate": needsCandidate,
		}
	}
	return stats
}

func (s *Service) state() (*runState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, ErrNotReady
	}
	return s.current, nil
}

// publishRunMetrics pushes run-level gauges after a snapshot swap.
func (s *Service) publishRunMetrics(state *runState) {
	metrics.ObserveRunDuration(float64(state.duration.Milliseconds()))
	metrics.SetLastRunUnix(float64(state.ranAt.Unix()))
	metrics.SetTotalDistricts(len(state.snapshot.House) + len(state.snapshot.Senate))

	for _, chamber := range []model.Chamber{model.ChamberHouse, model.ChamberSenate} {
		byTier, _ := tierCounts(state.snapshot.Chamber(chamber))
		for _, tier := range model.Tiers() {
			metrics.SetTierCount(string(chamber), string(tier), byTier[string(tier)])
		}
	}
}

// tierCounts tallies districts per tier plus the needs-candidate total.
func tierCounts(districts map[string]*model.DistrictOpportunity) (map[string]int, int) {
	byTier := make(map[string]int, len(model.Tiers()))
	for _, tier := range model.Tiers() {
		byTier[string(tier)] = 0
	}
	needsCandidate := 0
	for _, rec := range districts {
		byTier[string(rec.Tier)]++
		if rec.Flags.NeedsCandidate {
			needsCandidate++
		}
	}
	return byTier, needsCandidate
}

// exclusionList is a concurrency-safe exclusion collector shared by the
// worker pool.
type exclusionList struct {
	mu   sync.Mutex
	list []Exclusion
}

func (e *exclusionList) record(chamber model.Chamber, district, reason string, _ error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.list = append(e.list, Exclusion{Chamber: chamber, District: district, Reason: reason})
}

func (e *exclusionList) entries() []Exclusion {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Exclusion, len(e.list))
	copy(out, e.list)
	return out
}
