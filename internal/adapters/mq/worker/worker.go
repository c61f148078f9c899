// Package worker runs the scoring engine over queued district jobs.
package worker

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"sync"

	"github.com/russellteter/blue-intelligence/internal/adapters/mq/queue"
	"github.com/russellteter/blue-intelligence/internal/domain/model"
	"github.com/russellteter/blue-intelligence/internal/domain/scoring"
	"github.com/russellteter/blue-intelligence/pkg/logger"
	"github.com/russellteter/blue-intelligence/pkg/metrics"
)

// Exclusion reason labels reported on skipped districts.
const (
	ReasonMissingDistrict = "missing-district"
	ReasonMissingHistory  = "missing-history"
	ReasonMissingFiling   = "missing-filing"
	ReasonMalformedRecord = "malformed-record"
	ReasonCanceled        = "canceled"
	ReasonScoringError    = "scoring-error"
)

// Board receives scored district results.
type Board interface {
	Put(ctx context.Context, chamber model.Chamber, district string, rec *model.DistrictOpportunity) error
}

// Queue defines how workers receive jobs.
type Queue interface {
	Dequeue(ctx context.Context) <-chan queue.Job
}

// ExcludeFunc is called for every district the engine refuses to score.
// Implementations must be safe for concurrent use.
type ExcludeFunc func(chamber model.Chamber, district string, reason string, err error)

// Worker processes score jobs until its dequeue channel closes.
type Worker struct {
	queue   Queue
	scorer  scoring.Scorer
	board   Board
	exclude ExcludeFunc
	name    string

	logger logger.Logger
}

// NewWorker creates a worker with configuration options.
func NewWorker(q Queue, scorer scoring.Scorer, board Board, opts ...Option) *Worker {
	w := &Worker{
		queue:   q,
		scorer:  scorer,
		board:   board,
		exclude: func(model.Chamber, string, string, error) {},
		name:    "worker",
		logger:  logger.Get().Named("worker"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run drains the queue until it closes or the context is canceled.
func (w *Worker) Run(ctx context.Context) {
	jobs := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-jobs:
			if !ok {
				return
			}
			if err := w.process(ctx, job); err != nil {
				w.logger.Error(ctx, "error processing district",
					logger.String("chamber", string(job.Chamber)),
					logger.String("district", job.District),
					logger.Error(err),
				)
			}
		}
	}
}

// process scores one district and records the result or exclusion.
func (w *Worker) process(ctx context.Context, job queue.Job) error {
	rec, err := w.scorer.Score(ctx, job.Input)
	if err != nil {
		reason := excludeReason(err)
		metrics.RecordDistrictExcluded(reason)
		w.exclude(job.Chamber, job.District, reason, err)
		w.logger.Warn(ctx, "district excluded from scoring",
			logger.String("chamber", string(job.Chamber)),
			logger.String("district", job.District),
			logger.String("reason", reason),
		)
		return nil
	}

	if err := w.board.Put(ctx, job.Chamber, job.District, &rec); err != nil {
		return fmt.Errorf("store result for %s district %s: %w", job.Chamber, job.District, err)
	}
	metrics.RecordDistrictScored()
	return nil
}

// excludeReason maps engine errors onto the fixed reason labels.
func excludeReason(err error) string {
	switch {
	case errors.Is(err, scoring.ErrMissingDistrict):
		return ReasonMissingDistrict
	case errors.Is(err, scoring.ErrMissingHistory):
		return ReasonMissingHistory
	case errors.Is(err, scoring.ErrMissingFiling):
		return ReasonMissingFiling
	case errors.Is(err, scoring.ErrMalformedRecord):
		return ReasonMalformedRecord
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// Cancellation is a run-level interruption, not a data defect.
		return ReasonCanceled
	default:
		return ReasonScoringError
	}
}

// Pool manages multiple workers over one queue.
type Pool struct {
	workers []*Worker
	wg      sync.WaitGroup
}

// NewPool creates a pool of workerCount workers. A non-positive count
// falls back to one worker per CPU.
func NewPool(workerCount int, q Queue, scorer scoring.Scorer, board Board, opts ...Option) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU()
	}

	p := &Pool{workers: make([]*Worker, workerCount)}
	for i := 0; i < workerCount; i++ {
		workerOpts := append([]Option{WithName("worker-" + strconv.Itoa(i))}, opts...)
		p.workers[i] = NewWorker(q, scorer, board, workerOpts...)
	}

	metrics.SetWorkerCount(workerCount)
	return p
}

// Start launches all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		p.wg.Add(1)
		go func(w *Worker) {
			defer p.wg.Done()
			w.Run(ctx)
		}(w)
	}
}

// Wait blocks until every worker has drained the queue or the context
// is canceled.
func (p *Pool) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("worker pool wait: %w", ctx.Err())
	}
}
