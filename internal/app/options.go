package service

import (
	"github.com/russellteter/blue-intelligence/internal/dataset"
	"github.com/russellteter/blue-intelligence/internal/domain/scoring"
	"github.com/russellteter/blue-intelligence/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithScorer replaces the default scoring engine.
func WithScorer(scorer scoring.Scorer) Option {
	return func(s *Service) {
		if scorer != nil {
			s.scorer = scorer
		}
	}
}

// WithLoader replaces the default dataset loader.
func WithLoader(loader *dataset.Loader) Option {
	return func(s *Service) {
		if loader != nil {
			s.loader = loader
		}
	}
}

// WithDataPaths sets the elections and candidates input file paths.
func WithDataPaths(electionsPath, candidatesPath string) Option {
	return func(s *Service) {
		if electionsPath != "" {
			s.electionsPath = electionsPath
		}
		if candidatesPath != "" {
			s.candidatesPath = candidatesPath
		}
	}
}

// WithWorkerCount sets the number of scoring workers per run.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the minimum capacity of the score job queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithMaxRankingLimit caps the limit accepted by ranking queries.
func WithMaxRankingLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.maxRankingLimit = limit
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}
