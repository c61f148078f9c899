// Package config defines service configuration structures and loading.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load() layers defaults, an optional YAML file, and env vars.
// - External errors are wrapped via this package's sentinel kinds.
package config

import (
	"runtime"

	"github.com/russellteter/blue-intelligence/internal/domain/scoring"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// ElectionsPath and CandidatesPath locate the two input data files.
	ElectionsPath  string `koanf:"elections_path"`
	CandidatesPath string `koanf:"candidates_path"`

	// OutputPath is where the batch command writes opportunity.json.
	// BackupPath, when set, receives a second copy.
	OutputPath string `koanf:"output_path"`
	BackupPath string `koanf:"backup_path"`

	// TargetParty is the party the opportunity score is computed for.
	TargetParty string `koanf:"target_party"`

	// WorkerCount sets the number of scoring workers.
	WorkerCount int `koanf:"worker_count"`

	// QueueSize bounds the in-memory score job queue.
	QueueSize int `koanf:"queue_size"`

	// MaxRankingLimit caps GET /api/rankings?limit.
	MaxRankingLimit int `koanf:"max_ranking_limit"`

	// Weights are the factor weights for the scoring engine; they must
	// sum to 1.0.
	Weights scoring.Weights `koanf:"weights"`

	// TrendSpan is the margin delta, in points, saturating the trend factor.
	TrendSpan float64 `koanf:"trend_span"`

	// OpenSeatBonus is the additive score bonus for promising open seats.
	OpenSeatBonus float64 `koanf:"open_seat_bonus"`

	// DefensiveFloor is the minimum score for target-party-held seats.
	DefensiveFloor float64 `koanf:"defensive_floor"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":8090",
		ElectionsPath:   "data/elections.json",
		CandidatesPath:  "data/candidates.json",
		OutputPath:      "data/opportunity.json",
		TargetParty:     "Democratic",
		WorkerCount:     runtime.NumCPU(),
		QueueSize:       512,
		MaxRankingLimit: 170,
		Weights:         scoring.DefaultWeights(),
		TrendSpan:       30,
		OpenSeatBonus:   10,
		DefensiveFloor:  60,
	}
}
