// Package scoring implements the district opportunity scoring pipeline:
// metric extraction, factor calculation, score aggregation with tier
// classification, and flag/recommendation generation.
//
// The pipeline is a pure function of its two input records. Scoring the
// same district twice with unchanged inputs yields identical output.
package scoring

import (
	"context"
	"math"
	"strings"

	"github.com/russellteter/blue-intelligence/internal/domain/model"
)

// Default scoring configuration constants.
const (
	defaultTargetParty    = "Democratic"
	defaultTrendSpan      = 30.0 // percentage points to saturate the trend factor
	defaultOpenSeatBonus  = 10.0 // additive points for promising open seats
	defaultDefensiveFloor = 60.0
	neutralMidpoint       = 50.0
	maxScore              = 100.0
	recentElectionWindow  = 3
	competitiveFloor      = 30 // competitiveness score above which open seats earn the bonus
)

// Weights are the relative contributions of the four bounded factors.
// They must sum to 1.0.
type Weights struct {
	Competitiveness   float64 `koanf:"competitiveness"`
	MarginTrend       float64 `koanf:"margin_trend"`
	Incumbency        float64 `koanf:"incumbency"`
	CandidatePresence float64 `koanf:"candidate_presence"`
}

// DefaultWeights returns the stock weighting scheme.
func DefaultWeights() Weights {
	return Weights{
		Competitiveness:   0.45,
		MarginTrend:       0.25,
		Incumbency:        0.20,
		CandidatePresence: 0.10,
	}
}

// Sum returns the total of all four weights.
func (w Weights) Sum() float64 {
	return w.Competitiveness + w.MarginTrend + w.Incumbency + w.CandidatePresence
}

// Input bundles the two per-district records the pipeline reads.
type Input struct {
	DistrictNumber int
	History        *model.DistrictHistory
	Filing         *model.DistrictFiling
}

// Scorer computes a DistrictOpportunity from a district's records.
type Scorer interface {
	// Score runs the pipeline for one district, honoring ctx for
	// cancellation.
	Score(ctx context.Context, in Input) (model.DistrictOpportunity, error)
}

// Engine implements Scorer with the fixed four-stage pipeline.
type Engine struct {
	targetParty    string
	weights        Weights
	trendSpan      float64
	openSeatBonus  float64
	defensiveFloor float64
}

// NewEngine creates a scoring engine with configuration options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		targetParty:    defaultTargetParty,
		weights:        DefaultWeights(),
		trendSpan:      defaultTrendSpan,
		openSeatBonus:  defaultOpenSeatBonus,
		defensiveFloor: defaultDefensiveFloor,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// TargetParty returns the party the engine optimizes for.
func (e *Engine) TargetParty() string {
	return e.targetParty
}

// Score runs the four pipeline stages for one district.
func (e *Engine) Score(ctx context.Context, in Input) (model.DistrictOpportunity, error) {
	if err := ctx.Err(); err != nil {
		return model.DistrictOpportunity{}, err
	}
	if in.History == nil && in.Filing == nil {
		return model.DistrictOpportunity{}, ErrMissingDistrict
	}
	if in.History == nil {
		return model.DistrictOpportunity{}, ErrMissingHistory
	}
	if in.Filing == nil {
		return model.DistrictOpportunity{}, ErrMissingFiling
	}
	if len(in.History.Elections) > 0 && in.History.Competitiveness == nil {
		return model.DistrictOpportunity{}, ErrMalformedRecord
	}

	metrics := e.extractMetrics(in.History)
	factors := e.calculateFactors(metrics, in.Filing)
	defended := e.isDefendedSeat(in.Filing)
	score := e.aggregate(factors, metrics, defended)
	tier := classifyTier(score, defended)
	flags := e.deriveFlags(score, factors, tier)

	return model.DistrictOpportunity{
		DistrictNumber:   in.DistrictNumber,
		OpportunityScore: score,
		Tier:             tier,
		TierLabel:        tier.Label(),
		Factors: model.Factors{
			Competitiveness:   round2(factors.Competitiveness),
			MarginTrend:       round2(factors.MarginTrend),
			Incumbency:        factors.Incumbency,
			CandidatePresence: factors.CandidatePresence,
			OpenSeatBonus:     factors.OpenSeatBonus,
		},
		Metrics: model.Metrics{
			AvgMargin:            round1(metrics.AvgMargin),
			TrendChange:          round1(metrics.TrendChange),
			CompetitivenessScore: metrics.CompetitivenessScore,
		},
		Flags:          flags,
		Recommendation: recommendationFor(tier, flags.NeedsCandidate, flags.OpenSeat),
	}, nil
}

// aggregate combines the bounded factors into an integer 0-100 score.
// The open seat bonus is additive; the defended-seat floor keeps
// target-party incumbencies visible in ranked views. The final value is
// rounded then clamped so it can never leave [0,100].
func (e *Engine) aggregate(f model.Factors, m model.Metrics, defended bool) int {
	raw := (e.weights.Competitiveness*f.Competitiveness +
		e.weights.MarginTrend*f.MarginTrend +
		e.weights.Incumbency*f.Incumbency +
		e.weights.CandidatePresence*f.CandidatePresence) * maxScore

	if f.OpenSeatBonus && m.CompetitivenessScore > competitiveFloor {
		raw = math.Min(maxScore, raw+e.openSeatBonus)
	}
	if defended {
		raw = math.Max(e.defensiveFloor, raw)
	}

	return int(math.Max(0, math.Min(maxScore, math.Round(raw))))
}

// isDefendedSeat reports whether the district's incumbent belongs to the
// target party.
func (e *Engine) isDefendedSeat(filing *model.DistrictFiling) bool {
	if filing.Incumbent == nil {
		return false
	}
	return strings.EqualFold(filing.Incumbent.Party, e.targetParty)
}

// deriveFlags projects the score, factors, and tier into the boolean
// flags downstream consumers filter on. Flags never feed back into the
// score.
func (e *Engine) deriveFlags(score int, f model.Factors, tier model.Tier) model.Flags {
	hasTarget := f.CandidatePresence == 1.0
	return model.Flags{
		NeedsCandidate: score >= tierEmergingMin && !hasTarget,
		OpenSeat:       f.OpenSeatBonus,
		TrendingDem:    f.MarginTrend > trendNeutral,
		Defensive:      tier == model.TierDefensive,
		HasDemocrat:    hasTarget,
	}
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
