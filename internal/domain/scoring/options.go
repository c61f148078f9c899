package scoring

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithTargetParty sets the party the score is computed for.
func WithTargetParty(party string) Option {
	return func(e *Engine) {
		if party != "" {
			e.targetParty = party
		}
	}
}

// WithWeights sets the factor weighting scheme. The weights must sum to
// 1.0; invalid schemes are ignored in favor of the defaults.
func WithWeights(w Weights) Option {
	return func(e *Engine) {
		const tolerance = 1e-9
		sum := w.Sum()
		if sum > 1-tolerance && sum < 1+tolerance {
			e.weights = w
		}
	}
}

// WithTrendSpan sets the margin delta, in percentage points, at which
// the trend factor saturates.
func WithTrendSpan(span float64) Option {
	return func(e *Engine) {
		if span > 0 {
			e.trendSpan = span
		}
	}
}

// WithOpenSeatBonus sets the additive bonus for promising open seats.
func WithOpenSeatBonus(bonus float64) Option {
	return func(e *Engine) {
		if bonus >= 0 {
			e.openSeatBonus = bonus
		}
	}
}

// WithDefensiveFloor sets the minimum score assigned to seats defended
// by the target party.
func WithDefensiveFloor(floor float64) Option {
	return func(e *Engine) {
		if floor >= 0 && floor <= maxScore {
			e.defensiveFloor = floor
		}
	}
}
