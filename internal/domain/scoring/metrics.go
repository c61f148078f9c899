package scoring

import (
	"sort"

	"github.com/russellteter/blue-intelligence/internal/domain/model"
)

// uncontestedMargin is the margin assigned to uncontested races when
// reading trend direction; a walkover is treated as a 100-point blowout.
const uncontestedMargin = 100.0

// extractMetrics pulls the raw numeric signals from a district's
// election history. Districts with no historical elections get neutral
// midpoint defaults rather than zeros, since a zero margin would
// misleadingly signal a dead-even race.
func (e *Engine) extractMetrics(history *model.DistrictHistory) model.Metrics {
	if len(history.Elections) == 0 || history.Competitiveness == nil {
		return model.Metrics{
			AvgMargin:            neutralMidpoint,
			TrendChange:          0,
			CompetitivenessScore: int(neutralMidpoint),
		}
	}

	return model.Metrics{
		AvgMargin:            history.Competitiveness.AvgMargin,
		TrendChange:          trendChange(history.Elections),
		CompetitivenessScore: history.Competitiveness.Score,
	}
}

// trendChange returns the margin delta across the most recent elections,
// signed so that positive means margins are shrinking in the target
// party's favor. Fewer than two elections yields 0 (no signal).
func trendChange(elections map[string]model.ElectionResult) float64 {
	years := make([]string, 0, len(elections))
	for year := range elections {
		years = append(years, year)
	}
	if len(years) < 2 {
		return 0
	}
	// Newest first; year keys are zero-padded four-digit strings.
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	if len(years) > recentElectionWindow {
		years = years[:recentElectionWindow]
	}

	margins := make([]float64, 0, len(years))
	for _, year := range years {
		result := elections[year]
		if result.Uncontested {
			margins = append(margins, uncontestedMargin)
			continue
		}
		margins = append(margins, result.Margin)
	}

	// Oldest minus newest: positive when the gap is closing.
	return margins[len(margins)-1] - margins[0]
}
