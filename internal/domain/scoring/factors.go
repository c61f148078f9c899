package scoring

import (
	"strings"

	"github.com/russellteter/blue-intelligence/internal/domain/model"
)

// Incumbency factor values: an open seat is twice as attractive as a
// contested incumbency.
const (
	incumbencyOpen = 1.0
	incumbencyHeld = 0.5
	trendNeutral   = 0.5
)

// calculateFactors converts raw metrics plus the filing snapshot into
// the five bounded factors. Each factor is clamped independently so a
// bad input can never push the weighted sum out of range.
func (e *Engine) calculateFactors(m model.Metrics, filing *model.DistrictFiling) model.Factors {
	f := model.Factors{
		Competitiveness: clamp01(float64(m.CompetitivenessScore) / maxScore),
		MarginTrend:     e.trendFactor(m.TrendChange),
		Incumbency:      incumbencyHeld,
		OpenSeatBonus:   filing.Incumbent == nil,
	}

	if !incumbentFiled(filing) {
		f.Incumbency = incumbencyOpen
	}
	if hasPartyCandidate(filing.Candidates, e.targetParty) {
		f.CandidatePresence = 1.0
	}

	return f
}

// trendFactor rescales a signed margin delta onto [0,1]: zero maps to
// the neutral 0.5, +trendSpan saturates at 1.0, -trendSpan at 0.0. The
// mapping is linear, monotonic, and symmetric around neutral.
func (e *Engine) trendFactor(change float64) float64 {
	return clamp01((e.trendSpan + change) / (2 * e.trendSpan))
}

// hasPartyCandidate reports whether any filed candidate's party matches
// the target party. The compare is a case-insensitive literal match,
// not fuzzy.
func hasPartyCandidate(candidates []model.Candidate, party string) bool {
	for _, c := range candidates {
		if strings.EqualFold(c.Party, party) {
			return true
		}
	}
	return false
}

// incumbentFiled reports whether the sitting incumbent appears among the
// filed candidates. Names are compared case-insensitively by
// containment to tolerate suffix and nickname drift between the
// legislature roster and filing reports.
func incumbentFiled(filing *model.DistrictFiling) bool {
	if filing.Incumbent == nil {
		return false
	}
	incumbent := strings.ToLower(filing.Incumbent.Name)
	for _, c := range filing.Candidates {
		if c.IsIncumbent {
			return true
		}
		name := strings.ToLower(c.Name)
		if name == "" || incumbent == "" {
			continue
		}
		if strings.Contains(name, incumbent) || strings.Contains(incumbent, name) {
			return true
		}
	}
	return false
}
