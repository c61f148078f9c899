package model

// Tier is the discrete strategic classification assigned to a district.
type Tier string

// The five strategic tiers. Consumers may switch over these without a
// default case; the engine never emits anything else.
const (
	TierHighOpportunity Tier = "HIGH_OPPORTUNITY"
	TierEmerging        Tier = "EMERGING"
	TierBuild           Tier = "BUILD"
	TierNonCompetitive  Tier = "NON_COMPETITIVE"
	TierDefensive       Tier = "DEFENSIVE"
)

// Tiers lists every tier in band order, DEFENSIVE last.
func Tiers() []Tier {
	return []Tier{
		TierHighOpportunity,
		TierEmerging,
		TierBuild,
		TierNonCompetitive,
		TierDefensive,
	}
}

// tierLabels is the fixed display-label lookup keyed by tier.
var tierLabels = map[Tier]string{
	TierHighOpportunity: "High Opportunity",
	TierEmerging:        "Emerging",
	TierBuild:           "Build",
	TierNonCompetitive:  "Non-Competitive",
	TierDefensive:       "Defensive",
}

// Label returns the human-readable label for the tier.
func (t Tier) Label() string {
	return tierLabels[t]
}

// Valid reports whether t is one of the five enumerated tiers.
func (t Tier) Valid() bool {
	_, ok := tierLabels[t]
	return ok
}

// Factors are the bounded [0,1] inputs to the weighted score.
type Factors struct {
	Competitiveness   float64 `json:"competitiveness"`
	MarginTrend       float64 `json:"marginTrend"`
	Incumbency        float64 `json:"incumbency"`
	CandidatePresence float64 `json:"candidatePresence"`
	OpenSeatBonus     bool    `json:"openSeatBonus"`
}

// Metrics are the raw numeric signals extracted from the input records.
// TrendChange is signed so that positive always means margins are moving
// in the target party's favor.
type Metrics struct {
	AvgMargin            float64 `json:"avgMargin"`
	TrendChange          float64 `json:"trendChange"`
	CompetitivenessScore int     `json:"competitivenessScore"`
}

// Flags are boolean projections for downstream filtering and badges.
// They are derived from the score and factors, never fed back into them.
type Flags struct {
	NeedsCandidate bool `json:"needsCandidate"`
	OpenSeat       bool `json:"openSeat"`
	TrendingDem    bool `json:"trendingDem"`
	Defensive      bool `json:"defensive"`
	HasDemocrat    bool `json:"hasDemocrat"`
}

// DistrictOpportunity is the engine's output record for one district,
// rebuilt whole on every scoring run.
type DistrictOpportunity struct {
	DistrictNumber   int     `json:"districtNumber"`
	OpportunityScore int     `json:"opportunityScore"`
	Tier             Tier    `json:"tier"`
	TierLabel        string  `json:"tierLabel"`
	Factors          Factors `json:"factors"`
	Metrics          Metrics `json:"metrics"`
	Flags            Flags   `json:"flags"`
	Recommendation   string  `json:"recommendation"`
}

// Snapshot is a full scoring run over both chambers. Consumers must
// treat each run's output as a full-replacement snapshot, not a diff.
type Snapshot struct {
	LastUpdated string                          `json:"lastUpdated"`
	House       map[string]*DistrictOpportunity `json:"house"`
	Senate      map[string]*DistrictOpportunity `json:"senate"`
}

// Chamber returns the per-district map for the given chamber, or nil.
func (s *Snapshot) Chamber(c Chamber) map[string]*DistrictOpportunity {
	switch c {
	case ChamberHouse:
		return s.House
	case ChamberSenate:
		return s.Senate
	default:
		return nil
	}
}
