package scoring

import "github.com/russellteter/blue-intelligence/internal/domain/model"

// recKey identifies one cell of the recommendation decision table.
type recKey struct {
	tier           model.Tier
	needsCandidate bool
	openSeat       bool
}

// Recommendation strings. Fixed imperatives, no free text generation.
const (
	recProtectSeat      = "Protect seat - ensure strong candidate and resources"
	recProtectUnfiled   = "Protect seat - incumbent has not filed, confirm re-election plans"
	recRecruitUrgent    = "URGENT: Recruit Democratic candidate immediately"
	recMaxInvestment    = "High priority - maximum resource investment"
	recRecruitPriority  = "Priority candidate recruitment target"
	recOpenSeatInvest   = "Open seat opportunity - invest early"
	recWinnableCampaign = "Winnable with strong campaign - invest resources"
	recPartyBuilding    = "Long-term investment - party building focus"
	recLowPriority      = "Low priority - minimal resources"
)

// recommendations is the full decision table over (tier, needsCandidate,
// openSeat). Every combination has an entry, including ones the score
// math makes unreachable (e.g. BUILD with needsCandidate), so the table
// stays auditable and the engine can never emit an empty string. The
// test suite checks exhaustiveness.
var recommendations = map[recKey]string{
	{model.TierDefensive, false, false}: recProtectSeat,
	{model.TierDefensive, false, true}:  recProtectSeat,
	{model.TierDefensive, true, false}:  recProtectUnfiled,
	{model.TierDefensive, true, true}:   recProtectUnfiled,

	{model.TierHighOpportunity, true, false}:  recRecruitUrgent,
	{model.TierHighOpportunity, true, true}:   recRecruitUrgent,
	{model.TierHighOpportunity, false, false}: recMaxInvestment,
	{model.TierHighOpportunity, false, true}:  recMaxInvestment,

	{model.TierEmerging, true, false}:  recRecruitPriority,
	{model.TierEmerging, true, true}:   recRecruitPriority,
	{model.TierEmerging, false, true}:  recOpenSeatInvest,
	{model.TierEmerging, false, false}: recWinnableCampaign,

	{model.TierBuild, false, false}: recPartyBuilding,
	{model.TierBuild, false, true}:  recPartyBuilding,
	{model.TierBuild, true, false}:  recPartyBuilding,
	{model.TierBuild, true, true}:   recPartyBuilding,

	{model.TierNonCompetitive, false, false}: recLowPriority,
	{model.TierNonCompetitive, false, true}:  recLowPriority,
	{model.TierNonCompetitive, true, false}:  recLowPriority,
	{model.TierNonCompetitive, true, true}:   recLowPriority,
}

// recommendationFor looks up the strategic recommendation for a
// classified district.
func recommendationFor(tier model.Tier, needsCandidate, openSeat bool) string {
	if rec, ok := recommendations[recKey{tier, needsCandidate, openSeat}]; ok {
		return rec
	}
	return recLowPriority
}
