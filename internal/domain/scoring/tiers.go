package scoring

import "github.com/russellteter/blue-intelligence/internal/domain/model"

// Score band thresholds. Lower bounds are inclusive: a district at
// exactly 70 is HIGH_OPPORTUNITY, at exactly 50 EMERGING, at exactly 30
// BUILD.
const (
	tierHighMin     = 70
	tierEmergingMin = 50
	tierBuildMin    = 30
)

// classifyTier maps a score onto its band, then applies the identity
// override: a seat defended by the target party is DEFENSIVE regardless
// of its numeric score. The override runs last on purpose; DEFENSIVE is
// not a score band.
func classifyTier(score int, defended bool) model.Tier {
	tier := model.TierNonCompetitive
	switch {
	case score >= tierHighMin:
		tier = model.TierHighOpportunity
	case score >= tierEmergingMin:
		tier = model.TierEmerging
	case score >= tierBuildMin:
		tier = model.TierBuild
	}

	if defended {
		return model.TierDefensive
	}
	return tier
}
