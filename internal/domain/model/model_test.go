package model_test

import (
	"encoding/json"
	"testing"

	model "github.com/russellteter/blue-intelligence/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestTier(t *testing.T) {
	convey.Convey("Given the tier enumeration", t, func() {
		convey.Convey("Then every tier has a display label", func() {
			for _, tier := range model.Tiers() {
				convey.So(tier.Valid(), convey.ShouldBeTrue)
				convey.So(tier.Label(), convey.ShouldNotBeEmpty)
			}
			convey.So(len(model.Tiers()), convey.ShouldEqual, 5)
		})

		convey.Convey("Then unknown strings are rejected", func() {
			convey.So(model.Tier("TOSS_UP").Valid(), convey.ShouldBeFalse)
			convey.So(model.Tier("").Valid(), convey.ShouldBeFalse)
		})

		convey.Convey("Then labels match the dashboard legend", func() {
			convey.So(model.TierHighOpportunity.Label(), convey.ShouldEqual, "High Opportunity")
			convey.So(model.TierNonCompetitive.Label(), convey.ShouldEqual, "Non-Competitive")
		})
	})
}

func TestChamber(t *testing.T) {
	convey.Convey("Given the chamber type", t, func() {
		convey.So(model.ChamberHouse.Valid(), convey.ShouldBeTrue)
		convey.So(model.ChamberSenate.Valid(), convey.ShouldBeTrue)
		convey.So(model.Chamber("assembly").Valid(), convey.ShouldBeFalse)

		convey.Convey("Then set accessors select the matching district map", func() {
			set := &model.HistorySet{
				House:  map[string]*model.DistrictHistory{"1": {DistrictNumber: 1}},
				Senate: map[string]*model.DistrictHistory{"2": {DistrictNumber: 2}},
			}
			convey.So(set.Chamber(model.ChamberHouse), convey.ShouldContainKey, "1")
			convey.So(set.Chamber(model.ChamberSenate), convey.ShouldContainKey, "2")
			convey.So(set.Chamber(model.Chamber("assembly")), convey.ShouldBeNil)
		})
	})
}

func TestDistrictOpportunityJSON(t *testing.T) {
	convey.Convey("Given a scored district", t, func() {
		record := model.DistrictOpportunity{
			DistrictNumber:   17,
			OpportunityScore: 72,
			Tier:             model.TierHighOpportunity,
			TierLabel:        model.TierHighOpportunity.Label(),
			Factors:          model.Factors{Competitiveness: 0.8, MarginTrend: 0.6, Incumbency: 1.0, OpenSeatBonus: true},
			Metrics:          model.Metrics{AvgMargin: 4.2, TrendChange: 6.1, CompetitivenessScore: 80},
			Flags:            model.Flags{NeedsCandidate: true, OpenSeat: true},
			Recommendation:   "URGENT: Recruit Democratic candidate immediately",
		}

		convey.Convey("Then its wire shape matches the dashboard contract", func() {
			raw, err := json.Marshal(record)
			convey.So(err, convey.ShouldBeNil)

			var decoded map[string]any
			convey.So(json.Unmarshal(raw, &decoded), convey.ShouldBeNil)
			convey.So(decoded["opportunityScore"], convey.ShouldEqual, 72)
			convey.So(decoded["tier"], convey.ShouldEqual, "HIGH_OPPORTUNITY")
			convey.So(decoded["factors"], convey.ShouldNotBeNil)
			convey.So(decoded["metrics"], convey.ShouldNotBeNil)
			convey.So(decoded["flags"], convey.ShouldNotBeNil)
		})
	})
}
