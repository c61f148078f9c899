package scoring

import (
	"testing"

	"github.com/russellteter/blue-intelligence/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestRecommendationTable(t *testing.T) {
	convey.Convey("Given the recommendation decision table", t, func() {
		convey.Convey("Then it is exhaustive over tier x needsCandidate x openSeat", func() {
			for _, tier := range model.Tiers() {
				for _, needs := range []bool{false, true} {
					for _, open := range []bool{false, true} {
						rec, ok := recommendations[recKey{tier, needs, open}]
						convey.So(ok, convey.ShouldBeTrue)
						convey.So(rec, convey.ShouldNotBeEmpty)
					}
				}
			}
		})

		convey.Convey("Then it contains no keys outside the enumerated tiers", func() {
			for key := range recommendations {
				convey.So(key.tier.Valid(), convey.ShouldBeTrue)
			}
			convey.So(len(recommendations), convey.ShouldEqual, len(model.Tiers())*4)
		})

		convey.Convey("Then high-value districts without a filer demand recruitment", func() {
			rec := recommendationFor(model.TierHighOpportunity, true, false)
			convey.So(rec, convey.ShouldEqual, recRecruitUrgent)
		})

		convey.Convey("Then emerging open seats without recruitment pressure invest early", func() {
			rec := recommendationFor(model.TierEmerging, false, true)
			convey.So(rec, convey.ShouldEqual, recOpenSeatInvest)
		})

		convey.Convey("Then defended seats are always protected", func() {
			convey.So(recommendationFor(model.TierDefensive, false, false), convey.ShouldEqual, recProtectSeat)
			convey.So(recommendationFor(model.TierDefensive, true, false), convey.ShouldEqual, recProtectUnfiled)
		})
	})
}
