package scoring_test

import (
	"context"
	"testing"

	"github.com/russellteter/blue-intelligence/internal/domain/model"
	scoring "github.com/russellteter/blue-intelligence/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func history(comp *model.Competitiveness, elections map[string]model.ElectionResult) *model.DistrictHistory {
	return &model.DistrictHistory{
		DistrictNumber:  1,
		Elections:       elections,
		Competitiveness: comp,
	}
}

func contested(year int, margin float64) model.ElectionResult {
	return model.ElectionResult{
		Year:   year,
		Winner: model.CandidateResult{Name: "Winner", Party: "Republican"},
		Margin: margin,
	}
}

func TestEngine_Score(t *testing.T) {
	engine := scoring.NewEngine()
	ctx := context.Background()

	Convey("Given an open seat with no historical data and no filers", t, func() {
		in := scoring.Input{
			DistrictNumber: 42,
			History:        history(nil, nil),
			Filing:         &model.DistrictFiling{},
		}

		Convey("Then factors fall back to neutral midpoints", func() {
			out, err := engine.Score(ctx, in)
			So(err, ShouldBeNil)
			So(out.Factors.Competitiveness, ShouldEqual, 0.5)
			So(out.Factors.MarginTrend, ShouldEqual, 0.5)
			So(out.Factors.Incumbency, ShouldEqual, 1.0)
			So(out.Factors.CandidatePresence, ShouldEqual, 0.0)
			So(out.Factors.OpenSeatBonus, ShouldBeTrue)

			Convey("And the score lands mid-range with open seat flagged", func() {
				So(out.OpportunityScore, ShouldEqual, 65)
				So(out.Tier, ShouldEqual, model.TierEmerging)
				So(out.Flags.OpenSeat, ShouldBeTrue)
				So(out.Flags.HasDemocrat, ShouldBeFalse)
				So(out.Flags.NeedsCandidate, ShouldBeTrue)
				So(out.Flags.TrendingDem, ShouldBeFalse)
			})
		})
	})

	Convey("Given a seat defended by a target-party incumbent running unopposed", t, func() {
		in := scoring.Input{
			DistrictNumber: 7,
			History: history(
				&model.Competitiveness{Score: 10, AvgMargin: 35},
				map[string]model.ElectionResult{
					"2022": contested(2022, 30),
					"2024": contested(2024, 40),
				},
			),
			Filing: &model.DistrictFiling{
				Candidates: []model.Candidate{
					{Name: "Jane Doe", Party: "Democratic", IsIncumbent: true},
				},
				Incumbent: &model.Incumbent{Name: "Jane Doe", Party: "Democratic"},
			},
		}

		out, err := engine.Score(ctx, in)
		So(err, ShouldBeNil)

		Convey("Then the tier is DEFENSIVE regardless of the weighted score", func() {
			So(out.Tier, ShouldEqual, model.TierDefensive)
			So(out.TierLabel, ShouldEqual, "Defensive")
			So(out.Flags.Defensive, ShouldBeTrue)
		})

		Convey("And the defensive floor keeps the seat visible in rankings", func() {
			So(out.OpportunityScore, ShouldEqual, 60)
		})

		Convey("And no candidate recruitment is needed", func() {
			So(out.Flags.NeedsCandidate, ShouldBeFalse)
			So(out.Flags.HasDemocrat, ShouldBeTrue)
			So(out.Recommendation, ShouldEqual, "Protect seat - ensure strong candidate and resources")
		})
	})

	Convey("Given an opposing-party incumbent who has not filed", t, func() {
		in := scoring.Input{
			DistrictNumber: 9,
			History: history(
				&model.Competitiveness{Score: 80, AvgMargin: 4},
				map[string]model.ElectionResult{
					"2022": contested(2022, 12),
					"2024": contested(2024, 4),
				},
			),
			Filing: &model.DistrictFiling{
				Candidates: []model.Candidate{
					{Name: "New Challenger", Party: "Republican"},
				},
				Incumbent: &model.Incumbent{Name: "Old Timer", Party: "Republican"},
			},
		}

		out, err := engine.Score(ctx, in)
		So(err, ShouldBeNil)

		Convey("Then the seat counts as open for the incumbency factor", func() {
			So(out.Factors.Incumbency, ShouldEqual, 1.0)
		})

		Convey("But not for the open seat bonus, which needs a vacant seat", func() {
			So(out.Factors.OpenSeatBonus, ShouldBeFalse)
			So(out.Flags.OpenSeat, ShouldBeFalse)
		})

		Convey("And shrinking margins read as a favorable trend", func() {
			So(out.Metrics.TrendChange, ShouldEqual, 8)
			So(out.Factors.MarginTrend, ShouldBeGreaterThan, 0.5)
			So(out.Flags.TrendingDem, ShouldBeTrue)
		})
	})

	Convey("Given a district with a filed target-party candidate", t, func() {
		in := scoring.Input{
			DistrictNumber: 3,
			History: history(
				&model.Competitiveness{Score: 75, AvgMargin: 6},
				map[string]model.ElectionResult{
					"2022": contested(2022, 10),
					"2024": contested(2024, 6),
				},
			),
			Filing: &model.DistrictFiling{
				Candidates: []model.Candidate{
					{Name: "Alex Rivers", Party: "democratic"},
					{Name: "Incumbent Smith", Party: "Republican", IsIncumbent: true},
				},
				Incumbent: &model.Incumbent{Name: "Incumbent Smith", Party: "Republican"},
			},
		}

		out, err := engine.Score(ctx, in)
		So(err, ShouldBeNil)

		Convey("Then party matching is case-insensitive", func() {
			So(out.Factors.CandidatePresence, ShouldEqual, 1.0)
			So(out.Flags.HasDemocrat, ShouldBeTrue)
			So(out.Flags.NeedsCandidate, ShouldBeFalse)
		})
	})

	Convey("Given identical inputs scored twice", t, func() {
		in := scoring.Input{
			DistrictNumber: 11,
			History: history(
				&model.Competitiveness{Score: 55, AvgMargin: 9},
				map[string]model.ElectionResult{
					"2020": contested(2020, 22),
					"2022": contested(2022, 15),
					"2024": contested(2024, 9),
				},
			),
			Filing: &model.DistrictFiling{
				Incumbent: &model.Incumbent{Name: "Rep Holder", Party: "Republican"},
			},
		}

		first, err1 := engine.Score(ctx, in)
		second, err2 := engine.Score(ctx, in)

		Convey("Then the output is byte-identical", func() {
			So(err1, ShouldBeNil)
			So(err2, ShouldBeNil)
			So(second, ShouldResemble, first)
		})
	})

	Convey("Given malformed or missing inputs", t, func() {
		Convey("When both records are absent the district is unscorable", func() {
			_, err := engine.Score(ctx, scoring.Input{DistrictNumber: 1})
			So(err, ShouldEqual, scoring.ErrMissingDistrict)
		})

		Convey("When only the history record is absent", func() {
			_, err := engine.Score(ctx, scoring.Input{
				DistrictNumber: 1,
				Filing:         &model.DistrictFiling{},
			})
			So(err, ShouldEqual, scoring.ErrMissingHistory)
		})

		Convey("When only the filing record is absent", func() {
			_, err := engine.Score(ctx, scoring.Input{
				DistrictNumber: 1,
				History:        history(nil, nil),
			})
			So(err, ShouldEqual, scoring.ErrMissingFiling)
		})

		Convey("When elections exist without a competitiveness summary", func() {
			_, err := engine.Score(ctx, scoring.Input{
				DistrictNumber: 1,
				History: history(nil, map[string]model.ElectionResult{
					"2024": contested(2024, 5),
				}),
				Filing: &model.DistrictFiling{},
			})
			So(err, ShouldEqual, scoring.ErrMalformedRecord)
		})
	})
}

func TestEngine_ScoreBounds(t *testing.T) {
	engine := scoring.NewEngine()
	ctx := context.Background()

	Convey("Given a grid of extreme and out-of-range inputs", t, func() {
		compScores := []int{-50, 0, 5, 30, 50, 75, 100, 150}
		margins := [][2]float64{{0, 0}, {100, 0}, {0, 100}, {60, 2}, {2, 60}}
		filings := []*model.DistrictFiling{
			{},
			{Incumbent: &model.Incumbent{Name: "R Holder", Party: "Republican"}},
			{Incumbent: &model.Incumbent{Name: "D Holder", Party: "Democratic"}},
			{Candidates: []model.Candidate{{Name: "Filer", Party: "Democratic"}}},
		}

		Convey("Then every output respects the score and tier invariants", func() {
			for _, cs := range compScores {
				for _, m := range margins {
					for _, filing := range filings {
						in := scoring.Input{
							DistrictNumber: 1,
							History: history(
								&model.Competitiveness{Score: cs, AvgMargin: m[0]},
								map[string]model.ElectionResult{
									"2022": contested(2022, m[0]),
									"2024": contested(2024, m[1]),
								},
							),
							Filing: filing,
						}
						out, err := engine.Score(ctx, in)
						So(err, ShouldBeNil)
						So(out.OpportunityScore, ShouldBeBetweenOrEqual, 0, 100)
						So(out.Tier.Valid(), ShouldBeTrue)
						So(out.Factors.Competitiveness, ShouldBeBetweenOrEqual, 0, 1)
						So(out.Factors.MarginTrend, ShouldBeBetweenOrEqual, 0, 1)
						So(out.Recommendation, ShouldNotBeEmpty)

						defended := filing.Incumbent != nil && filing.Incumbent.Party == "Democratic"
						So(out.Tier == model.TierDefensive, ShouldEqual, defended)
						if out.Flags.NeedsCandidate {
							So(out.OpportunityScore, ShouldBeGreaterThanOrEqualTo, 50)
							So(out.Flags.HasDemocrat, ShouldBeFalse)
						}
					}
				}
			}
		})
	})
}
