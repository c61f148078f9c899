package repository_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/russellteter/blue-intelligence/internal/adapters/repository"
	"github.com/russellteter/blue-intelligence/internal/domain/model"
)

func record(number, score int, tier model.Tier, needsCandidate bool) *model.DistrictOpportunity {
	return &model.DistrictOpportunity{
		DistrictNumber:   number,
		OpportunityScore: score,
		Tier:             tier,
		TierLabel:        tier.Label(),
		Flags:            model.Flags{NeedsCandidate: needsCandidate},
	}
}

func TestBoard_PutGet(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty board", t, func() {
		board := repository.NewBoard()

		Convey("When a district result is stored", func() {
			err := board.Put(ctx, model.ChamberHouse, "42", record(42, 71, model.TierHighOpportunity, true))
			So(err, ShouldBeNil)

			Convey("Then it can be read back", func() {
				rec, err := board.Get(ctx, model.ChamberHouse, "42")
				So(err, ShouldBeNil)
				So(rec.OpportunityScore, ShouldEqual, 71)
			})

			Convey("Then the other chamber does not see it", func() {
				_, err := board.Get(ctx, model.ChamberSenate, "42")
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})

			Convey("Then a second put replaces the record", func() {
				So(board.Put(ctx, model.ChamberHouse, "42", record(42, 33, model.TierBuild, false)), ShouldBeNil)
				rec, err := board.Get(ctx, model.ChamberHouse, "42")
				So(err, ShouldBeNil)
				So(rec.OpportunityScore, ShouldEqual, 33)
				So(board.Count(ctx), ShouldEqual, 1)
			})
		})

		Convey("When inputs are invalid", func() {
			So(errors.Is(board.Put(ctx, model.Chamber("assembly"), "1", record(1, 10, model.TierBuild, false)), repository.ErrUnknownChamber), ShouldBeTrue)
			So(errors.Is(board.Put(ctx, model.ChamberHouse, "1", nil), repository.ErrNilRecord), ShouldBeTrue)

			_, err := board.Get(ctx, model.Chamber("assembly"), "1")
			So(errors.Is(err, repository.ErrUnknownChamber), ShouldBeTrue)
		})
	})
}

func TestBoard_TopN(t *testing.T) {
	ctx := context.Background()

	Convey("Given a board with scored districts in both chambers", t, func() {
		board := repository.NewBoard()
		So(board.Put(ctx, model.ChamberHouse, "10", record(10, 80, model.TierHighOpportunity, false)), ShouldBeNil)
		So(board.Put(ctx, model.ChamberHouse, "3", record(3, 55, model.TierEmerging, true)), ShouldBeNil)
		So(board.Put(ctx, model.ChamberHouse, "21", record(21, 55, model.TierEmerging, false)), ShouldBeNil)
		So(board.Put(ctx, model.ChamberHouse, "7", record(7, 12, model.TierNonCompetitive, false)), ShouldBeNil)
		So(board.Put(ctx, model.ChamberSenate, "1", record(1, 99, model.TierHighOpportunity, true)), ShouldBeNil)

		Convey("Then rankings are per chamber, score desc", func() {
			entries, err := board.TopN(ctx, model.ChamberHouse, 10)
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 4)
			So(entries[0].District, ShouldEqual, "10")
			So(entries[0].Rank, ShouldEqual, 1)
		})

		Convey("Then ties share a rank and break by district number", func() {
			entries, err := board.TopN(ctx, model.ChamberHouse, 3)
			So(err, ShouldBeNil)
			So(entries[1].District, ShouldEqual, "3")
			So(entries[2].District, ShouldEqual, "21")
			So(entries[1].Rank, ShouldEqual, 2)
			So(entries[2].Rank, ShouldEqual, 2)
		})

		Convey("Then the limit truncates the result", func() {
			entries, err := board.TopN(ctx, model.ChamberHouse, 1)
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 1)
		})

		Convey("Then a put invalidates the cached ranking", func() {
			So(board.Put(ctx, model.ChamberHouse, "7", record(7, 95, model.TierHighOpportunity, false)), ShouldBeNil)
			entries, err := board.TopN(ctx, model.ChamberHouse, 1)
			So(err, ShouldBeNil)
			So(entries[0].District, ShouldEqual, "7")
		})

		Convey("Then invalid limits are rejected", func() {
			_, err := board.TopN(ctx, model.ChamberHouse, 0)
			So(errors.Is(err, repository.ErrInvalidLimit), ShouldBeTrue)
		})
	})
}
