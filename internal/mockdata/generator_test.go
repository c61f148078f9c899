package mockdata_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/russellteter/blue-intelligence/internal/dataset"
	"github.com/russellteter/blue-intelligence/internal/mockdata"
	"github.com/russellteter/blue-intelligence/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	_ = logger.SetLevelString("error")
	os.Exit(m.Run())
}

func TestGenerator(t *testing.T) {
	ctx := context.Background()

	Convey("Given a generator with a fixed seed", t, func() {
		cfg := mockdata.NewConfig()
		cfg.HouseDistricts = 20
		cfg.SenateDistricts = 10
		cfg.Seed = 42

		gen := mockdata.NewGenerator(cfg)
		history, filings := gen.Generate(ctx)

		Convey("Then both sets cover the full universe", func() {
			So(history.House, ShouldHaveLength, 20)
			So(history.Senate, ShouldHaveLength, 10)
			So(filings.House, ShouldHaveLength, 20)
			So(filings.Senate, ShouldHaveLength, 10)
		})

		Convey("Then every district has elections and a summary", func() {
			for key, d := range history.House {
				So(d.Elections, ShouldNotBeEmpty)
				So(d.Competitiveness, ShouldNotBeNil)
				So(d.Competitiveness.Score, ShouldBeBetweenOrEqual, 0, 100)
				So(key, ShouldNotBeEmpty)
			}
		})

		Convey("Then generation is deterministic for a seed", func() {
			again, _ := mockdata.NewGenerator(cfg).Generate(ctx)
			So(again.House["1"].Competitiveness.Score, ShouldEqual, history.House["1"].Competitiveness.Score)
			So(again.House["1"].Elections["2024"].Margin, ShouldEqual, history.House["1"].Elections["2024"].Margin)
		})
	})

	Convey("Given output paths in a temp dir", t, func() {
		dir := t.TempDir()
		cfg := mockdata.NewConfig()
		cfg.HouseDistricts = 5
		cfg.SenateDistricts = 2
		cfg.ElectionsPath = filepath.Join(dir, "elections.json")
		cfg.CandidatesPath = filepath.Join(dir, "candidates.json")

		So(mockdata.NewGenerator(cfg).Write(ctx), ShouldBeNil)

		Convey("Then the files load back through the dataset loader", func() {
			history, filings, err := dataset.NewLoader().Load(ctx, cfg.ElectionsPath, cfg.CandidatesPath)
			So(err, ShouldBeNil)
			So(history.House, ShouldHaveLength, 5)
			So(filings.Senate, ShouldHaveLength, 2)
		})
	})
}
