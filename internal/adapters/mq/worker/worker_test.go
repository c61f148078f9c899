package worker_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/russellteter/blue-intelligence/internal/adapters/mq/queue"
	"github.com/russellteter/blue-intelligence/internal/adapters/mq/worker"
	"github.com/russellteter/blue-intelligence/internal/adapters/repository"
	"github.com/russellteter/blue-intelligence/internal/domain/model"
	"github.com/russellteter/blue-intelligence/internal/domain/scoring"
	"github.com/russellteter/blue-intelligence/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	_ = logger.SetLevelString("error")
	os.Exit(m.Run())
}

// exclusions collects exclusion callbacks across workers.
type exclusions struct {
	mu      sync.Mutex
	reasons map[string]string
}

func newExclusions() *exclusions {
	return &exclusions{reasons: map[string]string{}}
}

func (e *exclusions) record(_ model.Chamber, district, reason string, _ error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reasons[district] = reason
}

// scorerFunc adapts a function to the scoring.Scorer interface.
type scorerFunc func(ctx context.Context, in scoring.Input) (model.DistrictOpportunity, error)

func (f scorerFunc) Score(ctx context.Context, in scoring.Input) (model.DistrictOpportunity, error) {
	return f(ctx, in)
}

func history(number int) *model.DistrictHistory {
	return &model.DistrictHistory{
		DistrictNumber: number,
		Elections: map[string]model.ElectionResult{
			"2024": {
				Year:   2024,
				Winner: model.CandidateResult{Name: "R. Winner", Party: "Republican"},
				Margin: 12,
			},
		},
		Competitiveness: &model.Competitiveness{Score: 60, AvgMargin: 12, ContestedRaces: 1},
	}
}

func filing() *model.DistrictFiling {
	return &model.DistrictFiling{
		Candidates: []model.Candidate{{Name: "D. Filer", Party: "Democratic"}},
		Incumbent:  &model.Incumbent{Name: "R. Winner", Party: "Republican"},
	}
}

func TestPool_ProcessRun(t *testing.T) {
	ctx := context.Background()

	Convey("Given a queue of district jobs and a worker pool", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(16))
		board := repository.NewBoard()
		engine := scoring.NewEngine()
		excluded := newExclusions()

		jobs := []queue.Job{
			{
				Chamber:  model.ChamberHouse,
				District: "5",
				Input:    scoring.Input{DistrictNumber: 5, History: history(5), Filing: filing()},
			},
			{
				// History only, no filing record.
				Chamber:  model.ChamberHouse,
				District: "6",
				Input:    scoring.Input{DistrictNumber: 6, History: history(6)},
			},
			{
				Chamber:  model.ChamberSenate,
				District: "2",
				Input:    scoring.Input{DistrictNumber: 2, History: history(2), Filing: filing()},
			},
		}
		for _, j := range jobs {
			So(q.Enqueue(ctx, j), ShouldBeTrue)
		}
		So(q.Close(), ShouldBeNil)

		pool := worker.NewPool(3, q, engine, board, worker.WithExcludeFunc(excluded.record))
		pool.Start(ctx)
		So(pool.Wait(ctx), ShouldBeNil)

		Convey("Then scoreable districts land on the board", func() {
			So(board.Count(ctx), ShouldEqual, 2)

			rec, err := board.Get(ctx, model.ChamberHouse, "5")
			So(err, ShouldBeNil)
			So(rec.Tier.Valid(), ShouldBeTrue)

			_, err = board.Get(ctx, model.ChamberSenate, "2")
			So(err, ShouldBeNil)
		})

		Convey("Then the half-present district is excluded, not failed", func() {
			So(excluded.reasons["6"], ShouldEqual, worker.ReasonMissingFiling)
			_, err := board.Get(ctx, model.ChamberHouse, "6")
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given a scorer whose failure is caused by cancellation", t, func() {
		q := queue.NewInMemoryQueue()
		board := repository.NewBoard()
		excluded := newExclusions()

		interrupted := scorerFunc(func(context.Context, scoring.Input) (model.DistrictOpportunity, error) {
			return model.DistrictOpportunity{}, fmt.Errorf("score district: %w", context.Canceled)
		})

		job := queue.Job{
			Chamber:  model.ChamberHouse,
			District: "12",
			Input:    scoring.Input{DistrictNumber: 12, History: history(12), Filing: filing()},
		}
		So(q.Enqueue(ctx, job), ShouldBeTrue)
		So(q.Close(), ShouldBeNil)

		pool := worker.NewPool(1, q, interrupted, board, worker.WithExcludeFunc(excluded.record))
		pool.Start(ctx)
		So(pool.Wait(ctx), ShouldBeNil)

		Convey("Then the exclusion carries the canceled label, not scoring-error", func() {
			So(excluded.reasons["12"], ShouldEqual, worker.ReasonCanceled)
		})
	})

	Convey("Given a canceled context", t, func() {
		q := queue.NewInMemoryQueue()
		pool := worker.NewPool(1, q, scoring.NewEngine(), repository.NewBoard())

		canceled, cancel := context.WithCancel(ctx)
		cancel()
		pool.Start(canceled)

		Convey("Then wait returns promptly", func() {
			So(pool.Wait(ctx), ShouldBeNil)
		})
	})
}
