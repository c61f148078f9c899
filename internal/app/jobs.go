package service

import (
	"sort"
	"strconv"

	scorequeue "github.com/russellteter/blue-intelligence/internal/adapters/mq/queue"
	"github.com/russellteter/blue-intelligence/internal/domain/model"
	"github.com/russellteter/blue-intelligence/internal/domain/scoring"
)

// buildJobs produces one job per district key appearing in either input
// set. Keys present in only one set still get a job; the engine turns
// those into exclusions so the run report names every gap.
func buildJobs(history *model.HistorySet, filings *model.FilingSet) []scorequeue.Job {
	var jobs []scorequeue.Job
	for _, chamber := range []model.Chamber{model.ChamberHouse, model.ChamberSenate} {
		histories := history.Chamber(chamber)
		chamberFilings := filings.Chamber(chamber)

		for _, district := range unionKeys(histories, chamberFilings) {
			h := histories[district]
			f := chamberFilings[district]
			jobs = append(jobs, scorequeue.Job{
				Chamber:  chamber,
				District: district,
				Input: scoring.Input{
					DistrictNumber: districtNumber(district, h, f),
					History:        h,
					Filing:         f,
				},
			})
		}
	}
	return jobs
}

// unionKeys merges the key sets and sorts numerically so runs enqueue
// districts in a stable order.
func unionKeys(histories map[string]*model.DistrictHistory, filings map[string]*model.DistrictFiling) []string {
	seen := make(map[string]struct{}, len(histories)+len(filings))
	for k := range histories {
		seen[k] = struct{}{}
	}
	for k := range filings {
		seen[k] = struct{}{}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aerr := strconv.Atoi(keys[i])
		b, berr := strconv.Atoi(keys[j])
		if aerr != nil || berr != nil {
			return keys[i] < keys[j]
		}
		return a < b
	})
	return keys
}

// districtNumber resolves the numeric district id, preferring the
// records over the map key.
func districtNumber(district string, h *model.DistrictHistory, f *model.DistrictFiling) int {
	if h != nil && h.DistrictNumber != 0 {
		return h.DistrictNumber
	}
	if f != nil && f.DistrictNumber != 0 {
		return f.DistrictNumber
	}
	n, err := strconv.Atoi(district)
	if err != nil {
		return 0
	}
	return n
}
