package repository

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/russellteter/blue-intelligence/internal/domain/model"
	"github.com/russellteter/blue-intelligence/pkg/metrics"
)

// Board is an in-memory Store implementation sized for the fixed
// district universe (124 House + 46 Senate seats). Writes happen only
// during a scoring run; reads dominate, so each chamber keeps a sorted
// ranking slice rebuilt lazily after the last write.
//
// Ordering: score DESC, then district number ASC (deterministic).
type Board struct {
	mu     sync.RWMutex
	byKey  map[model.Chamber]map[string]*model.DistrictOpportunity
	ranked map[model.Chamber][]Entry
	dirty  map[model.Chamber]bool
}

var _ Store = (*Board)(nil)

// NewBoard creates an empty district board.
func NewBoard() *Board {
	b := &Board{
		byKey:  make(map[model.Chamber]map[string]*model.DistrictOpportunity, 2),
		ranked: make(map[model.Chamber][]Entry, 2),
		dirty:  make(map[model.Chamber]bool, 2),
	}
	for _, c := range []model.Chamber{model.ChamberHouse, model.ChamberSenate} {
		b.byKey[c] = make(map[string]*model.DistrictOpportunity)
	}
	return b
}

// Put records the opportunity result for one district.
func (b *Board) Put(ctx context.Context, chamber model.Chamber, district string, rec *model.DistrictOpportunity) error {
	if !chamber.Valid() {
		return ErrUnknownChamber
	}
	if rec == nil {
		return ErrNilRecord
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.byKey[chamber][district] = rec
	b.dirty[chamber] = true
	return nil
}

// Get returns the stored result for one district.
func (b *Board) Get(ctx context.Context, chamber model.Chamber, district string) (*model.DistrictOpportunity, error) {
	if !chamber.Valid() {
		return nil, ErrUnknownChamber
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	rec, ok := b.byKey[chamber][district]
	if !ok {
		return nil, ErrNotFound
	}
	return rec, nil
}

// TopN returns the top N entries for a chamber ordered by score desc.
func (b *Board) TopN(ctx context.Context, chamber model.Chamber, n int) ([]Entry, error) {
	start := time.Now()
	defer func() {
		metrics.ObserveBoardQueryLatency(float64(time.Since(start).Milliseconds()))
	}()

	if !chamber.Valid() {
		return nil, ErrUnknownChamber
	}
	if n < 1 {
		return nil, ErrInvalidLimit
	}

	ranked := b.rankings(chamber)
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]Entry, n)
	copy(out, ranked[:n])
	return out, nil
}

// Count returns the number of scored districts across both chambers.
func (b *Board) Count(ctx context.Context) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.byKey[model.ChamberHouse]) + len(b.byKey[model.ChamberSenate])
}

// Chamber returns a copy of the per-district result map for a chamber.
func (b *Board) Chamber(chamber model.Chamber) map[string]*model.DistrictOpportunity {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(map[string]*model.DistrictOpportunity, len(b.byKey[chamber]))
	for k, v := range b.byKey[chamber] {
		out[k] = v
	}
	return out
}

// rankings returns the sorted slice for a chamber, rebuilding it when
// writes have happened since the last build.
func (b *Board) rankings(chamber model.Chamber) []Entry {
	b.mu.RLock()
	if !b.dirty[chamber] {
		ranked := b.ranked[chamber]
		b.mu.RUnlock()
		return ranked
	}
	b.mu.RUnlock()

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.dirty[chamber] {
		return b.ranked[chamber]
	}

	entries := make([]Entry, 0, len(b.byKey[chamber]))
	for district, rec := range b.byKey[chamber] {
		entries = append(entries, Entry{
			Chamber:        chamber,
			District:       district,
			DistrictNumber: districtNumber(district, rec),
			Score:          rec.OpportunityScore,
			Tier:           rec.Tier,
			NeedsCandidate: rec.Flags.NeedsCandidate,
			Recommendation: rec.Recommendation,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].DistrictNumber < entries[j].DistrictNumber
	})
	assignRanksWithTies(entries)

	b.ranked[chamber] = entries
	b.dirty[chamber] = false
	return entries
}

// districtNumber prefers the record's own number, falling back to the
// map key for records that never carried one.
func districtNumber(district string, rec *model.DistrictOpportunity) int {
	if rec.DistrictNumber != 0 {
		return rec.DistrictNumber
	}
	n, err := strconv.Atoi(district)
	if err != nil {
		return 0
	}
	return n
}

// assignRanksWithTies gives equal scores equal ranks, with the next
// distinct score taking the next consecutive rank.
func assignRanksWithTies(entries []Entry) {
	if len(entries) == 0 {
		return
	}

	currentRank := 1
	for i := 0; i < len(entries); i++ {
		entries[i].Rank = currentRank

		sameScoreCount := 1
		for j := i + 1; j < len(entries) && entries[j].Score == entries[i].Score; j++ {
			entries[j].Rank = currentRank
			sameScoreCount++
		}

		currentRank++
		i += sameScoreCount - 1
	}
}
