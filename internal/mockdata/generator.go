package mockdata

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/russellteter/blue-intelligence/internal/dataset"
	"github.com/russellteter/blue-intelligence/internal/domain/model"
	"github.com/russellteter/blue-intelligence/pkg/logger"
)

// District archetypes steering the margin distribution.
const (
	caseSafeRepublican = iota
	caseCompetitive
	caseTrendingBlue
	caseSafeDemocratic
	caseUncontested
	archetypeCount
)

// Election years emitted for every district.
var electionYears = []int{2020, 2022, 2024}

const uncontestedMargin = 100.0

// Generator produces paired election and filing fixtures.
type Generator struct {
	cfg *Config
	rng *rand.Rand
	log logger.Logger
}

// NewGenerator creates a generator for the given configuration.
func NewGenerator(cfg *Config) *Generator {
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
		log: logger.Get().Named("mockdata"),
	}
}

// Generate builds both sets in memory.
func (g *Generator) Generate(ctx context.Context) (*model.HistorySet, *model.FilingSet) {
	now := time.Now().UTC().Format(time.RFC3339)
	history := &model.HistorySet{
		LastUpdated: now,
		Source:      "mockdata",
		House:       map[string]*model.DistrictHistory{},
		Senate:      map[string]*model.DistrictHistory{},
	}
	filings := &model.FilingSet{
		LastUpdated: now,
		Source:      "mockdata",
		House:       map[string]*model.DistrictFiling{},
		Senate:      map[string]*model.DistrictFiling{},
	}

	g.fillChamber(history.House, filings.House, g.cfg.HouseDistricts)
	g.fillChamber(history.Senate, filings.Senate, g.cfg.SenateDistricts)

	g.log.Info(ctx, "generated fixtures",
		logger.Int("house", g.cfg.HouseDistricts),
		logger.Int("senate", g.cfg.SenateDistricts),
		logger.Int("seed", int(g.cfg.Seed)),
	)
	return history, filings
}

// Write generates both sets and writes them to the configured paths.
func (g *Generator) Write(ctx context.Context) error {
	history, filings := g.Generate(ctx)
	if err := dataset.WriteHistory(g.cfg.ElectionsPath, history); err != nil {
		return err
	}
	if err := dataset.WriteFilings(g.cfg.CandidatesPath, filings); err != nil {
		return err
	}
	g.log.Info(ctx, "wrote fixtures",
		logger.String("elections", g.cfg.ElectionsPath),
		logger.String("candidates", g.cfg.CandidatesPath),
	)
	return nil
}

func (g *Generator) fillChamber(histories map[string]*model.DistrictHistory, filings map[string]*model.DistrictFiling, count int) {
	for number := 1; number <= count; number++ {
		key := strconv.Itoa(number)
		archetype := g.rng.Intn(archetypeCount)
		histories[key] = g.district(number, archetype)
		filings[key] = g.filing(number, archetype, histories[key])
	}
}

// district builds one district's election history for its archetype.
func (g *Generator) district(number, archetype int) *model.DistrictHistory {
	elections := make(map[string]model.ElectionResult, len(electionYears))
	margins := make([]float64, 0, len(electionYears))

	for i, year := range electionYears {
		result := g.election(year, archetype, i)
		elections[strconv.Itoa(year)] = result
		margins = append(margins, result.Margin)
	}

	return &model.DistrictHistory{
		DistrictNumber:  number,
		Elections:       elections,
		Competitiveness: competitiveness(archetype, margins),
	}
}

// election produces one general election result. index orders the
// years oldest first so trending archetypes can tighten over time.
func (g *Generator) election(year, archetype, index int) model.ElectionResult {
	var margin float64
	winnerParty := "Republican"

	switch archetype {
	case caseSafeRepublican:
		margin = 35 + g.rng.Float64()*30
	case caseCompetitive:
		margin = 2 + g.rng.Float64()*10
	case caseTrendingBlue:
		// Margins shrink roughly 8 points per cycle.
		margin = math.Max(1, 28-float64(index)*8+g.rng.Float64()*4)
	case caseSafeDemocratic:
		margin = 20 + g.rng.Float64()*25
		winnerParty = "Democratic"
	case caseUncontested:
		margin = uncontestedMargin
	}

	loserParty := "Democratic"
	if winnerParty == "Democratic" {
		loserParty = "Republican"
	}

	total := 15000 + g.rng.Intn(25000)
	winnerPct := 50 + margin/2
	result := model.ElectionResult{
		Year:       year,
		TotalVotes: total,
		Winner: model.CandidateResult{
			Name:       fmt.Sprintf("%s Winner %d", winnerParty[:1], year),
			Party:      winnerParty,
			Votes:      int(float64(total) * winnerPct / 100),
			Percentage: round1(winnerPct),
		},
		Margin:      round1(margin),
		MarginVotes: int(float64(total) * margin / 100),
	}
	if archetype == caseUncontested {
		result.Uncontested = true
		result.Winner.Percentage = 100
		result.Winner.Votes = total
		result.Margin = uncontestedMargin
		result.MarginVotes = total
	} else {
		result.RunnerUp = &model.CandidateResult{
			Name:       fmt.Sprintf("%s Loser %d", loserParty[:1], year),
			Party:      loserParty,
			Votes:      total - result.Winner.Votes,
			Percentage: round1(100 - winnerPct),
		}
	}
	return result
}

// competitiveness summarizes the margins the way the collector does.
func competitiveness(archetype int, margins []float64) *model.Competitiveness {
	avg := 0.0
	for _, m := range margins {
		avg += m
	}
	avg /= float64(len(margins))

	contested := len(margins)
	dominant := "Republican"
	switch archetype {
	case caseSafeDemocratic:
		dominant = "Democratic"
	case caseUncontested:
		contested = 0
	}

	score := int(math.Max(0, math.Min(100, 100-avg)))
	return &model.Competitiveness{
		Score:          score,
		AvgMargin:      round1(avg),
		HasSwung:       archetype == caseTrendingBlue,
		ContestedRaces: contested,
		DominantParty:  &dominant,
	}
}

// filing builds the current candidate slate for a district.
func (g *Generator) filing(number, archetype int, history *model.DistrictHistory) *model.DistrictFiling {
	filing := &model.DistrictFiling{DistrictNumber: number}

	// Most seats have a sitting member; leave roughly one in eight open.
	if g.rng.Intn(8) != 0 {
		latest := history.Elections[strconv.Itoa(electionYears[len(electionYears)-1])]
		filing.Incumbent = &model.Incumbent{
			Name:  latest.Winner.Name,
			Party: latest.Winner.Party,
		}
	}

	if filing.Incumbent != nil && g.rng.Intn(3) != 0 {
		filing.Candidates = append(filing.Candidates, model.Candidate{
			Name:        filing.Incumbent.Name,
			Party:       filing.Incumbent.Party,
			Status:      "filed",
			FilingDate:  "2026-03-30",
			Source:      "mockdata",
			ReportID:    uuid.New().String(),
			IsIncumbent: true,
		})
	}

	// Competitive and trending seats draw challengers more often.
	challengerOdds := 4
	if archetype == caseCompetitive || archetype == caseTrendingBlue {
		challengerOdds = 2
	}
	if g.rng.Intn(challengerOdds) != 0 {
		filing.Candidates = append(filing.Candidates, model.Candidate{
			Name:       fmt.Sprintf("D Challenger %d", number),
			Party:      "Democratic",
			Status:     "filed",
			FilingDate: "2026-03-30",
			Source:     "mockdata",
			ReportID:   uuid.New().String(),
		})
	}
	return filing
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
