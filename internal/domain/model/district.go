// Package model contains domain records passed between layers.
//
// The input shapes mirror the JSON files produced by the upstream data
// collectors (elections.json, candidates.json); the output shapes mirror
// opportunity.json consumed by the dashboard.
package model

// Chamber identifies one of the two legislative chambers.
type Chamber string

// The two chambers tracked by the dashboard.
const (
	ChamberHouse  Chamber = "house"
	ChamberSenate Chamber = "senate"
)

// Valid reports whether c is one of the known chambers.
func (c Chamber) Valid() bool {
	return c == ChamberHouse || c == ChamberSenate
}

// CandidateResult is one candidate's line in a past election.
type CandidateResult struct {
	Name       string  `json:"name"`
	Party      string  `json:"party"`
	Votes      int     `json:"votes"`
	Percentage float64 `json:"percentage"`
}

// ElectionResult is the outcome of a single general election in a district.
type ElectionResult struct {
	Year        int              `json:"year"`
	TotalVotes  int              `json:"totalVotes"`
	Winner      CandidateResult  `json:"winner"`
	RunnerUp    *CandidateResult `json:"runnerUp,omitempty"`
	Margin      float64          `json:"margin"`
	MarginVotes int              `json:"marginVotes"`
	Uncontested bool             `json:"uncontested,omitempty"`
}

// Competitiveness is the precomputed summary attached to a district's
// election history. Score is on a 0-100 scale.
type Competitiveness struct {
	Score          int     `json:"score" validate:"min=0,max=100"`
	AvgMargin      float64 `json:"avgMargin"`
	HasSwung       bool    `json:"hasSwung"`
	ContestedRaces int     `json:"contestedRaces"`
	DominantParty  *string `json:"dominantParty"`
}

// DistrictHistory is one district's election history record.
// Elections is keyed by election year ("2024").
type DistrictHistory struct {
	DistrictNumber  int                       `json:"districtNumber"`
	Elections       map[string]ElectionResult `json:"elections"`
	Competitiveness *Competitiveness          `json:"competitiveness" validate:"required_with=Elections"`
}

// HistorySet is the full elections.json payload, keyed by chamber then
// district number (as a string).
type HistorySet struct {
	LastUpdated string                      `json:"lastUpdated"`
	Source      string                      `json:"source,omitempty"`
	House       map[string]*DistrictHistory `json:"house"`
	Senate      map[string]*DistrictHistory `json:"senate"`
}

// Chamber returns the per-district map for the given chamber, or nil.
func (h *HistorySet) Chamber(c Chamber) map[string]*DistrictHistory {
	switch c {
	case ChamberHouse:
		return h.House
	case ChamberSenate:
		return h.Senate
	default:
		return nil
	}
}

// Candidate is a current filing for a district race.
type Candidate struct {
	Name        string `json:"name" validate:"required"`
	Party       string `json:"party"`
	Status      string `json:"status,omitempty"`
	FilingDate  string `json:"filingDate,omitempty"`
	Source      string `json:"source,omitempty"`
	ReportID    string `json:"reportId,omitempty"`
	IsIncumbent bool   `json:"isIncumbent,omitempty"`
}

// Incumbent describes the current seat holder, when one exists.
type Incumbent struct {
	Name  string `json:"name" validate:"required"`
	Party string `json:"party"`
}

// DistrictFiling is the current candidate-filing snapshot for a district.
// Incumbent is nil for seats with no sitting member (vacant or newly
// drawn districts).
type DistrictFiling struct {
	DistrictNumber int         `json:"districtNumber,omitempty"`
	Candidates     []Candidate `json:"candidates"`
	Incumbent      *Incumbent  `json:"incumbent,omitempty"`
}

// FilingSet is the full candidates.json payload, keyed like HistorySet.
type FilingSet struct {
	LastUpdated string                     `json:"lastUpdated"`
	Source      string                     `json:"source,omitempty"`
	House       map[string]*DistrictFiling `json:"house"`
	Senate      map[string]*DistrictFiling `json:"senate"`
}

// Chamber returns the per-district map for the given chamber, or nil.
func (f *FilingSet) Chamber(c Chamber) map[string]*DistrictFiling {
	switch c {
	case ChamberHouse:
		return f.House
	case ChamberSenate:
		return f.Senate
	default:
		return nil
	}
}
