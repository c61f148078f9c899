// Package repository defines the district board interface and errors.
package repository

import (
	"context"

	"github.com/russellteter/blue-intelligence/internal/domain/model"
)

// Entry represents one ranking row for a chamber.
type Entry struct {
	Rank           int           `json:"rank"`
	Chamber        model.Chamber `json:"chamber"`
	District       string        `json:"district"`
	DistrictNumber int           `json:"districtNumber"`
	Score          int           `json:"score"`
	Tier           model.Tier    `json:"tier"`
	NeedsCandidate bool          `json:"needsCandidate"`
	Recommendation string        `json:"recommendation"`
}

// Store provides read/write access to the scored district state.
type Store interface {
	// Put records the opportunity result for one district, replacing any
	// previous result for the same chamber and district key.
	Put(ctx context.Context, chamber model.Chamber, district string, rec *model.DistrictOpportunity) error

	// Get returns the stored result for one district.
	// Returns ErrNotFound if the district has no result.
	Get(ctx context.Context, chamber model.Chamber, district string) (*model.DistrictOpportunity, error)

	// TopN returns the top-N entries for a chamber ordered by score desc.
	TopN(ctx context.Context, chamber model.Chamber, n int) ([]Entry, error)

	// Count returns the number of scored districts across both chambers.
	Count(ctx context.Context) int
}
