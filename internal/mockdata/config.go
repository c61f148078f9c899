// Package mockdata generates synthetic election and filing fixtures
// shaped like the real collector output, for local development and
// load testing.
package mockdata

// Default generation constants sized to the real district universe.
const (
	DefaultHouseDistricts  = 124
	DefaultSenateDistricts = 46
	DefaultSeed            = 1
)

// Config controls fixture generation.
type Config struct {
	// HouseDistricts and SenateDistricts set the universe size.
	HouseDistricts  int
	SenateDistricts int

	// Seed makes runs reproducible.
	Seed int64

	// ElectionsPath and CandidatesPath are the output file locations.
	ElectionsPath  string
	CandidatesPath string
}

// NewConfig returns a Config with defaults matching production data.
func NewConfig() *Config {
	return &Config{
		HouseDistricts:  DefaultHouseDistricts,
		SenateDistricts: DefaultSenateDistricts,
		Seed:            DefaultSeed,
		ElectionsPath:   "data/elections.json",
		CandidatesPath:  "data/candidates.json",
	}
}
