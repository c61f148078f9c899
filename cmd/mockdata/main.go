// Command mockdata writes synthetic elections.json and candidates.json
// fixtures for local development.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/russellteter/blue-intelligence/internal/mockdata"
	"github.com/russellteter/blue-intelligence/pkg/logger"
)

func main() {
	cfg := mockdata.NewConfig()
	flag.IntVar(&cfg.HouseDistricts, "house", cfg.HouseDistricts, "number of house districts")
	flag.IntVar(&cfg.SenateDistricts, "senate", cfg.SenateDistricts, "number of senate districts")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducible fixtures")
	flag.StringVar(&cfg.ElectionsPath, "elections", cfg.ElectionsPath, "output path for elections.json")
	flag.StringVar(&cfg.CandidatesPath, "candidates", cfg.CandidatesPath, "output path for candidates.json")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := mockdata.NewGenerator(cfg).Write(context.Background()); err != nil {
		os.Stderr.WriteString("mockdata failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
