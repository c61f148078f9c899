package main

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/russellteter/blue-intelligence/internal/config"
)

func TestApplyOverrides(t *testing.T) {
	Convey("Given a loaded config and flag values", t, func() {
		Convey("When no flags are set the config paths stand", func() {
			cfg := config.New()
			applyOverrides(cfg, "", "", "", "")
			So(cfg.ElectionsPath, ShouldEqual, "data/elections.json")
			So(cfg.CandidatesPath, ShouldEqual, "data/candidates.json")
			So(cfg.OutputPath, ShouldEqual, "data/opportunity.json")
			So(cfg.BackupPath, ShouldBeEmpty)
		})

		Convey("When flags are set they win over the config", func() {
			cfg := config.New()
			applyOverrides(cfg, "/tmp/e.json", "/tmp/c.json", "/tmp/o.json", "/tmp/o.bak")
			So(cfg.ElectionsPath, ShouldEqual, "/tmp/e.json")
			So(cfg.CandidatesPath, ShouldEqual, "/tmp/c.json")
			So(cfg.OutputPath, ShouldEqual, "/tmp/o.json")
			So(cfg.BackupPath, ShouldEqual, "/tmp/o.bak")
		})

		Convey("When only some flags are set the rest keep config values", func() {
			cfg := config.New()
			applyOverrides(cfg, "/tmp/e.json", "", "", "")
			So(cfg.ElectionsPath, ShouldEqual, "/tmp/e.json")
			So(cfg.CandidatesPath, ShouldEqual, "data/candidates.json")
		})
	})
}
