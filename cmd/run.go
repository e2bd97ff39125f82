package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dart-sim/dart-sim/sim"
	"github.com/dart-sim/dart-sim/sim/stats"
)

// runCmd executes a single simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate throws against a fixed board and report where they land",
	Run: func(cmd *cobra.Command, args []string) {
		s := resolveScenario(cmd)
		skill := averagedSkill(s)
		target := s.TargetOrDefault()

		logrus.Infof("Starting simulation: seed=%d shots=%d skill=%.2f board=%gx%g",
			s.Seed, s.Shots, skill, s.Board.Width, s.Board.Height)
		startTime := time.Now()

		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(s.Seed))
		result, err := sim.Run(s.Shots, skill, s.Board.Width, s.Board.Height, target, rng.ForSubsystem(sim.SubsystemShots))
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		summary := stats.Summarize(result, target.Center)

		if shotsCSV != "" {
			f, err := os.Create(shotsCSV)
			if err != nil {
				logrus.Fatalf("Failed to create %s: %v", shotsCSV, err)
			}
			if err := writeShotsCSV(f, result); err != nil {
				logrus.Fatalf("Failed to write shots CSV: %v", err)
			}
			if err := f.Close(); err != nil {
				logrus.Fatalf("Failed to close %s: %v", shotsCSV, err)
			}
			logrus.Infof("Wrote %d shots to %s", result.TotalShots, shotsCSV)
		}

		if jsonOutput {
			report := RunReport{Seed: s.Seed, Skill: skill, Target: target, Result: result, Stats: summary}
			if err := writeJSON(os.Stdout, report); err != nil {
				logrus.Fatalf("Failed to encode result: %v", err)
			}
		} else {
			printStats(os.Stdout, skill, result, summary)
		}

		logrus.Infof("Simulation complete in %s", time.Since(startTime))
	},
}
