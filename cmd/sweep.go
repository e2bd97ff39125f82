package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dart-sim/dart-sim/sim"
)

// sweepCmd evaluates every candidate board size on one fixed sample and emits
// the coverage curve as CSV. It uses the optimizer's RNG stream, so the same
// seed reproduces the sample `optimize` searched.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Write the coverage-versus-board-size curve as CSV",
	Run: func(cmd *cobra.Command, args []string) {
		s := resolveScenario(cmd)
		skill := averagedSkill(s)
		sizes := s.SizeRangeOrDefault()

		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(s.Seed))
		curve, err := sim.CoverageCurve(skill, s.Shots, s.TargetOrDefault(), sizes, rng.ForSubsystem(sim.SubsystemOptimizer))
		if err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}

		if sweepOutput == "-" {
			if err := writeCurveCSV(os.Stdout, curve); err != nil {
				logrus.Fatalf("Failed to write sweep CSV: %v", err)
			}
		} else {
			f, err := os.Create(sweepOutput)
			if err != nil {
				logrus.Fatalf("Failed to create %s: %v", sweepOutput, err)
			}
			if err := writeCurveCSV(f, curve); err != nil {
				logrus.Fatalf("Failed to write sweep CSV: %v", err)
			}
			if err := f.Close(); err != nil {
				logrus.Fatalf("Failed to close %s: %v", sweepOutput, err)
			}
		}
		logrus.Infof("Swept %d board sizes at skill %.2f", len(curve), skill)
	},
}
