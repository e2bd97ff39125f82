package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dart-sim/dart-sim/sim"
)

// optimizeCmd searches for the smallest square board meeting a coverage threshold
var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Find the smallest square board that catches the requested share of throws",
	Run: func(cmd *cobra.Command, args []string) {
		s := resolveScenario(cmd)
		skill := averagedSkill(s)
		threshold := s.ThresholdOrDefault()
		sizes := s.SizeRangeOrDefault()

		logrus.Infof("Optimizing board: seed=%d shots=%d skill=%.2f threshold=%.1f%% sizes=[%g..%g step %g]",
			s.Seed, s.Shots, skill, threshold, sizes.Min, sizes.Max, sizes.Step)

		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(s.Seed))
		result, err := sim.Optimize(skill, s.Shots, threshold, s.TargetOrDefault(), sizes, rng.ForSubsystem(sim.SubsystemOptimizer))
		if err != nil {
			logrus.Fatalf("Optimization failed: %v", err)
		}
		if !result.Found {
			logrus.Warnf("No board size reached %.1f%% coverage", threshold)
		}

		if jsonOutput {
			report := OptimizeReport{Seed: s.Seed, Skill: skill, Shots: s.Shots, ThresholdPct: threshold, SizeRange: sizes, Result: result}
			if err := writeJSON(os.Stdout, report); err != nil {
				logrus.Fatalf("Failed to encode result: %v", err)
			}
			return
		}
		printOptimization(os.Stdout, threshold, sizes, result)
	},
}
