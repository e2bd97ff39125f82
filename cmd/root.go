package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dart-sim/dart-sim/sim"
	"github.com/dart-sim/dart-sim/sim/scenario"
)

var (
	// Shared CLI flags
	seed         int64     // Seed for shot sampling
	logLevel     string    // Log verbosity level
	scenarioPath string    // Optional YAML scenario file
	shotCount    int       // Number of simulated throws
	skills       []float64 // Player skills, averaged before simulation
	boardWidth   float64   // Board width in cm
	boardHeight  float64   // Board height in cm

	// run flags
	jsonOutput bool   // Emit result as JSON instead of the stats block
	shotsCSV   string // Optional path for per-shot CSV

	// optimize / sweep flags
	thresholdPct float64 // Coverage threshold in percent
	sizeMin      float64 // Smallest square size tested
	sizeMax      float64 // Largest square size tested
	sizeStep     float64 // Step between tested sizes
	sweepOutput  string  // CSV destination for sweep ("-" = stdout)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "dart-sim",
	Short: "Monte Carlo simulator for dart-board backing size",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveScenario loads the scenario file (or defaults) and applies the
// command's flags on top of it. With a scenario file, only flags set
// explicitly on the command line override its values.
func resolveScenario(cmd *cobra.Command) *scenario.Scenario {
	s := scenario.Default()
	if scenarioPath != "" {
		loaded, err := scenario.Load(scenarioPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		s = loaded
		logrus.Infof("Loaded scenario from %s", scenarioPath)
	}

	override := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && (f.Changed || scenarioPath == "")
	}

	if override("seed") {
		s.Seed = seed
	}
	if override("shots") {
		s.Shots = shotCount
	}
	if override("skill") {
		s.Players = make([]scenario.PlayerSpec, len(skills))
		for i, v := range skills {
			s.Players[i] = scenario.PlayerSpec{Name: fmt.Sprintf("player %d", i+1), Skill: v}
		}
	}
	if override("board-width") {
		s.Board.Width = boardWidth
	}
	if override("board-height") {
		s.Board.Height = boardHeight
	}
	if s.Optimize == nil {
		s.Optimize = &scenario.OptimizeSpec{ThresholdPct: scenario.DefaultThresholdPct}
	}
	if override("threshold") {
		s.Optimize.ThresholdPct = thresholdPct
	}
	r := s.SizeRangeOrDefault()
	if override("size-min") {
		r.Min = sizeMin
	}
	if override("size-max") {
		r.Max = sizeMax
	}
	if override("size-step") {
		r.Step = sizeStep
	}
	s.Optimize.SizeRange = &r

	if err := s.Validate(); err != nil {
		logrus.Fatalf("Invalid scenario: %v", err)
	}
	return s
}

// averagedSkill returns the scenario's mean player skill or exits.
func averagedSkill(s *scenario.Scenario) float64 {
	skill, err := s.Skill()
	if err != nil {
		logrus.Fatalf("%v", err)
	}
	return skill
}

func addSimulationFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for shot sampling")
	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to a YAML scenario; explicit flags override its values")
	cmd.Flags().IntVar(&shotCount, "shots", scenario.DefaultShots, "Number of simulated throws")
	cmd.Flags().Float64SliceVar(&skills, "skill",
		[]float64{scenario.DefaultSkill, scenario.DefaultSkill, scenario.DefaultSkill},
		"Comma-separated player skills in [0, 10]; averaged into one dispersion")
}

func addSizeRangeFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&sizeMin, "size-min", sim.DefaultSizeRange.Min, "Smallest square board size tested (cm)")
	cmd.Flags().Float64Var(&sizeMax, "size-max", sim.DefaultSizeRange.Max, "Largest square board size tested (cm)")
	cmd.Flags().Float64Var(&sizeStep, "size-step", sim.DefaultSizeRange.Step, "Step between tested sizes (cm)")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	addSimulationFlags(runCmd)
	runCmd.Flags().Float64Var(&boardWidth, "board-width", scenario.DefaultBoardWidth, "Board width (cm)")
	runCmd.Flags().Float64Var(&boardHeight, "board-height", scenario.DefaultBoardHeight, "Board height (cm)")
	runCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")
	runCmd.Flags().StringVar(&shotsCSV, "shots-csv", "", "Write every classified shot to this CSV file")

	addSimulationFlags(optimizeCmd)
	optimizeCmd.Flags().Float64Var(&thresholdPct, "threshold", scenario.DefaultThresholdPct, "Required coverage in percent")
	addSizeRangeFlags(optimizeCmd)
	optimizeCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")

	addSimulationFlags(sweepCmd)
	addSizeRangeFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepOutput, "output", "-", "CSV destination for the coverage curve (- for stdout)")

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")

	rootCmd.AddCommand(runCmd, optimizeCmd, sweepCmd, serveCmd)
}
