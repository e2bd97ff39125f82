package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dart-sim/dart-sim/sim"
	"github.com/dart-sim/dart-sim/sim/stats"
)

// RunReport is the JSON form of a single simulation.
type RunReport struct {
	Seed   int64                 `json:"seed"`
	Skill  float64               `json:"skill"`
	Target sim.Target            `json:"target"`
	Result *sim.SimulationResult `json:"result"`
	Stats  stats.Summary         `json:"stats"`
}

// OptimizeReport is the JSON form of a board-size search.
type OptimizeReport struct {
	Seed         int64                   `json:"seed"`
	Skill        float64                 `json:"skill"`
	Shots        int                     `json:"shots"`
	ThresholdPct float64                 `json:"threshold_pct"`
	SizeRange    sim.SizeRange           `json:"size_range"`
	Result       *sim.OptimizationResult `json:"result"`
}

// printStats writes the human-readable statistics block for one run.
func printStats(w io.Writer, skill float64, result *sim.SimulationResult, summary stats.Summary) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Average Skill        : %.2f/10 (sigma %.2f cm)\n", skill, result.Sigma)
	fmt.Fprintf(w, "Board Size           : %g x %g cm\n", result.Board.Width(), result.Board.Height())
	fmt.Fprintf(w, "Total Shots          : %d\n", result.TotalShots)
	fmt.Fprintf(w, "In Target            : %d (%.1f%%)\n", result.InTargetCount, result.InTargetPct())
	fmt.Fprintf(w, "On Board             : %d (%.1f%%)\n", result.OnBoardCount, result.OnBoardPct())
	fmt.Fprintf(w, "Missed               : %d (%.1f%%)\n", result.MissedCount, result.MissedPct())
	fmt.Fprintf(w, "Coverage             : %.1f%%\n", result.Coverage())
	fmt.Fprintf(w, "CEP50 / CEP90        : %.1f / %.1f cm\n", summary.CEP50, summary.CEP90)
}

// printOptimization writes the outcome of a board-size search.
func printOptimization(w io.Writer, threshold float64, sizes sim.SizeRange, result *sim.OptimizationResult) {
	fmt.Fprintln(w, "=== Board Optimization ===")
	if result.Found {
		fmt.Fprintf(w, "Optimal Size         : %g x %g cm\n", result.Size, result.Size)
		fmt.Fprintf(w, "Coverage             : %.1f%% (threshold %.1f%%)\n", result.CoveragePct, threshold)
	} else {
		fmt.Fprintf(w, "No size in [%g, %g] cm reaches %.1f%% coverage\n", sizes.Min, sizes.Max, threshold)
	}
	fmt.Fprintf(w, "Sizes Evaluated      : %d\n", result.Evaluated)
}

// writeJSON pretty-prints v.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeShotsCSV writes one row per classified shot.
func writeShotsCSV(w io.Writer, result *sim.SimulationResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "x_cm", "y_cm", "class"}); err != nil {
		return err
	}
	for i, s := range result.Shots {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(s.Shot.X, 'f', 4, 64),
			strconv.FormatFloat(s.Shot.Y, 'f', 4, 64),
			s.Class.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeCurveCSV writes one row per candidate size.
func writeCurveCSV(w io.Writer, curve []sim.CoveragePoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"size_cm", "coverage_pct"}); err != nil {
		return err
	}
	for _, p := range curve {
		row := []string{
			strconv.FormatFloat(p.Size, 'f', -1, 64),
			strconv.FormatFloat(p.CoveragePct, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
