// Package stats summarizes how tightly a simulated group of throws clusters
// around the aim point. It reads sim results and never draws random numbers.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/dart-sim/dart-sim/sim"
)

// Summary describes the spread of a shot group, in centimeters.
type Summary struct {
	Shots      int     `json:"shots"`
	MeanX      float64 `json:"mean_x"`
	MeanY      float64 `json:"mean_y"`
	StdX       float64 `json:"std_x"`
	StdY       float64 `json:"std_y"`
	MeanRadial float64 `json:"mean_radial"`
	StdRadial  float64 `json:"std_radial"`
	CEP50      float64 `json:"cep50"` // radius holding half of the shots
	CEP90      float64 `json:"cep90"`
	MaxRadial  float64 `json:"max_radial"`
}

// Summarize computes grouping statistics for result's shots relative to center.
// Safe for nil or empty results (returns zero-value fields).
func Summarize(result *sim.SimulationResult, center sim.Point2D) Summary {
	if result == nil || len(result.Shots) == 0 {
		return Summary{}
	}
	n := len(result.Shots)
	xs := make([]float64, n)
	ys := make([]float64, n)
	radial := make([]float64, n)
	for i, s := range result.Shots {
		xs[i] = s.Shot.X
		ys[i] = s.Shot.Y
		radial[i] = math.Hypot(s.Shot.X-center.X, s.Shot.Y-center.Y)
	}

	summary := Summary{Shots: n}
	summary.MeanX, summary.StdX = meanStd(xs)
	summary.MeanY, summary.StdY = meanStd(ys)
	summary.MeanRadial, summary.StdRadial = meanStd(radial)

	sort.Float64s(radial)
	summary.CEP50 = stat.Quantile(0.5, stat.Empirical, radial, nil)
	summary.CEP90 = stat.Quantile(0.9, stat.Empirical, radial, nil)
	summary.MaxRadial = radial[n-1]
	return summary
}

// meanStd returns the mean and sample standard deviation; a single value has
// zero spread.
func meanStd(x []float64) (float64, float64) {
	if len(x) < 2 {
		return stat.Mean(x, nil), 0
	}
	return stat.MeanStdDev(x, nil)
}
