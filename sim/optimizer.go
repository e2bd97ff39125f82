package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// SizeRange is an inclusive, ascending sweep of square board sizes in centimeters.
type SizeRange struct {
	Min  float64 `json:"min" yaml:"min"`
	Max  float64 `json:"max" yaml:"max"`
	Step float64 `json:"step" yaml:"step"`
}

// DefaultSizeRange sweeps 60 cm to 200 cm in 2 cm steps.
var DefaultSizeRange = SizeRange{Min: 60, Max: 200, Step: 2}

// MaxSizeCandidates bounds how many sizes a full coverage curve may evaluate.
const MaxSizeCandidates = 5000

// Validate checks that the range is finite, positive and well ordered.
func (r SizeRange) Validate() error {
	if err := requirePositive("size range min", r.Min); err != nil {
		return err
	}
	if err := requireFinite("size range max", r.Max); err != nil {
		return err
	}
	if err := requirePositive("size range step", r.Step); err != nil {
		return err
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: size range min %f exceeds max %f", ErrInvalidArgument, r.Min, r.Max)
	}
	return nil
}

// lastIndex is the index of the largest candidate not above Max. It stays a
// float so huge ranges cannot overflow int.
func (r SizeRange) lastIndex() float64 {
	return math.Floor((r.Max-r.Min)/r.Step + 1e-9)
}

// at returns the i-th candidate. Sizes are computed from the index, not by
// accumulation, so float steps do not drift.
func (r SizeRange) at(i int) float64 {
	return r.Min + float64(i)*r.Step
}

// ValidateCount runs Validate and also rejects ranges holding more than limit
// candidates.
func (r SizeRange) ValidateCount(limit int) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if n := r.lastIndex() + 1; n > float64(limit) {
		return fmt.Errorf("%w: size range has %g candidates, limit is %d", ErrInvalidArgument, n, limit)
	}
	return nil
}

// Candidates lists every size in the range in ascending order. Ranges with
// more than MaxSizeCandidates sizes are rejected.
func (r SizeRange) Candidates() ([]float64, error) {
	if err := r.ValidateCount(MaxSizeCandidates); err != nil {
		return nil, err
	}
	sizes := make([]float64, int(r.lastIndex())+1)
	for i := range sizes {
		sizes[i] = r.at(i)
	}
	return sizes, nil
}

// OptimizationResult reports the smallest square board meeting the coverage
// threshold. Size and CoveragePct are meaningful only when Found is true.
type OptimizationResult struct {
	Found       bool    `json:"found"`
	Size        float64 `json:"size"`
	CoveragePct float64 `json:"coverage_pct"`
	Sigma       float64 `json:"sigma"`
	Evaluated   int     `json:"evaluated"`
}

// CoveragePoint is the coverage of the fixed sample for one candidate size.
type CoveragePoint struct {
	Size        float64 `json:"size"`
	CoveragePct float64 `json:"coverage_pct"`
}

// Optimize finds the smallest square board in sizes whose coverage of one fixed
// sample of shotCount shots meets thresholdPct. Candidates are tried in ascending
// order and the sweep stops at the first success; coverage on a finite sample is
// not assumed monotone. Candidates are generated one at a time, so the range
// size is not capped. Found=false is a normal outcome, not an error. A threshold
// outside [0, 100] is rejected with ErrInvalidArgument instead of being reported
// as not found.
func Optimize(skill float64, shotCount int, thresholdPct float64, target Target, sizes SizeRange, rng NormalSource) (*OptimizationResult, error) {
	if err := requireFinite("coverage threshold", thresholdPct); err != nil {
		return nil, err
	}
	if thresholdPct < 0 || thresholdPct > 100 {
		return nil, fmt.Errorf("%w: coverage threshold must be in [0, 100], got %f", ErrInvalidArgument, thresholdPct)
	}
	shots, sigma, err := fixedSample(skill, shotCount, target, sizes, rng)
	if err != nil {
		return nil, err
	}

	result := &OptimizationResult{Sigma: sigma}
	last := sizes.lastIndex()
	for i := 0; float64(i) <= last; i++ {
		size := sizes.at(i)
		coverage := coverageOf(shots, target, size)
		result.Evaluated++
		logrus.Debugf("optimize: size=%.1f coverage=%.2f%%", size, coverage)
		if coverage >= thresholdPct {
			result.Found = true
			result.Size = size
			result.CoveragePct = coverage
			return result, nil
		}
	}
	logrus.Debugf("optimize: no size in [%.1f, %.1f] reaches %.2f%%", sizes.Min, sizes.Max, thresholdPct)
	return result, nil
}

// CoverageCurve evaluates every candidate in sizes against one fixed sample,
// without stopping early. sizes may hold at most MaxSizeCandidates sizes.
func CoverageCurve(skill float64, shotCount int, target Target, sizes SizeRange, rng NormalSource) ([]CoveragePoint, error) {
	if err := sizes.ValidateCount(MaxSizeCandidates); err != nil {
		return nil, err
	}
	shots, _, err := fixedSample(skill, shotCount, target, sizes, rng)
	if err != nil {
		return nil, err
	}
	candidates, err := sizes.Candidates()
	if err != nil {
		return nil, err
	}
	curve := make([]CoveragePoint, 0, len(candidates))
	for _, size := range candidates {
		curve = append(curve, CoveragePoint{Size: size, CoveragePct: coverageOf(shots, target, size)})
	}
	return curve, nil
}

// fixedSample validates the shared sweep inputs and draws the one sample set
// reused for every candidate.
func fixedSample(skill float64, shotCount int, target Target, sizes SizeRange, rng NormalSource) ([]Shot, float64, error) {
	if shotCount <= 0 {
		return nil, 0, fmt.Errorf("%w: shot count must be positive, got %d", ErrInvalidArgument, shotCount)
	}
	if err := requireFinite("skill", skill); err != nil {
		return nil, 0, err
	}
	if _, err := NewTarget(target.Center, target.Radius); err != nil {
		return nil, 0, err
	}
	if err := sizes.Validate(); err != nil {
		return nil, 0, err
	}
	sigma := Dispersion(skill)
	shots, err := SampleShots(rng, target.Center, sigma, shotCount)
	if err != nil {
		return nil, 0, err
	}
	return shots, sigma, nil
}

// coverageOf returns the percentage of shots in the target or on a centered
// size x size board.
func coverageOf(shots []Shot, target Target, size float64) float64 {
	board := centeredBoard(target.Center, size, size)
	covered := 0
	for _, shot := range shots {
		if Classify(shot, target, board) != Missed {
			covered++
		}
	}
	return percentOf(covered, len(shots))
}
