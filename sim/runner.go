package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Run simulates shotCount throws at the given skill against a width x height
// board centered on target. Results are deterministic for a given rng state;
// rng advances by exactly 2*shotCount normal draws.
func Run(shotCount int, skill, boardWidth, boardHeight float64, target Target, rng NormalSource) (*SimulationResult, error) {
	if shotCount <= 0 {
		return nil, fmt.Errorf("%w: shot count must be positive, got %d", ErrInvalidArgument, shotCount)
	}
	if err := requireFinite("skill", skill); err != nil {
		return nil, err
	}
	if _, err := NewTarget(target.Center, target.Radius); err != nil {
		return nil, err
	}
	board, err := NewCenteredBoard(target, boardWidth, boardHeight)
	if err != nil {
		return nil, err
	}

	sigma := Dispersion(skill)
	logrus.Debugf("run: skill=%.2f sigma=%.2f board=%.0fx%.0f shots=%d", skill, sigma, boardWidth, boardHeight, shotCount)

	shots, err := SampleShots(rng, target.Center, sigma, shotCount)
	if err != nil {
		return nil, err
	}

	result := &SimulationResult{
		Sigma: sigma,
		Board: board,
		Shots: make([]ClassifiedShot, 0, shotCount),
	}
	for _, shot := range shots {
		result.record(shot, Classify(shot, target, board))
	}
	return result, nil
}
