package sim

import "fmt"

// NormalSource draws standard normal variates. *rand.Rand satisfies it.
type NormalSource interface {
	NormFloat64() float64
}

// Shot is where a single dart lands, in centimeters.
type Shot struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Point returns the shot's landing position.
func (s Shot) Point() Point2D { return Point2D{X: s.X, Y: s.Y} }

// SampleShots draws count independent shots around center. Each axis is drawn
// from Normal(center, sigma) on its own; x is drawn before y for every shot, so a
// call consumes exactly 2*count variates from rng.
func SampleShots(rng NormalSource, center Point2D, sigma float64, count int) ([]Shot, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: shot count must be non-negative, got %d", ErrInvalidArgument, count)
	}
	if err := requirePositive("sigma", sigma); err != nil {
		return nil, err
	}
	shots := make([]Shot, count)
	for i := range shots {
		x := rng.NormFloat64()*sigma + center.X
		y := rng.NormFloat64()*sigma + center.Y
		shots[i] = Shot{X: x, Y: y}
	}
	return shots, nil
}
