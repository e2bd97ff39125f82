package sim

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

// sequenceSource replays a fixed list of standard normal draws.
type sequenceSource struct {
	vals []float64
	next int
}

func (s *sequenceSource) NormFloat64() float64 {
	v := s.vals[s.next]
	s.next++
	return v
}

func TestSampleShots_ScalesAndShiftsDraws(t *testing.T) {
	// GIVEN a source that yields x then y for each shot
	src := &sequenceSource{vals: []float64{0.5, -1, 2, 0}}

	// WHEN two shots are sampled around (1, 2) with sigma 10
	shots, err := SampleShots(src, Point2D{X: 1, Y: 2}, 10, 2)
	if err != nil {
		t.Fatal(err)
	}

	// THEN each axis is mean + z*sigma, x drawn first
	want := []Shot{{X: 6, Y: -8}, {X: 21, Y: 2}}
	for i := range want {
		if shots[i] != want[i] {
			t.Errorf("shot %d = %+v, want %+v", i, shots[i], want[i])
		}
	}
	if src.next != 4 {
		t.Errorf("consumed %d draws, want 4", src.next)
	}
}

func TestSampleShots_ZeroCountReturnsEmpty(t *testing.T) {
	shots, err := SampleShots(rand.New(rand.NewSource(1)), Point2D{}, 8, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(shots) != 0 {
		t.Errorf("got %d shots, want 0", len(shots))
	}
}

func TestSampleShots_InvalidArguments(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := SampleShots(rng, Point2D{}, 8, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative count: error = %v, want ErrInvalidArgument", err)
	}
	if _, err := SampleShots(rng, Point2D{}, 0, 10); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("zero sigma: error = %v, want ErrInvalidArgument", err)
	}
}

func TestSampleShots_MomentsMatchParams(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	center := Point2D{X: 0, Y: 173}
	n := 20000
	shots, err := SampleShots(rng, center, 8, n)
	if err != nil {
		t.Fatal(err)
	}

	var sumX, sumY, sqX, sqY float64
	for _, s := range shots {
		sumX += s.X
		sumY += s.Y
	}
	meanX, meanY := sumX/float64(n), sumY/float64(n)
	for _, s := range shots {
		sqX += (s.X - meanX) * (s.X - meanX)
		sqY += (s.Y - meanY) * (s.Y - meanY)
	}
	stdX, stdY := math.Sqrt(sqX/float64(n)), math.Sqrt(sqY/float64(n))

	if math.Abs(meanX-center.X) > 0.5 || math.Abs(meanY-center.Y) > 0.5 {
		t.Errorf("mean = (%.3f, %.3f), want ≈ (%.0f, %.0f)", meanX, meanY, center.X, center.Y)
	}
	if math.Abs(stdX-8)/8 > 0.05 || math.Abs(stdY-8)/8 > 0.05 {
		t.Errorf("std = (%.3f, %.3f), want ≈ 8 (within 5%%)", stdX, stdY)
	}
}
