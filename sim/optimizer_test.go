package sim

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeRange_Candidates(t *testing.T) {
	sizes, err := DefaultSizeRange.Candidates()
	require.NoError(t, err)
	require.Len(t, sizes, 71)
	assert.Equal(t, 60.0, sizes[0])
	assert.Equal(t, 62.0, sizes[1])
	assert.Equal(t, 200.0, sizes[70])

	single, err := SizeRange{Min: 5, Max: 5, Step: 1}.Candidates()
	require.NoError(t, err)
	assert.Equal(t, []float64{5}, single)
	uneven, err := SizeRange{Min: 10, Max: 17, Step: 3}.Candidates()
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 13, 16}, uneven)

	fine, err := SizeRange{Min: 1, Max: 2, Step: 0.1}.Candidates()
	require.NoError(t, err)
	require.Len(t, fine, 11)
	assert.InDelta(t, 2.0, fine[10], 1e-9)
}

func TestSizeRange_ValidateCount(t *testing.T) {
	tests := []struct {
		name    string
		sizes   SizeRange
		wantErr bool
	}{
		{"default range", DefaultSizeRange, false},
		{"exactly at limit", SizeRange{Min: 1, Max: MaxSizeCandidates, Step: 1}, false},
		{"one over limit", SizeRange{Min: 1, Max: MaxSizeCandidates + 1, Step: 1}, true},
		{"span beyond int", SizeRange{Min: 1, Max: 1e19, Step: 1}, true},
		{"tiny step", SizeRange{Min: 60, Max: 200, Step: 1e-9}, true},
		{"invalid range", SizeRange{Min: 200, Max: 60, Step: 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sizes.ValidateCount(MaxSizeCandidates)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
	_, err := SizeRange{Min: 1, Max: 1e19, Step: 1}.Candidates()
	assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
}

func TestSizeRange_Validate(t *testing.T) {
	tests := []struct {
		name  string
		r     SizeRange
		valid bool
	}{
		{"default", DefaultSizeRange, true},
		{"single size", SizeRange{Min: 80, Max: 80, Step: 2}, true},
		{"min above max", SizeRange{Min: 200, Max: 60, Step: 2}, false},
		{"zero step", SizeRange{Min: 60, Max: 200, Step: 0}, false},
		{"negative step", SizeRange{Min: 60, Max: 200, Step: -2}, false},
		{"zero min", SizeRange{Min: 0, Max: 200, Step: 2}, false},
		{"infinite max", SizeRange{Min: 60, Max: math.Inf(1), Step: 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
			}
		})
	}
}

func TestOptimize_ZeroThresholdReturnsSmallestSize(t *testing.T) {
	result, err := Optimize(0, 1000, 0, DefaultTarget(), DefaultSizeRange, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.True(t, result.Found)
	assert.Equal(t, 60.0, result.Size)
	assert.Equal(t, 1, result.Evaluated)
}

func TestOptimize_UnreachableThresholdNotFound(t *testing.T) {
	// GIVEN a novice and sizes far too small to catch every throw
	sizes := SizeRange{Min: 60, Max: 62, Step: 2}

	// WHEN full coverage is requested
	result, err := Optimize(0, 1000, 100, DefaultTarget(), sizes, rand.New(rand.NewSource(42)))

	// THEN the search completes normally without a size
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Equal(t, 2, result.Evaluated)
	assert.Zero(t, result.Size)
}

func TestOptimize_ReturnsFirstQualifyingCandidate(t *testing.T) {
	// GIVEN the same seed for the optimizer and the full curve
	const threshold = 98.0
	result, err := Optimize(8, 1000, threshold, DefaultTarget(), DefaultSizeRange, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	curve, err := CoverageCurve(8, 1000, DefaultTarget(), DefaultSizeRange, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	// THEN the optimizer stops at the first curve point meeting the threshold
	require.True(t, result.Found)
	for i, p := range curve {
		if p.CoveragePct >= threshold {
			assert.Equal(t, p.Size, result.Size)
			assert.Equal(t, p.CoveragePct, result.CoveragePct)
			assert.Equal(t, i+1, result.Evaluated)
			return
		}
	}
	t.Fatal("curve never reached threshold but optimizer reported found")
}

func TestOptimize_HigherSkillNeedsSmallerBoard(t *testing.T) {
	expert, err := Optimize(10, 2000, 98, DefaultTarget(), DefaultSizeRange, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	intermediate, err := Optimize(7, 2000, 98, DefaultTarget(), DefaultSizeRange, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	require.True(t, expert.Found)
	require.True(t, intermediate.Found)
	assert.Less(t, expert.Size, intermediate.Size)
}

func TestOptimize_SameSeedIsDeterministic(t *testing.T) {
	a, err := Optimize(7, 1000, 95, DefaultTarget(), DefaultSizeRange, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	b, err := Optimize(7, 1000, 95, DefaultTarget(), DefaultSizeRange, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestOptimize_InvalidArguments(t *testing.T) {
	tests := []struct {
		name      string
		shots     int
		threshold float64
		sizes     SizeRange
	}{
		{"threshold above 100", 1000, 101, DefaultSizeRange},
		{"negative threshold", 1000, -0.5, DefaultSizeRange},
		{"NaN threshold", 1000, math.NaN(), DefaultSizeRange},
		{"zero shots", 0, 98, DefaultSizeRange},
		{"inverted range", 1000, 98, SizeRange{Min: 200, Max: 60, Step: 2}},
		{"zero step", 1000, 98, SizeRange{Min: 60, Max: 200, Step: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Optimize(5, tt.shots, tt.threshold, DefaultTarget(), tt.sizes, rand.New(rand.NewSource(1)))
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
		})
	}
}

func TestOptimize_HugeSizeRangeStopsAtFirstCandidate(t *testing.T) {
	// GIVEN a valid range far larger than any candidate list could hold
	sizes := SizeRange{Min: 1, Max: 1e19, Step: 1}
	require.NoError(t, sizes.Validate())

	// WHEN searching with a zero threshold
	result, err := Optimize(10, 100, 0, DefaultTarget(), sizes, rand.New(rand.NewSource(1)))

	// THEN the smallest size is returned after one evaluation
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, 1.0, result.Size)
	assert.Equal(t, 1, result.Evaluated)
}

func TestCoverageCurve_RejectsTooManyCandidates(t *testing.T) {
	for _, sizes := range []SizeRange{
		{Min: 1, Max: 1e19, Step: 1},
		{Min: 60, Max: 200, Step: 1e-9},
	} {
		curve, err := CoverageCurve(8, 100, DefaultTarget(), sizes, rand.New(rand.NewSource(1)))
		assert.Nil(t, curve)
		assert.True(t, errors.Is(err, ErrInvalidArgument), "range %+v: got %v", sizes, err)
	}
}

func TestCoverageCurve_NonDecreasingForNestedSquares(t *testing.T) {
	// Centered squares are nested, so on one fixed sample coverage cannot drop.
	curve, err := CoverageCurve(3, 1500, DefaultTarget(), DefaultSizeRange, rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	require.Len(t, curve, 71)
	for i := 1; i < len(curve); i++ {
		assert.GreaterOrEqual(t, curve[i].CoveragePct, curve[i-1].CoveragePct,
			"coverage dropped between %v and %v", curve[i-1].Size, curve[i].Size)
	}
}
