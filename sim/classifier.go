package sim

import (
	"fmt"
	"math"
)

// Classification is the region a shot landed in.
type Classification int

const (
	InTarget Classification = iota
	OnBoard
	Missed
)

// AllClassifications lists every classification in decision order.
var AllClassifications = []Classification{InTarget, OnBoard, Missed}

func (c Classification) String() string {
	switch c {
	case InTarget:
		return "in_target"
	case OnBoard:
		return "on_board"
	case Missed:
		return "missed"
	default:
		return "unknown"
	}
}

// MarshalText lets classifications appear by name in JSON and CSV output.
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a name produced by MarshalText.
func (c *Classification) UnmarshalText(text []byte) error {
	for _, candidate := range AllClassifications {
		if candidate.String() == string(text) {
			*c = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown classification %q", text)
}

// Classify assigns a shot to exactly one region. The target is checked first
// because it overlaps the board. All boundaries are inclusive.
func Classify(shot Shot, target Target, board Board) Classification {
	if math.Hypot(shot.X-target.Center.X, shot.Y-target.Center.Y) <= target.Radius {
		return InTarget
	}
	if board.Contains(shot.Point()) {
		return OnBoard
	}
	return Missed
}
