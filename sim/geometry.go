package sim

import (
	"fmt"
	"math"
)

// Default dartboard geometry in centimeters: a 22 cm scoring disc whose
// center hangs 173 cm above the floor.
const (
	DefaultTargetCenterX = 0.0
	DefaultTargetCenterY = 173.0
	DefaultTargetRadius  = 22.0
)

// Point2D is a position on the wall plane, in centimeters.
type Point2D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Target is the scoring disc.
type Target struct {
	Center Point2D `json:"center"`
	Radius float64 `json:"radius"`
}

// NewTarget returns a Target after checking that radius is positive and finite.
func NewTarget(center Point2D, radius float64) (Target, error) {
	if err := requireFinite("target center x", center.X); err != nil {
		return Target{}, err
	}
	if err := requireFinite("target center y", center.Y); err != nil {
		return Target{}, err
	}
	if err := requirePositive("target radius", radius); err != nil {
		return Target{}, err
	}
	return Target{Center: center, Radius: radius}, nil
}

// DefaultTarget returns the standard dartboard target.
func DefaultTarget() Target {
	return Target{
		Center: Point2D{X: DefaultTargetCenterX, Y: DefaultTargetCenterY},
		Radius: DefaultTargetRadius,
	}
}

// Board is the axis-aligned backing panel behind the target.
// Invariant: XMin < XMax and YMin < YMax.
type Board struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

// NewCenteredBoard builds a width x height board centered on the target.
func NewCenteredBoard(target Target, width, height float64) (Board, error) {
	if err := requirePositive("board width", width); err != nil {
		return Board{}, err
	}
	if err := requirePositive("board height", height); err != nil {
		return Board{}, err
	}
	return centeredBoard(target.Center, width, height), nil
}

// NewSquareBoard builds a size x size board centered on the target.
func NewSquareBoard(target Target, size float64) (Board, error) {
	return NewCenteredBoard(target, size, size)
}

// centeredBoard skips validation; callers have already checked the dimensions.
func centeredBoard(center Point2D, width, height float64) Board {
	return Board{
		XMin: center.X - width/2,
		XMax: center.X + width/2,
		YMin: center.Y - height/2,
		YMax: center.Y + height/2,
	}
}

// Width returns the horizontal extent of the board.
func (b Board) Width() float64 { return b.XMax - b.XMin }

// Height returns the vertical extent of the board.
func (b Board) Height() float64 { return b.YMax - b.YMin }

// Contains reports whether p lies on the board, edges included.
func (b Board) Contains(p Point2D) bool {
	return b.XMin <= p.X && p.X <= b.XMax && b.YMin <= p.Y && p.Y <= b.YMax
}

func requireFinite(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%w: %s must be a finite number, got %f", ErrInvalidArgument, name, val)
	}
	return nil
}

func requirePositive(name string, val float64) error {
	if err := requireFinite(name, val); err != nil {
		return err
	}
	if val <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %f", ErrInvalidArgument, name, val)
	}
	return nil
}
