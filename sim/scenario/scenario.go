// Package scenario loads dart-board simulation scenarios from YAML.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dart-sim/dart-sim/sim"
)

// Scenario is the top-level simulation configuration.
// Loaded from YAML via Load(path).
type Scenario struct {
	Version  string        `yaml:"version"`
	Seed     int64         `yaml:"seed"`
	Shots    int           `yaml:"shots"`
	Players  []PlayerSpec  `yaml:"players"`
	Target   *TargetSpec   `yaml:"target,omitempty"`
	Board    BoardSpec     `yaml:"board"`
	Optimize *OptimizeSpec `yaml:"optimize,omitempty"`
}

// PlayerSpec is one thrower; skills of all players are averaged.
type PlayerSpec struct {
	Name  string  `yaml:"name"`
	Skill float64 `yaml:"skill"`
}

// TargetSpec overrides the default target geometry.
type TargetSpec struct {
	Center sim.Point2D `yaml:"center"`
	Radius float64     `yaml:"radius"`
}

// BoardSpec is the backing board for a single simulation.
type BoardSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// OptimizeSpec configures the square-board search.
type OptimizeSpec struct {
	ThresholdPct float64        `yaml:"threshold_pct"`
	SizeRange    *sim.SizeRange `yaml:"size_range,omitempty"`
}

// Defaults matching the interactive simulator.
const (
	DefaultShots        = 1000
	DefaultBoardWidth   = 114.0
	DefaultBoardHeight  = 144.0
	DefaultSkill        = 8.0
	DefaultThresholdPct = 98.0
)

// Default returns the scenario used when no file is given: three players of
// skill 8, 1000 shots and a 114x144 cm board.
func Default() *Scenario {
	return &Scenario{
		Version: "1",
		Seed:    42,
		Shots:   DefaultShots,
		Players: []PlayerSpec{
			{Name: "player 1", Skill: DefaultSkill},
			{Name: "player 2", Skill: DefaultSkill},
			{Name: "player 3", Skill: DefaultSkill},
		},
		Board:    BoardSpec{Width: DefaultBoardWidth, Height: DefaultBoardHeight},
		Optimize: &OptimizeSpec{ThresholdPct: DefaultThresholdPct},
	}
}

// Load reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML scenario. Fields left out of the document keep the
// values from Default(); an empty document yields Default() itself.
func Parse(data []byte) (*Scenario, error) {
	s := Default()
	s.Players = nil
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if len(s.Players) == 0 {
		s.Players = Default().Players
	}
	return s, nil
}

// Validate checks that all fields in the scenario are valid.
func (s *Scenario) Validate() error {
	if s.Version != "" && s.Version != "1" {
		return fmt.Errorf("unsupported scenario version %q; valid: 1", s.Version)
	}
	if s.Shots <= 0 {
		return fmt.Errorf("shots must be positive, got %d", s.Shots)
	}
	if len(s.Players) == 0 {
		return fmt.Errorf("at least one player required")
	}
	for i, p := range s.Players {
		if err := validateFinite(fmt.Sprintf("players[%d].skill", i), p.Skill); err != nil {
			return err
		}
		if p.Skill < sim.MinSkill || p.Skill > sim.MaxSkill {
			return fmt.Errorf("players[%d].skill must be in [%g, %g], got %f", i, sim.MinSkill, sim.MaxSkill, p.Skill)
		}
	}
	if s.Target != nil {
		if _, err := sim.NewTarget(s.Target.Center, s.Target.Radius); err != nil {
			return fmt.Errorf("target: %w", err)
		}
	}
	if err := validateFinitePositive("board.width", s.Board.Width); err != nil {
		return err
	}
	if err := validateFinitePositive("board.height", s.Board.Height); err != nil {
		return err
	}
	if s.Optimize != nil {
		if err := validateFinite("optimize.threshold_pct", s.Optimize.ThresholdPct); err != nil {
			return err
		}
		if s.Optimize.ThresholdPct < 0 || s.Optimize.ThresholdPct > 100 {
			return fmt.Errorf("optimize.threshold_pct must be in [0, 100], got %f", s.Optimize.ThresholdPct)
		}
		if s.Optimize.SizeRange != nil {
			if err := s.Optimize.SizeRange.ValidateCount(sim.MaxSizeCandidates); err != nil {
				return fmt.Errorf("optimize.size_range: %w", err)
			}
		}
	}
	return nil
}

// Skill returns the averaged skill of all players.
func (s *Scenario) Skill() (float64, error) {
	skills := make([]float64, len(s.Players))
	for i, p := range s.Players {
		skills[i] = p.Skill
	}
	return sim.AverageSkill(skills...)
}

// TargetOrDefault returns the configured target, or sim.DefaultTarget().
func (s *Scenario) TargetOrDefault() sim.Target {
	if s.Target == nil {
		return sim.DefaultTarget()
	}
	return sim.Target{Center: s.Target.Center, Radius: s.Target.Radius}
}

// SizeRangeOrDefault returns the configured sweep, or sim.DefaultSizeRange.
func (s *Scenario) SizeRangeOrDefault() sim.SizeRange {
	if s.Optimize == nil || s.Optimize.SizeRange == nil {
		return sim.DefaultSizeRange
	}
	return *s.Optimize.SizeRange
}

// ThresholdOrDefault returns the configured coverage threshold, or DefaultThresholdPct.
func (s *Scenario) ThresholdOrDefault() float64 {
	if s.Optimize == nil {
		return DefaultThresholdPct
	}
	return s.Optimize.ThresholdPct
}

func validateFinite(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	return nil
}

func validateFinitePositive(name string, val float64) error {
	if err := validateFinite(name, val); err != nil {
		return err
	}
	if val <= 0 {
		return fmt.Errorf("%s must be positive, got %f", name, val)
	}
	return nil
}
