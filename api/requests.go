package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/dart-sim/dart-sim/sim"
)

var validate = validator.New()

// errBadRequest wraps malformed or invalid request bodies.
var errBadRequest = errors.New("bad request")

// TargetRequest overrides the default target geometry.
type TargetRequest struct {
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
	Radius  float64 `json:"radius" validate:"gt=0"`
}

// SimulateRequest is the payload for POST /api/simulate.
type SimulateRequest struct {
	Seed         *int64         `json:"seed,omitempty"`
	Shots        int            `json:"shots" validate:"required,gt=0,lte=100000"`
	Skills       []float64      `json:"skills" validate:"required,min=1,dive,gte=0,lte=10"`
	BoardWidth   float64        `json:"board_width" validate:"gt=0"`
	BoardHeight  float64        `json:"board_height" validate:"gt=0"`
	Target       *TargetRequest `json:"target,omitempty" validate:"omitempty"`
	IncludeShots bool           `json:"include_shots"`
}

// SizeRangeRequest is an inclusive sweep of square sizes.
type SizeRangeRequest struct {
	Min  float64 `json:"min" validate:"gt=0"`
	Max  float64 `json:"max" validate:"gtefield=Min,lte=1000"`
	Step float64 `json:"step" validate:"gt=0"`
}

// OptimizeRequest is the payload for POST /api/optimize.
type OptimizeRequest struct {
	Seed         *int64            `json:"seed,omitempty"`
	Shots        int               `json:"shots" validate:"required,gt=0,lte=100000"`
	Skills       []float64         `json:"skills" validate:"required,min=1,dive,gte=0,lte=10"`
	ThresholdPct *float64          `json:"threshold_pct,omitempty" validate:"omitempty,gte=0,lte=100"`
	SizeRange    *SizeRangeRequest `json:"size_range,omitempty" validate:"omitempty"`
	Target       *TargetRequest    `json:"target,omitempty" validate:"omitempty"`
}

func (r *TargetRequest) target() sim.Target {
	if r == nil {
		return sim.DefaultTarget()
	}
	return sim.Target{Center: sim.Point2D{X: r.CenterX, Y: r.CenterY}, Radius: r.Radius}
}

func (r *SizeRangeRequest) sizeRange() sim.SizeRange {
	if r == nil {
		return sim.DefaultSizeRange
	}
	return sim.SizeRange{Min: r.Min, Max: r.Max, Step: r.Step}
}

// decodeAndValidate decodes the JSON body into v and validates its struct tags.
// Unknown fields are rejected.
func decodeAndValidate(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}
