package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dart-sim/dart-sim/sim"
	"github.com/dart-sim/dart-sim/sim/scenario"
	"github.com/dart-sim/dart-sim/sim/stats"
)

// SimulateResponse is the body of a successful POST /api/simulate.
type SimulateResponse struct {
	RunID  string                `json:"run_id"`
	Seed   int64                 `json:"seed"`
	Skill  float64               `json:"skill"`
	Result *sim.SimulationResult `json:"result"`
	Stats  stats.Summary         `json:"stats"`
}

// OptimizeResponse is the body of a successful POST /api/optimize.
type OptimizeResponse struct {
	RunID        string                  `json:"run_id"`
	Seed         int64                   `json:"seed"`
	Skill        float64                 `json:"skill"`
	ThresholdPct float64                 `json:"threshold_pct"`
	SizeRange    sim.SizeRange           `json:"size_range"`
	Result       *sim.OptimizationResult `json:"result"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	const endpoint = "simulate"
	var req SimulateRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.reject(w, r, endpoint, err)
		return
	}
	skill, err := sim.AverageSkill(req.Skills...)
	if err != nil {
		s.reject(w, r, endpoint, err)
		return
	}
	seed := s.seedFor(req.Seed)
	target := req.Target.target()

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))
	result, err := sim.Run(req.Shots, skill, req.BoardWidth, req.BoardHeight, target, rng.ForSubsystem(sim.SubsystemShots))
	if err != nil {
		s.reject(w, r, endpoint, err)
		return
	}
	s.metrics.recordSimulation(result.TotalShots, result.Coverage())

	resp := SimulateResponse{
		RunID:  uuid.NewString(),
		Seed:   seed,
		Skill:  skill,
		Result: result,
		Stats:  stats.Summarize(result, target.Center),
	}
	if !req.IncludeShots {
		resp.Result.Shots = nil
	}
	logrus.WithFields(logrus.Fields{"run_id": resp.RunID, "seed": seed}).
		Infof("simulated %d shots at skill %.2f: coverage %.1f%%", result.TotalShots, skill, result.Coverage())
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	const endpoint = "optimize"
	var req OptimizeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.reject(w, r, endpoint, err)
		return
	}
	skill, err := sim.AverageSkill(req.Skills...)
	if err != nil {
		s.reject(w, r, endpoint, err)
		return
	}
	threshold := scenario.DefaultThresholdPct
	if req.ThresholdPct != nil {
		threshold = *req.ThresholdPct
	}
	sizes := req.SizeRange.sizeRange()
	if err := sizes.ValidateCount(sim.MaxSizeCandidates); err != nil {
		s.reject(w, r, endpoint, err)
		return
	}
	seed := s.seedFor(req.Seed)

	start := time.Now()
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))
	result, err := sim.Optimize(skill, req.Shots, threshold, req.Target.target(), sizes, rng.ForSubsystem(sim.SubsystemOptimizer))
	if err != nil {
		s.reject(w, r, endpoint, err)
		return
	}
	s.metrics.recordOptimization(req.Shots, result.Found, time.Since(start).Seconds())

	resp := OptimizeResponse{
		RunID:        uuid.NewString(),
		Seed:         seed,
		Skill:        skill,
		ThresholdPct: threshold,
		SizeRange:    sizes,
		Result:       result,
	}
	logrus.WithFields(logrus.Fields{"run_id": resp.RunID, "seed": seed}).
		Infof("optimized board at skill %.2f: found=%v size=%g", skill, result.Found, result.Size)
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) seedFor(requested *int64) int64 {
	if requested != nil {
		return *requested
	}
	return s.seedFn()
}

// reject answers 400 for bad input and 500 for anything else.
func (s *Server) reject(w http.ResponseWriter, r *http.Request, endpoint string, err error) {
	s.metrics.recordError(endpoint)
	if isClientError(err) {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	logrus.Errorf("%s failed: %v", endpoint, err)
	respondError(w, r, http.StatusInternalServerError, "internal error")
}

// isClientError reports whether err stems from the request itself.
func isClientError(err error) bool {
	return errors.Is(err, errBadRequest) || errors.Is(err, sim.ErrInvalidArgument)
}
