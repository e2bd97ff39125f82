package sim

// ClassifiedShot pairs a shot with the region it was assigned to.
type ClassifiedShot struct {
	Shot  Shot           `json:"shot"`
	Class Classification `json:"class"`
}

// SimulationResult aggregates one simulation run.
// Invariant: InTargetCount + OnBoardCount + MissedCount == TotalShots == len(Shots).
type SimulationResult struct {
	TotalShots    int              `json:"total_shots"`
	InTargetCount int              `json:"in_target_count"`
	OnBoardCount  int              `json:"on_board_count"`
	MissedCount   int              `json:"missed_count"`
	Sigma         float64          `json:"sigma"`
	Board         Board            `json:"board"`
	Shots         []ClassifiedShot `json:"shots,omitempty"`
}

// record counts one classified shot.
func (r *SimulationResult) record(shot Shot, class Classification) {
	switch class {
	case InTarget:
		r.InTargetCount++
	case OnBoard:
		r.OnBoardCount++
	default:
		r.MissedCount++
	}
	r.Shots = append(r.Shots, ClassifiedShot{Shot: shot, Class: class})
	r.TotalShots++
}

// Counts returns the per-classification tallies.
func (r *SimulationResult) Counts() map[Classification]int {
	return map[Classification]int{
		InTarget: r.InTargetCount,
		OnBoard:  r.OnBoardCount,
		Missed:   r.MissedCount,
	}
}

// Coverage returns the percentage of shots that hit the target or the board.
func (r *SimulationResult) Coverage() float64 {
	return percentOf(r.InTargetCount+r.OnBoardCount, r.TotalShots)
}

// InTargetPct returns the percentage of shots inside the target disc.
func (r *SimulationResult) InTargetPct() float64 { return percentOf(r.InTargetCount, r.TotalShots) }

// OnBoardPct returns the percentage of shots caught by the board outside the target.
func (r *SimulationResult) OnBoardPct() float64 { return percentOf(r.OnBoardCount, r.TotalShots) }

// MissedPct returns the percentage of shots that missed both target and board.
func (r *SimulationResult) MissedPct() float64 { return percentOf(r.MissedCount, r.TotalShots) }

func percentOf(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
