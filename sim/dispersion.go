package sim

import "fmt"

// Skill anchors for the dispersion model. Skill is rated on [MinSkill, MaxSkill];
// sigma is the per-axis standard deviation of the throw, in centimeters.
const (
	MinSkill        = 0.0
	MaxSkill        = 10.0
	SigmaAtMinSkill = 80.0
	SigmaAtMaxSkill = 8.0
)

// Dispersion maps a skill level to the sampler's standard deviation by linear
// interpolation between (MinSkill, SigmaAtMinSkill) and (MaxSkill, SigmaAtMaxSkill).
// Skills outside the range are clamped to the nearest anchor. NaN propagates.
func Dispersion(skill float64) float64 {
	switch {
	case skill <= MinSkill:
		return SigmaAtMinSkill
	case skill >= MaxSkill:
		return SigmaAtMaxSkill
	}
	frac := (skill - MinSkill) / (MaxSkill - MinSkill)
	return SigmaAtMinSkill + frac*(SigmaAtMaxSkill-SigmaAtMinSkill)
}

// AverageSkill collapses several players' ratings into the single skill value
// the simulation consumes.
func AverageSkill(skills ...float64) (float64, error) {
	if len(skills) == 0 {
		return 0, fmt.Errorf("%w: at least one player skill required", ErrInvalidArgument)
	}
	sum := 0.0
	for i, s := range skills {
		if err := requireFinite(fmt.Sprintf("skill[%d]", i), s); err != nil {
			return 0, err
		}
		sum += s
	}
	return sum / float64(len(skills)), nil
}
