package scoring

import (
	"fmt"
	"math"
)

// weightTolerance is how far a weight map's sum may drift from 1.0.
const weightTolerance = 0.01

// Weights maps each criterion to its relative importance. A valid map
// sums to 1.0 (±0.01) with no negative entries.
type Weights map[Criterion]float64

// DefaultWeights returns the contract-fixed weight preset. Callers
// depend on these exact values; do not retune without a version bump.
func DefaultWeights() Weights {
	return Weights{
		CostEffectiveness:     0.20,
		ApplicationEfficiency: 0.15,
		EnvironmentalImpact:   0.15,
		LaborRequirements:     0.10,
		EquipmentNeeds:        0.10,
		FieldSuitability:      0.10,
		NutrientUseEfficiency: 0.10,
		TimingFlexibility:     0.05,
		SkillRequirements:     0.03,
		WeatherDependency:     0.02,
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	var s float64
	for _, v := range w {
		s += v
	}
	return s
}

// Validate checks that weights sum to 1.0 within tolerance, carry no
// negative entries, and reference only known criteria.
func (w Weights) Validate() error {
	if len(w) == 0 {
		return fmt.Errorf("%w: no weights supplied", ErrInvalidWeights)
	}
	for c, v := range w {
		if !c.Valid() {
			return fmt.Errorf("%w: weight for %w %q", ErrInvalidWeights, ErrUnknownCriterion, string(c))
		}
		if v < 0 {
			return fmt.Errorf("%w: negative weight %.4f for %s", ErrInvalidWeights, v, c)
		}
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("%w: weights sum to %.4f, must sum to 1.0", ErrInvalidWeights, sum)
	}
	return nil
}

// Covers checks that every criterion in the given set has a weight.
func (w Weights) Covers(criteria []Criterion) error {
	for _, c := range criteria {
		if _, ok := w[c]; !ok {
			return fmt.Errorf("%w: no weight for criterion %s", ErrInvalidWeights, c)
		}
	}
	return nil
}

// Clone returns an independent copy. Sensitivity analysis perturbs
// copies, never the caller's map.
func (w Weights) Clone() Weights {
	out := make(Weights, len(w))
	for c, v := range w {
		out[c] = v
	}
	return out
}
