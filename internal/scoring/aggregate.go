package scoring

// Aggregate combines per-criterion scores into one overall score per
// candidate via the weight-dotted sum. It fails with ErrInvalidWeights
// when the map is malformed or misses a scored criterion. Given
// in-range inputs and valid weights, both outputs stay in [0,1].
func Aggregate(results map[Criterion]ComparisonResult, weights Weights) (overallA, overallB float64, err error) {
	if err := weights.Validate(); err != nil {
		return 0, 0, err
	}
	criteria := make([]Criterion, 0, len(results))
	for c := range results {
		criteria = append(criteria, c)
	}
	if err := weights.Covers(criteria); err != nil {
		return 0, 0, err
	}

	for c, r := range results {
		w := weights[c]
		overallA += w * r.ScoreA
		overallB += w * r.ScoreB
	}
	return clamp(overallA, 0, 1), clamp(overallB, 0, 1), nil
}

// weightedTotals recomputes overall scores under an arbitrary weight
// map without validation. Sensitivity analysis uses it with perturbed
// maps whose sums are intentionally renormalized.
func weightedTotals(results map[Criterion]ComparisonResult, weights Weights) (float64, float64) {
	var a, b float64
	for c, r := range results {
		w := weights[c]
		a += w * r.ScoreA
		b += w * r.ScoreB
	}
	return a, b
}
