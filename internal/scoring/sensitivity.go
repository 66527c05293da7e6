package scoring

// weightDeltas are the fixed perturbations tried per criterion.
var weightDeltas = [3]float64{-0.10, 0, 0.10}

// AnalyzeSensitivity perturbs each criterion's weight by the fixed
// deltas, renormalizing the remaining weights proportionally, and
// recomputes the overall winner under each perturbation. A criterion
// is sensitive when any perturbation flips the winner. The input maps
// are never mutated.
func AnalyzeSensitivity(results map[Criterion]ComparisonResult, weights Weights) map[Criterion]SensitivityResult {
	baseA, baseB := weightedTotals(results, weights)
	baseWinner := overallWinner(baseA, baseB)

	out := make(map[Criterion]SensitivityResult, len(results))
	for c := range results {
		original := weights[c]
		res := SensitivityResult{OriginalWeight: original}

		for i, delta := range weightDeltas {
			perturbed := perturbWeights(results, weights, c, original+delta)
			res.Variations[i] = perturbed[c]
			a, b := weightedTotals(results, perturbed)
			if overallWinner(a, b) != baseWinner {
				res.Sensitive = true
			}
		}
		out[c] = res
	}
	return out
}

// perturbWeights sets criterion c to the target weight (floored at 0)
// and scales the remaining scored criteria so the total stays 1.0.
func perturbWeights(results map[Criterion]ComparisonResult, weights Weights, c Criterion, target float64) Weights {
	if target < 0 {
		target = 0
	}
	if target > 1 {
		target = 1
	}

	var restSum float64
	for other := range results {
		if other != c {
			restSum += weights[other]
		}
	}

	out := make(Weights, len(results))
	out[c] = target
	if restSum <= 0 {
		// Single-criterion comparison: the perturbed criterion carries
		// everything.
		out[c] = 1.0
		return out
	}
	scale := (1.0 - target) / restSum
	for other := range results {
		if other != c {
			out[other] = weights[other] * scale
		}
	}
	return out
}
