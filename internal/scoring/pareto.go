package scoring

// MethodPoint positions one application method on the four ranking
// dimensions. Efficiency, Environment and Labor are higher-is-better
// scores in [0,1]; CostPerAcre is lower-is-better dollars.
type MethodPoint struct {
	Method      string  `json:"method"`
	Efficiency  float64 `json:"efficiency"`
	CostPerAcre float64 `json:"cost_per_acre"`
	Environment float64 `json:"environment"`
	Labor       float64 `json:"labor"`
}

// ComputeFrontier returns the Pareto-optimal methods from the input
// set. A method is dominated if another is no worse on every dimension
// and strictly better on at least one. O(n^2) dominance check; the
// method catalog is small.
func ComputeFrontier(points []MethodPoint) []MethodPoint {
	if len(points) <= 1 {
		return points
	}

	var frontier []MethodPoint
	for i := range points {
		dominated := false
		for j := range points {
			if i != j && dominates(points[j], points[i]) {
				dominated = true
				break
			}
		}
		if !dominated {
			frontier = append(frontier, points[i])
		}
	}
	return frontier
}

// dominates returns true if a dominates b. Cost is the only
// lower-is-better dimension.
func dominates(a, b MethodPoint) bool {
	if a.Efficiency < b.Efficiency || a.Environment < b.Environment ||
		a.Labor < b.Labor || a.CostPerAcre > b.CostPerAcre {
		return false
	}
	return a.Efficiency > b.Efficiency || a.Environment > b.Environment ||
		a.Labor > b.Labor || a.CostPerAcre < b.CostPerAcre
}
