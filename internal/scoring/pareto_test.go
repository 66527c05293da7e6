package scoring

import "testing"

func TestComputeFrontier(t *testing.T) {
	points := []MethodPoint{
		{Method: "variable_rate", Efficiency: 0.9, CostPerAcre: 30, Environment: 0.9, Labor: 0.6},
		{Method: "broadcast", Efficiency: 0.55, CostPerAcre: 12, Environment: 0.6, Labor: 0.9},
		// Dominated by variable_rate: worse or equal everywhere.
		{Method: "worse_vrt", Efficiency: 0.8, CostPerAcre: 32, Environment: 0.8, Labor: 0.5},
	}

	frontier := ComputeFrontier(points)
	if len(frontier) != 2 {
		t.Fatalf("expected 2 frontier members, got %d", len(frontier))
	}
	names := map[string]bool{}
	for _, p := range frontier {
		names[p.Method] = true
	}
	if !names["variable_rate"] || !names["broadcast"] {
		t.Errorf("expected variable_rate and broadcast on frontier, got %v", names)
	}
	if names["worse_vrt"] {
		t.Error("worse_vrt should be dominated")
	}
}

func TestComputeFrontierDegenerate(t *testing.T) {
	if got := ComputeFrontier(nil); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
	single := []MethodPoint{{Method: "only"}}
	if got := ComputeFrontier(single); len(got) != 1 {
		t.Errorf("expected single point back, got %d", len(got))
	}
}

func TestComputeFrontierIdenticalPointsSurvive(t *testing.T) {
	points := []MethodPoint{
		{Method: "x", Efficiency: 0.5, CostPerAcre: 10, Environment: 0.5, Labor: 0.5},
		{Method: "y", Efficiency: 0.5, CostPerAcre: 10, Environment: 0.5, Labor: 0.5},
	}
	if got := ComputeFrontier(points); len(got) != 2 {
		t.Errorf("identical points do not dominate each other, expected both, got %d", len(got))
	}
}
