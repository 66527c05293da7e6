package catalog

import (
	"github.com/Harrowfield-Ag/Advisor/internal/scoring"
)

// MethodProfile is the reference description of one application
// method. Profiles are process-wide read-only data loaded at init.
type MethodProfile struct {
	Type                string   `json:"type"`
	Name                string   `json:"name"`
	EfficiencyScore     float64  `json:"efficiency_score"`
	CostPerAcre         float64  `json:"cost_per_acre"`
	EnvironmentalImpact string   `json:"environmental_impact"`
	LaborRequirement    string   `json:"labor_requirement"`
	RequiredEquipment   []string `json:"required_equipment"`
	Pros                []string `json:"pros,omitempty"`
	Cons                []string `json:"cons,omitempty"`
}

var profiles = []MethodProfile{
	{
		Type:                "broadcast",
		Name:                "Broadcast spreading",
		EfficiencyScore:     0.55,
		CostPerAcre:         12.0,
		EnvironmentalImpact: "high",
		LaborRequirement:    "low",
		Pros:                []string{"fast coverage of large areas", "minimal operator training"},
		Cons:                []string{"uneven distribution", "volatilization and runoff losses"},
	},
	{
		Type:                "banded",
		Name:                "Band placement",
		EfficiencyScore:     0.75,
		CostPerAcre:         18.0,
		EnvironmentalImpact: "low",
		LaborRequirement:    "moderate",
		Pros:                []string{"nutrients concentrated near the root zone", "lower total rates"},
		Cons:                []string{"slower passes", "requires row alignment"},
	},
	{
		Type:                "foliar",
		Name:                "Foliar spray",
		EfficiencyScore:     0.70,
		CostPerAcre:         22.0,
		EnvironmentalImpact: "moderate",
		LaborRequirement:    "moderate",
		Pros:                []string{"rapid in-season correction", "works on compacted soils"},
		Cons:                []string{"narrow application windows", "leaf burn risk at high rates"},
	},
	{
		Type:                "fertigation",
		Name:                "Fertigation",
		EfficiencyScore:     0.85,
		CostPerAcre:         25.0,
		EnvironmentalImpact: "low",
		LaborRequirement:    "low",
		Pros:                []string{"split applications at no extra field passes", "precise timing"},
		Cons:                []string{"requires irrigation infrastructure", "uniformity depends on system design"},
	},
	{
		Type:                "variable_rate",
		Name:                "Variable-rate application",
		EfficiencyScore:     0.90,
		CostPerAcre:         30.0,
		EnvironmentalImpact: "low",
		LaborRequirement:    "moderate",
		Pros:                []string{"matches rates to zone-level need", "best nutrient use efficiency"},
		Cons:                []string{"highest equipment cost", "needs prescription maps and calibration"},
	},
	{
		Type:                "sidedress",
		Name:                "Sidedress injection",
		EfficiencyScore:     0.72,
		CostPerAcre:         16.0,
		EnvironmentalImpact: "moderate",
		LaborRequirement:    "high",
		Pros:                []string{"in-season nitrogen timing", "reduced early losses"},
		Cons:                []string{"tight growth-stage window", "slow field speed"},
	},
}

func init() {
	for i := range profiles {
		if traits, ok := scoring.TraitsFor(profiles[i].Type); ok {
			profiles[i].RequiredEquipment = traits.CompatibleEquipment
		}
	}
}

// Profiles returns all method profiles in catalog order.
func Profiles() []MethodProfile {
	out := make([]MethodProfile, len(profiles))
	copy(out, profiles)
	return out
}

// Lookup finds a profile by method type.
func Lookup(methodType string) (MethodProfile, bool) {
	for _, p := range profiles {
		if p.Type == methodType {
			return p, true
		}
	}
	return MethodProfile{}, false
}

// Candidate converts a profile into an engine candidate.
func (p MethodProfile) Candidate() *scoring.Candidate {
	return &scoring.Candidate{
		Name:                p.Type,
		MethodType:          p.Type,
		EfficiencyScore:     p.EfficiencyScore,
		CostPerAcre:         p.CostPerAcre,
		EnvironmentalImpact: p.EnvironmentalImpact,
		LaborRequirement:    p.LaborRequirement,
		Pros:                p.Pros,
		Cons:                p.Cons,
	}
}

// qualitative tag to ranking score, shared with the engine's tag maps.
var tagScores = map[string]float64{
	"low":      0.9,
	"moderate": 0.6,
	"high":     0.3,
}

// FrontierPoints positions every cataloged method for Pareto ranking.
func FrontierPoints() []scoring.MethodPoint {
	out := make([]scoring.MethodPoint, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, scoring.MethodPoint{
			Method:      p.Type,
			Efficiency:  p.EfficiencyScore,
			CostPerAcre: p.CostPerAcre,
			Environment: tagScores[p.EnvironmentalImpact],
			Labor:       tagScores[p.LaborRequirement],
		})
	}
	return out
}
