package scoring

// Candidate is one application method under comparison. Candidates are
// constructed fresh per comparison and never mutated by the engine.
type Candidate struct {
	Name                string   `json:"name"`
	MethodType          string   `json:"method_type"`
	EfficiencyScore     float64  `json:"efficiency_score"`
	CostPerAcre         float64  `json:"cost_per_acre"`
	EnvironmentalImpact string   `json:"environmental_impact,omitempty"` // low, moderate, high
	LaborRequirement    string   `json:"labor_requirement,omitempty"`    // low, moderate, high
	Pros                []string `json:"pros,omitempty"`
	Cons                []string `json:"cons,omitempty"`
}

// FieldConditions describes the field the application will run on.
// Nil pointers mean the caller does not know; scorers fall back to
// documented defaults rather than failing.
type FieldConditions struct {
	SizeAcres    *float64 `json:"size_acres,omitempty"`
	SlopePercent *float64 `json:"slope_percent,omitempty"`
	SoilType     string   `json:"soil_type,omitempty"`
	Drainage     string   `json:"drainage,omitempty"`
}

// CropRequirements describes the crop being fertilized.
type CropRequirements struct {
	CropType       string   `json:"crop_type,omitempty"`
	GrowthStage    string   `json:"growth_stage,omitempty"`
	NutrientDemand *float64 `json:"nutrient_demand,omitempty"` // 0.0–1.0
}

// CostInputs carries optional per-acre cost context.
type CostInputs struct {
	FixedPerAcre  *float64 `json:"fixed_per_acre,omitempty"`
	BudgetPerAcre *float64 `json:"budget_per_acre,omitempty"`
}

// Context bundles all situational inputs for one comparison. It is
// read-only within the engine.
type Context struct {
	Field     *FieldConditions  `json:"field,omitempty"`
	Crop      *CropRequirements `json:"crop,omitempty"`
	Equipment []string          `json:"equipment,omitempty"`
	Costs     *CostInputs       `json:"costs,omitempty"`
}

// ComparisonResult is the outcome of scoring one criterion for a
// candidate pair.
type ComparisonResult struct {
	Criterion  Criterion `json:"criterion"`
	ScoreA     float64   `json:"method_a_score"`
	ScoreB     float64   `json:"method_b_score"`
	Winner     string    `json:"winner"` // method_a, method_b, tie
	Difference float64   `json:"difference"`
	Confidence float64   `json:"confidence"`
	Notes      []string  `json:"notes,omitempty"`
}

// SensitivityResult records how one criterion's weight perturbations
// affected the overall winner.
type SensitivityResult struct {
	OriginalWeight float64    `json:"original_weight"`
	Variations     [3]float64 `json:"variations"`
	Sensitive      bool       `json:"sensitive"`
}

// MultiCriteriaAnalysis is the aggregate output of one comparison.
// The method_a_scores, method_b_scores, winner_by_criteria,
// overall_winner, recommendation and sensitivity_analysis keys are a
// fixed contract with existing callers.
type MultiCriteriaAnalysis struct {
	MethodAScores          map[Criterion]float64           `json:"method_a_scores"`
	MethodBScores          map[Criterion]float64           `json:"method_b_scores"`
	WinnerByCriteria       map[Criterion]string            `json:"winner_by_criteria"`
	Confidence             map[Criterion]float64           `json:"confidence_by_criteria"`
	Results                map[Criterion]ComparisonResult  `json:"criteria_results"`
	OverallScores          map[string]float64              `json:"overall_scores"`
	OverallWinner          string                          `json:"overall_winner"`
	Recommendation         string                          `json:"recommendation"`
	RecommendationStrength float64                         `json:"recommendation_strength"`
	Sensitivity            map[Criterion]SensitivityResult `json:"sensitivity_analysis"`
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
