package scoring

import (
	"math"
	"testing"
)

func TestScoreCostEffectiveness(t *testing.T) {
	b := DefaultBaselines()

	tests := []struct {
		name  string
		cost  float64
		fixed *float64
		want  float64
	}{
		{"free", 0, nil, 1.0},
		{"cheap", 20, nil, 0.9},
		{"mid", 100, nil, 0.5},
		{"at baseline", 200, nil, 0.0},
		{"above baseline clamps", 250, nil, 0.0},
		{"fixed cost included", 20, float64Ptr(30), 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cand := &Candidate{MethodType: "broadcast", CostPerAcre: tt.cost}
			ctx := &Context{}
			if tt.fixed != nil {
				ctx.Costs = &CostInputs{FixedPerAcre: tt.fixed}
			}
			d, err := Score(CostEffectiveness, cand, ctx, b)
			if err != nil {
				t.Fatalf("Score failed: %v", err)
			}
			if math.Abs(d.Score-tt.want) > 0.001 {
				t.Errorf("got %f, want %f", d.Score, tt.want)
			}
		})
	}

	t.Run("budget note", func(t *testing.T) {
		cand := &Candidate{MethodType: "broadcast", CostPerAcre: 50}
		ctx := &Context{Costs: &CostInputs{BudgetPerAcre: float64Ptr(30)}}
		d, _ := Score(CostEffectiveness, cand, ctx, b)
		if len(d.Notes) == 0 {
			t.Error("expected budget note")
		}
	})
}

func TestScoreApplicationEfficiency(t *testing.T) {
	b := DefaultBaselines()

	d, err := Score(ApplicationEfficiency, &Candidate{EfficiencyScore: 0.7}, &Context{}, b)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if d.Score != 0.7 {
		t.Errorf("expected passthrough 0.7, got %f", d.Score)
	}
	if d.Confidence != 0.9 {
		t.Errorf("expected confidence 0.9, got %f", d.Confidence)
	}

	d, _ = Score(ApplicationEfficiency, &Candidate{}, &Context{}, b)
	if d.Score != 0 || d.Confidence != 0.6 {
		t.Errorf("expected 0 score / 0.6 confidence without efficiency, got %f / %f", d.Score, d.Confidence)
	}
}

func TestScoreEnvironmentalImpact(t *testing.T) {
	b := DefaultBaselines()

	t.Run("tag mapping", func(t *testing.T) {
		for tag, want := range map[string]float64{"low": 0.9, "moderate": 0.6, "high": 0.3} {
			d, _ := Score(EnvironmentalImpact, &Candidate{EnvironmentalImpact: tag}, &Context{}, b)
			if d.Score != want {
				t.Errorf("%s: got %f, want %f", tag, d.Score, want)
			}
		}
	})

	t.Run("slope penalty", func(t *testing.T) {
		cand := &Candidate{EnvironmentalImpact: "low"}
		ctx := &Context{Field: &FieldConditions{SlopePercent: float64Ptr(15)}}
		d, _ := Score(EnvironmentalImpact, cand, ctx, b)
		// 0.9 - (15-5)*0.02 = 0.7
		if math.Abs(d.Score-0.7) > 0.001 {
			t.Errorf("got %f, want 0.7", d.Score)
		}
		if len(d.Notes) == 0 {
			t.Error("expected runoff penalty note")
		}
	})

	t.Run("flat field no penalty", func(t *testing.T) {
		cand := &Candidate{EnvironmentalImpact: "low"}
		ctx := &Context{Field: &FieldConditions{SlopePercent: float64Ptr(3)}}
		d, _ := Score(EnvironmentalImpact, cand, ctx, b)
		if d.Score != 0.9 {
			t.Errorf("got %f, want 0.9", d.Score)
		}
	})

	t.Run("extreme slope floors at zero", func(t *testing.T) {
		cand := &Candidate{EnvironmentalImpact: "high"}
		ctx := &Context{Field: &FieldConditions{SlopePercent: float64Ptr(60)}}
		d, _ := Score(EnvironmentalImpact, cand, ctx, b)
		if d.Score != 0 {
			t.Errorf("got %f, want 0", d.Score)
		}
	})

	t.Run("unknown tag neutral default", func(t *testing.T) {
		d, _ := Score(EnvironmentalImpact, &Candidate{}, &Context{}, b)
		if d.Score != 0.5 || d.Confidence != 0.6 {
			t.Errorf("got %f / %f, want 0.5 / 0.6", d.Score, d.Confidence)
		}
	})
}

func TestScoreEquipmentNeeds(t *testing.T) {
	b := DefaultBaselines()

	tests := []struct {
		name       string
		methodType string
		equipment  []string
		want       float64
	}{
		{"compatible", "broadcast", []string{"spreader"}, 1.0},
		{"case insensitive", "broadcast", []string{"Spreader"}, 1.0},
		{"incompatible", "fertigation", []string{"spreader"}, 0.0},
		{"empty list", "broadcast", nil, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cand := &Candidate{MethodType: tt.methodType}
			d, err := Score(EquipmentNeeds, cand, &Context{Equipment: tt.equipment}, b)
			if err != nil {
				t.Fatalf("Score failed: %v", err)
			}
			if d.Score != tt.want {
				t.Errorf("got %f, want %f", d.Score, tt.want)
			}
		})
	}
}

func TestScoreFieldSuitability(t *testing.T) {
	b := DefaultBaselines()

	tests := []struct {
		name       string
		methodType string
		size       float64
		want       float64
	}{
		{"broadcast large field", "broadcast", 150, 0.95},
		{"broadcast small field", "broadcast", 10, 0.5},
		{"broadcast mid field", "broadcast", 50, 0.75},
		{"precision small field", "banded", 10, 0.9},
		{"precision large field", "variable_rate", 150, 0.55},
		{"neutral method", "foliar", 50, 0.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cand := &Candidate{MethodType: tt.methodType}
			ctx := &Context{Field: &FieldConditions{SizeAcres: float64Ptr(tt.size)}}
			d, _ := Score(FieldSuitability, cand, ctx, b)
			if d.Score != tt.want {
				t.Errorf("got %f, want %f", d.Score, tt.want)
			}
		})
	}

	t.Run("unknown size defaults", func(t *testing.T) {
		d, _ := Score(FieldSuitability, &Candidate{MethodType: "broadcast"}, &Context{}, b)
		if d.Score != 0.5 || d.Confidence != 0.6 {
			t.Errorf("got %f / %f, want 0.5 / 0.6", d.Score, d.Confidence)
		}
	})
}

func TestScoreNutrientUseEfficiency(t *testing.T) {
	b := DefaultBaselines()

	t.Run("demanding crop punishes coarse method", func(t *testing.T) {
		ctx := &Context{Crop: &CropRequirements{NutrientDemand: float64Ptr(1.0)}}
		coarse, _ := Score(NutrientUseEfficiency, &Candidate{MethodType: "broadcast"}, ctx, b)
		precise, _ := Score(NutrientUseEfficiency, &Candidate{MethodType: "variable_rate"}, ctx, b)
		if coarse.Score >= precise.Score {
			t.Errorf("broadcast %f should score below variable_rate %f under high demand", coarse.Score, precise.Score)
		}
	})

	t.Run("low demand forgives everything", func(t *testing.T) {
		ctx := &Context{Crop: &CropRequirements{NutrientDemand: float64Ptr(0.0)}}
		d, _ := Score(NutrientUseEfficiency, &Candidate{MethodType: "broadcast"}, ctx, b)
		if d.Score != 1.0 {
			t.Errorf("got %f, want 1.0", d.Score)
		}
	})

	t.Run("default demand", func(t *testing.T) {
		d, _ := Score(NutrientUseEfficiency, &Candidate{MethodType: "banded"}, &Context{}, b)
		// 1 - 0.5*(1-0.7) = 0.85
		if math.Abs(d.Score-0.85) > 0.001 {
			t.Errorf("got %f, want 0.85", d.Score)
		}
		if d.Confidence != 0.6 {
			t.Errorf("expected defaulted confidence, got %f", d.Confidence)
		}
	})
}

func TestScoreLookupCriteria(t *testing.T) {
	b := DefaultBaselines()

	tests := []struct {
		criterion  Criterion
		methodType string
		want       float64
	}{
		{TimingFlexibility, "fertigation", 0.9},
		{TimingFlexibility, "sidedress", 0.3},
		{SkillRequirements, "broadcast", 0.9},
		{SkillRequirements, "variable_rate", 0.3},
		{WeatherDependency, "foliar", 0.2},
		{WeatherDependency, "fertigation", 0.8},
	}
	for _, tt := range tests {
		t.Run(string(tt.criterion)+"/"+tt.methodType, func(t *testing.T) {
			d, err := Score(tt.criterion, &Candidate{MethodType: tt.methodType}, &Context{}, b)
			if err != nil {
				t.Fatalf("Score failed: %v", err)
			}
			if d.Score != tt.want {
				t.Errorf("got %f, want %f", d.Score, tt.want)
			}
		})
	}
}

func TestScoreMalformedCandidate(t *testing.T) {
	b := DefaultBaselines()
	for _, c := range []Criterion{EquipmentNeeds, FieldSuitability, NutrientUseEfficiency, TimingFlexibility, SkillRequirements, WeatherDependency} {
		t.Run(string(c), func(t *testing.T) {
			d, err := Score(c, &Candidate{}, &Context{Equipment: []string{"spreader"}}, b)
			if err != nil {
				t.Fatalf("malformed candidate must degrade, not fail: %v", err)
			}
			if d.Score != 0 {
				t.Errorf("expected zero score, got %f", d.Score)
			}
			if len(d.Notes) == 0 {
				t.Error("expected explanatory note")
			}
		})
	}
}

func TestScoreRangeAcrossCatalogTypes(t *testing.T) {
	b := DefaultBaselines()
	ctx := &Context{
		Field:     &FieldConditions{SizeAcres: float64Ptr(80), SlopePercent: float64Ptr(8)},
		Crop:      &CropRequirements{NutrientDemand: float64Ptr(0.9)},
		Equipment: []string{"spreader", "sprayer", "irrigation_system"},
		Costs:     &CostInputs{FixedPerAcre: float64Ptr(10)},
	}
	for _, mt := range KnownMethodTypes() {
		cand := &Candidate{
			MethodType:          mt,
			EfficiencyScore:     0.8,
			CostPerAcre:         25,
			EnvironmentalImpact: "moderate",
			LaborRequirement:    "moderate",
		}
		for _, c := range AllCriteria() {
			d, err := Score(c, cand, ctx, b)
			if err != nil {
				t.Fatalf("%s/%s: %v", mt, c, err)
			}
			if d.Score < 0 || d.Score > 1 {
				t.Errorf("%s/%s: score %f out of range", mt, c, d.Score)
			}
		}
	}
}

func TestScoreUnknownCriterion(t *testing.T) {
	_, err := Score("bogus", &Candidate{}, &Context{}, DefaultBaselines())
	if err == nil {
		t.Error("expected error for bogus criterion")
	}
}
