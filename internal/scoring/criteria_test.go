package scoring

import (
	"errors"
	"testing"
)

func TestCriterionIdentifiers(t *testing.T) {
	// The ten identifiers are a wire contract.
	expected := []string{
		"cost_effectiveness", "application_efficiency", "environmental_impact",
		"labor_requirements", "equipment_needs", "field_suitability",
		"nutrient_use_efficiency", "timing_flexibility", "skill_requirements",
		"weather_dependency",
	}
	all := AllCriteria()
	if len(all) != len(expected) {
		t.Fatalf("expected %d criteria, got %d", len(expected), len(all))
	}
	for i, c := range all {
		if string(c) != expected[i] {
			t.Errorf("position %d: got %s, want %s", i, c, expected[i])
		}
	}
}

func TestParseCriterion(t *testing.T) {
	c, err := ParseCriterion("cost_effectiveness")
	if err != nil {
		t.Fatalf("ParseCriterion failed: %v", err)
	}
	if c != CostEffectiveness {
		t.Errorf("got %s", c)
	}

	_, err = ParseCriterion("not_a_real_criterion")
	if !errors.Is(err, ErrUnknownCriterion) {
		t.Errorf("expected ErrUnknownCriterion, got %v", err)
	}
}

func TestEveryCriterionHasScorer(t *testing.T) {
	for _, c := range AllCriteria() {
		if _, ok := scorers[c]; !ok {
			t.Errorf("no scorer registered for %s", c)
		}
	}
	if len(scorers) != len(AllCriteria()) {
		t.Errorf("scorer table has %d entries, expected %d", len(scorers), len(AllCriteria()))
	}
}
