package scoring

import "fmt"

// Criterion identifies one fixed dimension of comparison. The ten
// identifiers below are part of the wire contract and must not change.
type Criterion string

const (
	CostEffectiveness     Criterion = "cost_effectiveness"
	ApplicationEfficiency Criterion = "application_efficiency"
	EnvironmentalImpact   Criterion = "environmental_impact"
	LaborRequirements     Criterion = "labor_requirements"
	EquipmentNeeds        Criterion = "equipment_needs"
	FieldSuitability      Criterion = "field_suitability"
	NutrientUseEfficiency Criterion = "nutrient_use_efficiency"
	TimingFlexibility     Criterion = "timing_flexibility"
	SkillRequirements     Criterion = "skill_requirements"
	WeatherDependency     Criterion = "weather_dependency"
)

// AllCriteria returns the full criterion set in its canonical order.
// Default comparisons score every entry.
func AllCriteria() []Criterion {
	return []Criterion{
		CostEffectiveness,
		ApplicationEfficiency,
		EnvironmentalImpact,
		LaborRequirements,
		EquipmentNeeds,
		FieldSuitability,
		NutrientUseEfficiency,
		TimingFlexibility,
		SkillRequirements,
		WeatherDependency,
	}
}

// ParseCriterion validates a raw criterion identifier.
func ParseCriterion(s string) (Criterion, error) {
	c := Criterion(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCriterion, s)
	}
	return c, nil
}

// Valid reports whether c is one of the ten known criteria.
func (c Criterion) Valid() bool {
	switch c {
	case CostEffectiveness, ApplicationEfficiency, EnvironmentalImpact,
		LaborRequirements, EquipmentNeeds, FieldSuitability,
		NutrientUseEfficiency, TimingFlexibility, SkillRequirements,
		WeatherDependency:
		return true
	}
	return false
}
