package scoring

// MethodTraits are the fixed per-method-type lookup values used by the
// context-independent criteria. Scores follow the engine convention:
// higher is better, so weather_dependency stores weather independence
// and skill_requirements stores accessibility to unskilled operators.
type MethodTraits struct {
	TimingFlexibility   float64
	WeatherIndependence float64
	SkillAccessibility  float64
	DeliveryPrecision   float64
	CompatibleEquipment []string
}

// traitTable is process-wide read-only configuration. Loaded once at
// init, never mutated.
var traitTable = map[string]MethodTraits{
	"broadcast": {
		TimingFlexibility:   0.8,
		WeatherIndependence: 0.4,
		SkillAccessibility:  0.9,
		DeliveryPrecision:   0.3,
		CompatibleEquipment: []string{"spreader", "spinner_spreader"},
	},
	"banded": {
		TimingFlexibility:   0.6,
		WeatherIndependence: 0.6,
		SkillAccessibility:  0.6,
		DeliveryPrecision:   0.7,
		CompatibleEquipment: []string{"band_applicator", "planter"},
	},
	"foliar": {
		TimingFlexibility:   0.4,
		WeatherIndependence: 0.2,
		SkillAccessibility:  0.5,
		CompatibleEquipment: []string{"sprayer"},
		DeliveryPrecision:   0.6,
	},
	"fertigation": {
		TimingFlexibility:   0.9,
		WeatherIndependence: 0.8,
		SkillAccessibility:  0.4,
		DeliveryPrecision:   0.8,
		CompatibleEquipment: []string{"irrigation_system"},
	},
	"variable_rate": {
		TimingFlexibility:   0.7,
		WeatherIndependence: 0.5,
		SkillAccessibility:  0.3,
		DeliveryPrecision:   0.95,
		CompatibleEquipment: []string{"vrt_controller", "spreader"},
	},
	"sidedress": {
		TimingFlexibility:   0.3,
		WeatherIndependence: 0.5,
		SkillAccessibility:  0.6,
		DeliveryPrecision:   0.75,
		CompatibleEquipment: []string{"cultivator", "band_applicator"},
	},
}

// precisionMethods get a small-field bonus in field suitability;
// broadcast-class methods get the large-field bonus.
var precisionMethods = map[string]bool{
	"banded":        true,
	"variable_rate": true,
	"sidedress":     true,
}

var broadcastMethods = map[string]bool{
	"broadcast": true,
}

// TraitsFor exposes the lookup table for a method type. The second
// return is false for unknown types.
func TraitsFor(methodType string) (MethodTraits, bool) {
	t, ok := traitTable[methodType]
	return t, ok
}

// KnownMethodTypes returns the method types with trait entries, in no
// particular order.
func KnownMethodTypes() []string {
	out := make([]string, 0, len(traitTable))
	for k := range traitTable {
		out = append(out, k)
	}
	return out
}
