package scoring

import (
	"strings"
)

// Confidence heuristics. These literals ship for behavioral parity
// with existing callers; they are bands, not probabilities.
const (
	confidenceBacked    = 0.9 // context field present and non-default
	confidencePartial   = 0.8 // some but not all supporting context
	confidenceDefaulted = 0.6 // score computed from defaults
)

// Baselines tune the context-dependent scorers. All values are
// configurable at startup and constant thereafter.
type Baselines struct {
	// CostBaselinePerAcre maps to score 0; $0/acre maps to 1.0,
	// linear in between.
	CostBaselinePerAcre float64
	// SlopeThresholdPercent is where environmental penalties start.
	SlopeThresholdPercent float64
	// SlopePenaltyPerPercent is subtracted per percent of slope above
	// the threshold, floored at 0.
	SlopePenaltyPerPercent float64
	// SmallFieldAcres and LargeFieldAcres bound the field-suitability
	// size bands.
	SmallFieldAcres float64
	LargeFieldAcres float64
}

// DefaultBaselines returns the stock scorer tuning.
func DefaultBaselines() Baselines {
	return Baselines{
		CostBaselinePerAcre:    200.0,
		SlopeThresholdPercent:  5.0,
		SlopePenaltyPerPercent: 0.02,
		SmallFieldAcres:        20.0,
		LargeFieldAcres:        100.0,
	}
}

// ScoreDetail is one scorer's output for one candidate.
type ScoreDetail struct {
	Score      float64
	Confidence float64
	Notes      []string
}

type scorerFunc func(cand *Candidate, ctx *Context, b Baselines) ScoreDetail

// scorers dispatches each criterion to its pure scoring function.
// Every entry must be deterministic and side-effect free.
var scorers = map[Criterion]scorerFunc{
	CostEffectiveness:     scoreCostEffectiveness,
	ApplicationEfficiency: scoreApplicationEfficiency,
	EnvironmentalImpact:   scoreEnvironmentalImpact,
	LaborRequirements:     scoreLaborRequirements,
	EquipmentNeeds:        scoreEquipmentNeeds,
	FieldSuitability:      scoreFieldSuitability,
	NutrientUseEfficiency: scoreNutrientUseEfficiency,
	TimingFlexibility:     scoreTimingFlexibility,
	SkillRequirements:     scoreSkillRequirements,
	WeatherDependency:     scoreWeatherDependency,
}

// Score computes the normalized [0,1] score for one candidate under
// one criterion. Missing context degrades to documented defaults; a
// malformed candidate scores zero with a note rather than failing.
func Score(c Criterion, cand *Candidate, ctx *Context, b Baselines) (ScoreDetail, error) {
	fn, ok := scorers[c]
	if !ok {
		return ScoreDetail{}, ErrUnknownCriterion
	}
	if ctx == nil {
		ctx = &Context{}
	}
	d := fn(cand, ctx, b)
	d.Score = clamp(d.Score, 0, 1)
	return d, nil
}

// scoreCostEffectiveness normalizes total (fixed + variable) per-acre
// cost against the configured baseline.
func scoreCostEffectiveness(cand *Candidate, ctx *Context, b Baselines) ScoreDetail {
	total := cand.CostPerAcre
	conf := confidenceDefaulted
	var notes []string

	if cand.CostPerAcre > 0 {
		conf = confidencePartial
	} else {
		notes = append(notes, "no variable cost supplied, treated as $0/acre")
	}
	if ctx.Costs != nil && ctx.Costs.FixedPerAcre != nil {
		total += *ctx.Costs.FixedPerAcre
		conf = confidenceBacked
	}

	score := 1.0 - total/b.CostBaselinePerAcre
	if ctx.Costs != nil && ctx.Costs.BudgetPerAcre != nil && total > *ctx.Costs.BudgetPerAcre {
		notes = append(notes, "total cost exceeds stated budget")
	}
	return ScoreDetail{Score: clamp(score, 0, 1), Confidence: conf, Notes: notes}
}

// scoreApplicationEfficiency reads the candidate's stored efficiency.
func scoreApplicationEfficiency(cand *Candidate, _ *Context, _ Baselines) ScoreDetail {
	if cand.EfficiencyScore <= 0 {
		return ScoreDetail{
			Score:      0,
			Confidence: confidenceDefaulted,
			Notes:      []string{"no efficiency score on candidate"},
		}
	}
	return ScoreDetail{Score: clamp(cand.EfficiencyScore, 0, 1), Confidence: confidenceBacked}
}

var impactBaseScores = map[string]float64{
	"low":      0.9,
	"moderate": 0.6,
	"high":     0.3,
}

// scoreEnvironmentalImpact maps the candidate's qualitative tag to a
// base score, then penalizes steep fields where runoff risk grows.
func scoreEnvironmentalImpact(cand *Candidate, ctx *Context, b Baselines) ScoreDetail {
	base, known := impactBaseScores[strings.ToLower(cand.EnvironmentalImpact)]
	conf := confidenceDefaulted
	var notes []string
	if !known {
		base = 0.5
		notes = append(notes, "unknown environmental impact tag, using neutral base")
	} else {
		conf = confidencePartial
	}

	slope := 0.0 // unknown slope treated as flat
	if ctx.Field != nil && ctx.Field.SlopePercent != nil {
		slope = *ctx.Field.SlopePercent
		if known {
			conf = confidenceBacked
		}
	}
	score := base
	if slope > b.SlopeThresholdPercent {
		penalty := (slope - b.SlopeThresholdPercent) * b.SlopePenaltyPerPercent
		score -= penalty
		notes = append(notes, "slope above threshold, runoff penalty applied")
	}
	return ScoreDetail{Score: clamp(score, 0, 1), Confidence: conf, Notes: notes}
}

var laborBaseScores = map[string]float64{
	"low":      0.9,
	"moderate": 0.6,
	"high":     0.3,
}

func scoreLaborRequirements(cand *Candidate, _ *Context, _ Baselines) ScoreDetail {
	if score, ok := laborBaseScores[strings.ToLower(cand.LaborRequirement)]; ok {
		return ScoreDetail{Score: score, Confidence: confidenceBacked}
	}
	return ScoreDetail{
		Score:      0.5,
		Confidence: confidenceDefaulted,
		Notes:      []string{"unknown labor requirement tag, using neutral base"},
	}
}

// scoreEquipmentNeeds is a binary compatibility check against the
// available-equipment list.
func scoreEquipmentNeeds(cand *Candidate, ctx *Context, _ Baselines) ScoreDetail {
	traits, ok := TraitsFor(cand.MethodType)
	if !ok {
		return incompatibleCandidate(cand)
	}
	if len(ctx.Equipment) == 0 {
		return ScoreDetail{
			Score:      0,
			Confidence: confidenceDefaulted,
			Notes:      []string{"no equipment listed, assuming none compatible"},
		}
	}
	for _, have := range ctx.Equipment {
		for _, want := range traits.CompatibleEquipment {
			if strings.EqualFold(have, want) {
				return ScoreDetail{Score: 1.0, Confidence: confidenceBacked}
			}
		}
	}
	return ScoreDetail{
		Score:      0,
		Confidence: confidenceBacked,
		Notes:      []string{"no compatible equipment available"},
	}
}

// scoreFieldSuitability favours broadcast-class methods on large
// fields and precision methods on small ones.
func scoreFieldSuitability(cand *Candidate, ctx *Context, b Baselines) ScoreDetail {
	if _, ok := TraitsFor(cand.MethodType); !ok {
		return incompatibleCandidate(cand)
	}
	if ctx.Field == nil || ctx.Field.SizeAcres == nil {
		return ScoreDetail{
			Score:      0.5,
			Confidence: confidenceDefaulted,
			Notes:      []string{"field size unknown"},
		}
	}
	size := *ctx.Field.SizeAcres

	var score float64
	switch {
	case broadcastMethods[cand.MethodType]:
		switch {
		case size >= b.LargeFieldAcres:
			score = 0.95
		case size <= b.SmallFieldAcres:
			score = 0.5
		default:
			score = 0.75
		}
	case precisionMethods[cand.MethodType]:
		switch {
		case size <= b.SmallFieldAcres:
			score = 0.9
		case size >= b.LargeFieldAcres:
			score = 0.55
		default:
			score = 0.75
		}
	default:
		score = 0.7
	}
	return ScoreDetail{Score: score, Confidence: confidenceBacked}
}

// scoreNutrientUseEfficiency weighs crop nutrient demand against the
// method's delivery precision: demanding crops punish coarse methods.
func scoreNutrientUseEfficiency(cand *Candidate, ctx *Context, _ Baselines) ScoreDetail {
	traits, ok := TraitsFor(cand.MethodType)
	if !ok {
		return incompatibleCandidate(cand)
	}
	demand := 0.5
	conf := confidenceDefaulted
	var notes []string
	if ctx.Crop != nil && ctx.Crop.NutrientDemand != nil {
		demand = clamp(*ctx.Crop.NutrientDemand, 0, 1)
		conf = confidenceBacked
	} else {
		notes = append(notes, "nutrient demand unknown, using moderate default")
	}
	score := 1.0 - demand*(1.0-traits.DeliveryPrecision)
	return ScoreDetail{Score: clamp(score, 0, 1), Confidence: conf, Notes: notes}
}

func scoreTimingFlexibility(cand *Candidate, _ *Context, _ Baselines) ScoreDetail {
	traits, ok := TraitsFor(cand.MethodType)
	if !ok {
		return incompatibleCandidate(cand)
	}
	return ScoreDetail{Score: traits.TimingFlexibility, Confidence: confidenceBacked}
}

func scoreSkillRequirements(cand *Candidate, _ *Context, _ Baselines) ScoreDetail {
	traits, ok := TraitsFor(cand.MethodType)
	if !ok {
		return incompatibleCandidate(cand)
	}
	return ScoreDetail{Score: traits.SkillAccessibility, Confidence: confidenceBacked}
}

func scoreWeatherDependency(cand *Candidate, _ *Context, _ Baselines) ScoreDetail {
	traits, ok := TraitsFor(cand.MethodType)
	if !ok {
		return incompatibleCandidate(cand)
	}
	return ScoreDetail{Score: traits.WeatherIndependence, Confidence: confidenceBacked}
}

// incompatibleCandidate records a zero score with a note for
// type-dependent criteria when the candidate is malformed or unknown.
// This is per-criterion degradation, not a comparison-level failure.
func incompatibleCandidate(cand *Candidate) ScoreDetail {
	note := "candidate missing method type"
	if cand.MethodType != "" {
		note = "unknown method type: " + cand.MethodType
	}
	return ScoreDetail{Score: 0, Confidence: confidenceDefaulted, Notes: []string{note}}
}
