package scoring

import (
	"fmt"
	"log/slog"
	"math"
)

// Candidate labels used throughout the wire contract.
const (
	WinnerMethodA = "method_a"
	WinnerMethodB = "method_b"
	WinnerTie     = "tie"
)

// tieEpsilon is the per-criterion score difference below which the two
// candidates tie. An exact overall tie is awarded to method_a.
const tieEpsilon = 0.001

// Engine orchestrates multi-criteria comparison of two application
// methods. Each call is stateless; safe for concurrent use.
type Engine struct {
	weights   Weights
	baselines Baselines
	logger    *slog.Logger
}

// NewEngine creates an Engine with the given default weights and
// scorer baselines.
func NewEngine(weights Weights, baselines Baselines, logger *slog.Logger) *Engine {
	return &Engine{weights: weights, baselines: baselines, logger: logger}
}

// Compare scores both candidates on the requested criteria (nil means
// all ten), aggregates with the given weights (nil means the engine
// default), and produces the full analysis with sensitivity and
// recommendation attached. Identical inputs yield identical output.
func (e *Engine) Compare(a, b *Candidate, ctx *Context, criteria []Criterion, weights Weights) (*MultiCriteriaAnalysis, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("both candidates are required")
	}
	if criteria == nil {
		criteria = AllCriteria()
	}
	if weights == nil {
		weights = e.weights
	}

	// All validation happens before any scoring.
	for _, c := range criteria {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, string(c))
		}
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if err := weights.Covers(criteria); err != nil {
		return nil, err
	}

	analysis := &MultiCriteriaAnalysis{
		MethodAScores:    make(map[Criterion]float64, len(criteria)),
		MethodBScores:    make(map[Criterion]float64, len(criteria)),
		WinnerByCriteria: make(map[Criterion]string, len(criteria)),
		Confidence:       make(map[Criterion]float64, len(criteria)),
		Results:          make(map[Criterion]ComparisonResult, len(criteria)),
	}

	for _, c := range criteria {
		detailA, err := Score(c, a, ctx, e.baselines)
		if err != nil {
			return nil, err
		}
		detailB, err := Score(c, b, ctx, e.baselines)
		if err != nil {
			return nil, err
		}

		result := ComparisonResult{
			Criterion:  c,
			ScoreA:     detailA.Score,
			ScoreB:     detailB.Score,
			Difference: math.Abs(detailA.Score - detailB.Score),
			Confidence: math.Min(detailA.Confidence, detailB.Confidence),
			Winner:     criterionWinner(detailA.Score, detailB.Score),
		}
		for _, n := range detailA.Notes {
			result.Notes = append(result.Notes, a.Name+": "+n)
		}
		for _, n := range detailB.Notes {
			result.Notes = append(result.Notes, b.Name+": "+n)
		}

		analysis.Results[c] = result
		analysis.MethodAScores[c] = result.ScoreA
		analysis.MethodBScores[c] = result.ScoreB
		analysis.WinnerByCriteria[c] = result.Winner
		analysis.Confidence[c] = result.Confidence
	}

	overallA, overallB, err := Aggregate(analysis.Results, weights)
	if err != nil {
		return nil, err
	}
	analysis.OverallScores = map[string]float64{
		WinnerMethodA: overallA,
		WinnerMethodB: overallB,
	}
	analysis.OverallWinner = overallWinner(overallA, overallB)
	analysis.RecommendationStrength = clamp(math.Abs(overallA-overallB), 0, 1)
	analysis.Sensitivity = AnalyzeSensitivity(analysis.Results, weights)

	rec, err := Recommend(analysis, a, b)
	if err != nil {
		return nil, err
	}
	analysis.Recommendation = rec.Summary

	if e.logger != nil {
		e.logger.Debug("comparison complete",
			"method_a", a.Name,
			"method_b", b.Name,
			"winner", analysis.OverallWinner,
			"strength", analysis.RecommendationStrength,
		)
	}
	return analysis, nil
}

// criterionWinner applies the per-criterion tie policy.
func criterionWinner(scoreA, scoreB float64) string {
	if math.Abs(scoreA-scoreB) < tieEpsilon {
		return WinnerTie
	}
	if scoreA > scoreB {
		return WinnerMethodA
	}
	return WinnerMethodB
}

// overallWinner never reports a tie: an exact tie goes to method_a.
func overallWinner(overallA, overallB float64) string {
	if overallB > overallA {
		return WinnerMethodB
	}
	return WinnerMethodA
}
