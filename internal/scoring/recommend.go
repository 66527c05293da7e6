package scoring

import (
	"fmt"
	"strings"
)

// Recommendation is the human-facing outcome of a comparison.
type Recommendation struct {
	Method     string `json:"method"`
	Label      string `json:"label"`      // method_a or method_b
	Confidence string `json:"confidence"` // strong, moderate, marginal
	Summary    string `json:"summary"`
}

// Recommendation strength bands.
const (
	strongMargin   = 0.15
	moderateMargin = 0.05
)

// Recommend renders the analysis into a recommendation. It performs no
// new scoring; it only formats what the engine already decided.
func Recommend(analysis *MultiCriteriaAnalysis, a, b *Candidate) (Recommendation, error) {
	if analysis == nil || len(analysis.Results) == 0 {
		return Recommendation{}, ErrEmptyAnalysis
	}

	winner, loser := a, b
	winnerScore := analysis.OverallScores[WinnerMethodA]
	loserScore := analysis.OverallScores[WinnerMethodB]
	if analysis.OverallWinner == WinnerMethodB {
		winner, loser = b, a
		winnerScore, loserScore = loserScore, winnerScore
	}

	confidence := "marginal"
	switch {
	case analysis.RecommendationStrength >= strongMargin:
		confidence = "strong"
	case analysis.RecommendationStrength >= moderateMargin:
		confidence = "moderate"
	}

	wins, ties := 0, 0
	var leading []string
	// Canonical criterion order keeps the narrative deterministic.
	for _, c := range AllCriteria() {
		w, scored := analysis.WinnerByCriteria[c]
		if !scored {
			continue
		}
		switch w {
		case analysis.OverallWinner:
			wins++
			if len(leading) < 3 {
				leading = append(leading, string(c))
			}
		case WinnerTie:
			ties++
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s is recommended over %s (overall %.3f vs %.3f, %s margin).",
		winner.Name, loser.Name, winnerScore, loserScore, confidence)
	if wins > 0 {
		fmt.Fprintf(&sb, " It leads on %d of %d criteria", wins, len(analysis.Results))
		if len(leading) > 0 {
			fmt.Fprintf(&sb, ", notably %s", strings.Join(leading, ", "))
		}
		sb.WriteString(".")
	}
	if ties == len(analysis.Results) {
		sb.Reset()
		fmt.Fprintf(&sb, "%s and %s are effectively equivalent on all scored criteria; %s is reported by the default tie policy.",
			a.Name, b.Name, winner.Name)
	}
	if sensitive := sensitiveCriteria(analysis); len(sensitive) > 0 {
		fmt.Fprintf(&sb, " The outcome is sensitive to the weighting of %s.", strings.Join(sensitive, ", "))
	}

	return Recommendation{
		Method:     winner.Name,
		Label:      analysis.OverallWinner,
		Confidence: confidence,
		Summary:    sb.String(),
	}, nil
}

func sensitiveCriteria(analysis *MultiCriteriaAnalysis) []string {
	var out []string
	for _, c := range AllCriteria() {
		if res, ok := analysis.Sensitivity[c]; ok && res.Sensitive {
			out = append(out, string(c))
		}
	}
	return out
}
