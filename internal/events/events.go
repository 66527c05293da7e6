package events

import "time"

type ComparisonCompletedEvent struct {
	ComparisonID           string  `json:"comparison_id"`
	MethodA                string  `json:"method_a"`
	MethodB                string  `json:"method_b"`
	Winner                 string  `json:"overall_winner"`
	RecommendationStrength float64 `json:"recommendation_strength"`
	SensitiveCriteria      int     `json:"sensitive_criteria"`
}

type ComparisonPrunedEvent struct {
	Deleted int64     `json:"deleted"`
	Cutoff  time.Time `json:"cutoff"`
}

type StatsEvent struct {
	Total       int       `json:"total"`
	MethodAWins int       `json:"method_a_wins"`
	MethodBWins int       `json:"method_b_wins"`
	AvgStrength float64   `json:"avg_recommendation_strength"`
	Timestamp   time.Time `json:"timestamp"`
}
