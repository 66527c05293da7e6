package events

const (
	SubjectAdvisorStats = "agro.advisor.stats"

	StreamName   = "ADVISOR_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectComparisonCompleted(comparisonID string) string {
	return "agro.comparison." + comparisonID + ".completed"
}

func SubjectComparisonPruned() string {
	return "agro.comparison.pruned"
}
