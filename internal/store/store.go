package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Comparison is the persisted audit record of one comparison call.
// Context and Analysis are stored as JSON documents.
type Comparison struct {
	ID                     uuid.UUID              `json:"comparison_id"`
	MethodA                string                 `json:"method_a"`
	MethodB                string                 `json:"method_b"`
	Winner                 string                 `json:"overall_winner"`
	RecommendationStrength float64                `json:"recommendation_strength"`
	RequestedBy            string                 `json:"requested_by,omitempty"`
	Context                map[string]interface{} `json:"context,omitempty"`
	Analysis               map[string]interface{} `json:"analysis"`
	CreatedAt              time.Time              `json:"created_at"`
}

// ComparisonFilter narrows List queries.
type ComparisonFilter struct {
	Winner string
	Method string
	Limit  int
	Offset int
}

// Stats summarizes stored comparisons.
type Stats struct {
	Total       int     `json:"total"`
	MethodAWins int     `json:"method_a_wins"`
	MethodBWins int     `json:"method_b_wins"`
	AvgStrength float64 `json:"avg_recommendation_strength"`
}

// Store persists comparison audit records.
type Store interface {
	CreateComparison(ctx context.Context, c *Comparison) error
	GetComparison(ctx context.Context, id uuid.UUID) (*Comparison, error)
	ListComparisons(ctx context.Context, filter ComparisonFilter) ([]*Comparison, error)
	GetStats(ctx context.Context) (*Stats, error)
	DeleteComparisonsBefore(ctx context.Context, cutoff time.Time) (int64, error)
	Close() error
}
