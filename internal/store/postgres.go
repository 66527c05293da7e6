package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const comparisonColumns = `comparison_id, method_a, method_b, winner,
	recommendation_strength, requested_by, request_context, analysis, created_at`

func (s *PostgresStore) CreateComparison(ctx context.Context, c *Comparison) error {
	contextJSON, _ := json.Marshal(c.Context)
	analysisJSON, _ := json.Marshal(c.Analysis)

	return s.pool.QueryRow(ctx, `
		INSERT INTO advisor_comparisons (method_a, method_b, winner,
			recommendation_strength, requested_by, request_context, analysis)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING comparison_id, created_at`,
		c.MethodA, c.MethodB, c.Winner,
		c.RecommendationStrength, c.RequestedBy, contextJSON, analysisJSON,
	).Scan(&c.ID, &c.CreatedAt)
}

func (s *PostgresStore) GetComparison(ctx context.Context, id uuid.UUID) (*Comparison, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+comparisonColumns+`
		FROM advisor_comparisons WHERE comparison_id = $1`, id)

	c, err := scanComparison(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get comparison: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) ListComparisons(ctx context.Context, filter ComparisonFilter) ([]*Comparison, error) {
	query := `SELECT ` + comparisonColumns + ` FROM advisor_comparisons WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if filter.Winner != "" {
		query += fmt.Sprintf(" AND winner = $%d", idx)
		args = append(args, filter.Winner)
		idx++
	}
	if filter.Method != "" {
		query += fmt.Sprintf(" AND (method_a = $%d OR method_b = $%d)", idx, idx)
		args = append(args, filter.Method)
		idx++
	}
	query += " ORDER BY created_at DESC"
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query += fmt.Sprintf(" LIMIT $%d", idx)
	args = append(args, limit)
	idx++
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", idx)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list comparisons: %w", err)
	}
	defer rows.Close()

	var out []*Comparison
	for rows.Next() {
		c, err := scanComparison(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comparison: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PostgresStore) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	err := s.pool.QueryRow(ctx, `
		SELECT count(*),
			count(*) FILTER (WHERE winner = 'method_a'),
			count(*) FILTER (WHERE winner = 'method_b'),
			coalesce(avg(recommendation_strength), 0)
		FROM advisor_comparisons`,
	).Scan(&stats.Total, &stats.MethodAWins, &stats.MethodBWins, &stats.AvgStrength)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	return stats, nil
}

func (s *PostgresStore) DeleteComparisonsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM advisor_comparisons WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete comparisons: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanComparison(row pgx.Row) (*Comparison, error) {
	c := &Comparison{}
	var contextJSON, analysisJSON []byte
	err := row.Scan(
		&c.ID, &c.MethodA, &c.MethodB, &c.Winner,
		&c.RecommendationStrength, &c.RequestedBy, &contextJSON, &analysisJSON, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(contextJSON) > 0 {
		_ = json.Unmarshal(contextJSON, &c.Context)
	}
	if len(analysisJSON) > 0 {
		_ = json.Unmarshal(analysisJSON, &c.Analysis)
	}
	return c, nil
}
