package sweeper

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Harrowfield-Ag/Advisor/internal/events"
	"github.com/Harrowfield-Ag/Advisor/internal/store"
)

// Sweeper prunes comparison records past the retention window and
// publishes store stats on each pass.
type Sweeper struct {
	store    store.Store
	events   events.Client
	interval time.Duration
	maxAge   time.Duration
	logger   *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func New(s store.Store, ev events.Client, interval, maxAge time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		store:    s,
		events:   ev,
		interval: interval,
		maxAge:   maxAge,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.loop(ctx)
}

func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *Sweeper) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.maxAge)
	deleted, err := s.store.DeleteComparisonsBefore(ctx, cutoff)
	if err != nil {
		s.logger.Error("retention sweep failed", "error", err)
		return
	}
	if deleted > 0 {
		s.logger.Info("pruned expired comparisons", "deleted", deleted, "cutoff", cutoff)
		if s.events != nil {
			_ = s.events.Publish(events.SubjectComparisonPruned(), events.ComparisonPrunedEvent{
				Deleted: deleted,
				Cutoff:  cutoff,
			})
		}
	}

	if s.events == nil {
		return
	}
	stats, err := s.store.GetStats(ctx)
	if err != nil {
		s.logger.Warn("stats publish skipped", "error", err)
		return
	}
	_ = s.events.Publish(events.SubjectAdvisorStats, events.StatsEvent{
		Total:       stats.Total,
		MethodAWins: stats.MethodAWins,
		MethodBWins: stats.MethodBWins,
		AvgStrength: stats.AvgStrength,
		Timestamp:   time.Now().UTC(),
	})
}
