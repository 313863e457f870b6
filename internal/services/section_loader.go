package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fintech-dashboard/internal/models"
)

// SectionFetchFunc fetches the ordered items for one dashboard section,
// scoped to a user id.
type SectionFetchFunc[T any] func(ctx context.Context, userID string) ([]T, error)

// SectionLoader owns the loading lifecycle of one independently loading
// dashboard section. It loads once per user id transition, clears its loading
// flag whether the fetch succeeded or not, and on failure leaves the prior
// items in place (empty on first load). Results arriving after the session
// context is cancelled are dropped.
type SectionLoader[T any] struct {
	name    string
	fetch   SectionFetchFunc[T]
	metrics MetricsRecorderInterface

	mu        sync.Mutex
	state     models.SectionState[T]
	loadedFor string
}

func NewSectionLoader[T any](name string, fetch SectionFetchFunc[T], metrics MetricsRecorderInterface) *SectionLoader[T] {
	return &SectionLoader[T]{
		name:    name,
		fetch:   fetch,
		metrics: metrics,
		state:   models.SectionState[T]{Loading: true},
	}
}

// Load fetches the section for userID unless that exact id has already been
// loaded. Re-invocations with the same id are no-ops, so callers may trigger
// it freely on every render-equivalent.
func (l *SectionLoader[T]) Load(ctx context.Context, userID string) {
	l.mu.Lock()
	if userID == "" || l.loadedFor == userID {
		l.mu.Unlock()
		return
	}
	l.loadedFor = userID
	l.state.Loading = true
	l.mu.Unlock()

	l.run(ctx, userID)
}

// Reload bypasses the once-per-user guard for the session-level manual
// refresh trigger.
func (l *SectionLoader[T]) Reload(ctx context.Context, userID string) {
	if userID == "" {
		return
	}

	l.mu.Lock()
	l.loadedFor = userID
	l.state.Loading = true
	l.mu.Unlock()

	l.run(ctx, userID)
}

func (l *SectionLoader[T]) run(ctx context.Context, userID string) {
	start := time.Now()
	items, err := l.fetch(ctx, userID)

	l.mu.Lock()
	defer l.mu.Unlock()

	if ctx.Err() != nil {
		// Session torn down while the fetch was in flight; a stale write
		// here would resurrect a dead dashboard.
		return
	}

	if err != nil {
		slog.Warn("section load failed, keeping prior items",
			"section", l.name,
			"user_id", userID,
			"error", err)
		l.metrics.RecordUpstreamFetch(l.name, "failure", time.Since(start))
		l.state.Loading = false
		return
	}

	l.state.Items = items
	l.state.Loading = false
	l.metrics.RecordUpstreamFetch(l.name, "success", time.Since(start))
	l.metrics.SetSectionItemCount(l.name, len(items))

	slog.Info("section loaded",
		"section", l.name,
		"user_id", userID,
		"items", len(items))
}

// State returns a copy of the section's current items and loading flag.
func (l *SectionLoader[T]) State() models.SectionState[T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	items := make([]T, len(l.state.Items))
	copy(items, l.state.Items)

	return models.SectionState[T]{
		Items:   items,
		Loading: l.state.Loading,
	}
}
