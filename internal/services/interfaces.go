package services

import (
	"context"
	"time"

	"fintech-dashboard/internal/models"
)

// UserResolverInterface establishes the single active user identity for a
// dashboard session, creating one upstream when none exists.
type UserResolverInterface interface {
	// Resolve returns the active user id, finding or creating it on first
	// call and returning the memoized id on every call after that.
	Resolve(ctx context.Context) (string, error)
}

// DashboardControllerInterface composes resolution, the stats fan-out, and
// the section loaders into one session-scoped view-model.
type DashboardControllerInterface interface {
	// Start resolves the user and runs the initial load. It returns once
	// every dependent fetch has settled; a resolution failure leaves the
	// dashboard in its degraded empty state.
	Start(ctx context.Context) error

	// Refresh re-runs the dependent fetches for the already-resolved user.
	Refresh()

	// Snapshot returns an atomic copy of the composed view-model.
	Snapshot() models.DashboardSnapshot

	// Close tears the session down; fetches still in flight must not
	// mutate state after it returns.
	Close()
}

type MetricsRecorderInterface interface {
	RecordUpstreamFetch(resource string, outcome string, duration time.Duration)
	SetDashboardBalance(balance float64)
	SetSectionItemCount(section string, count int)
}
