package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"sync"
	"time"

	"fintech-dashboard/internal/api"
	"fintech-dashboard/internal/config"
	"fintech-dashboard/internal/models"

	"golang.org/x/sync/errgroup"
)

const (
	sectionCards        = "cards"
	sectionTransactions = "transactions"
	resourceStats       = "stats"
)

var (
	ErrAlreadyStarted = errors.New("dashboard controller already started")
)

type dashboardController struct {
	resolver UserResolverInterface
	client   *api.Client
	cfg      config.UpstreamConfig
	metrics  MetricsRecorderInterface

	cards        *SectionLoader[models.Card]
	transactions *SectionLoader[models.Transaction]

	mu        sync.Mutex
	lifecycle context.Context
	cancel    context.CancelFunc
	userID    string
	stats     models.DashboardStats
}

func NewDashboardController(
	resolver UserResolverInterface,
	client *api.Client,
	cfg config.UpstreamConfig,
	metrics MetricsRecorderInterface,
) DashboardControllerInterface {
	c := &dashboardController{
		resolver: resolver,
		client:   client,
		cfg:      cfg,
		metrics:  metrics,
		stats:    models.ZeroStats(),
	}

	c.cards = NewSectionLoader(sectionCards, func(ctx context.Context, userID string) ([]models.Card, error) {
		return fetchUserScoped[models.Card](ctx, client, "/cards", userID, nil)
	}, metrics)

	limit := url.Values{"limit": []string{strconv.Itoa(cfg.TransactionsLimit)}}
	c.transactions = NewSectionLoader(sectionTransactions, func(ctx context.Context, userID string) ([]models.Transaction, error) {
		return fetchUserScoped[models.Transaction](ctx, client, "/transactions", userID, limit)
	}, metrics)

	return c
}

// Start resolves the session user, then loads everything that depends on the
// resolved id. Resolution strictly precedes every dependent fetch; a failed
// resolution leaves the user id unset and no dependent fetch is issued.
func (c *dashboardController) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.cancel != nil {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	lifecycle, cancel := context.WithCancel(ctx)
	c.lifecycle = lifecycle
	c.cancel = cancel
	c.mu.Unlock()

	userID, err := c.resolver.Resolve(lifecycle)
	if err != nil {
		slog.Error("user resolution failed, dashboard stays in degraded empty state", "error", err)
		return fmt.Errorf("resolve user: %w", err)
	}

	c.mu.Lock()
	c.userID = userID
	c.mu.Unlock()

	c.loadAll(lifecycle, userID, false)
	return nil
}

// Refresh re-runs the dependent fetches. This is the session-level manual
// trigger: a failed fetch stays failed until this runs again.
func (c *dashboardController) Refresh() {
	c.mu.Lock()
	userID := c.userID
	lifecycle := c.lifecycle
	c.mu.Unlock()

	if lifecycle == nil || lifecycle.Err() != nil {
		return
	}
	if userID == "" {
		slog.Warn("refresh requested with no resolved user, nothing to fetch")
		return
	}

	c.loadAll(lifecycle, userID, true)
}

// loadAll fans out the three independent load paths: the stats fan-in and the
// two section loaders. They share nothing but the user id and may settle in
// any order.
func (c *dashboardController) loadAll(ctx context.Context, userID string, force bool) {
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		c.refreshStats(ctx, userID)
	}()

	go func() {
		defer wg.Done()
		if force {
			c.cards.Reload(ctx, userID)
		} else {
			c.cards.Load(ctx, userID)
		}
	}()

	go func() {
		defer wg.Done()
		if force {
			c.transactions.Reload(ctx, userID)
		} else {
			c.transactions.Load(ctx, userID)
		}
	}()

	wg.Wait()
}

// refreshStats issues the accounts and cards fetches concurrently, joins
// them, and publishes the aggregate in one atomic write. Either both
// collections feed the new stats or the prior stats stand; a half-updated
// value is never observable.
func (c *dashboardController) refreshStats(ctx context.Context, userID string) {
	start := time.Now()

	var accounts []models.Account
	var cards []models.Card

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fetched, err := fetchUserScoped[models.Account](gctx, c.client, "/accounts", userID, nil)
		if err != nil {
			return fmt.Errorf("fetch accounts: %w", err)
		}
		accounts = fetched
		return nil
	})
	g.Go(func() error {
		fetched, err := fetchUserScoped[models.Card](gctx, c.client, "/cards", userID, nil)
		if err != nil {
			return fmt.Errorf("fetch cards: %w", err)
		}
		cards = fetched
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Warn("stats fan-in failed, keeping prior stats",
			"user_id", userID,
			"error", err)
		c.metrics.RecordUpstreamFetch(resourceStats, "failure", time.Since(start))
		return
	}

	stats := Aggregate(accounts, cards)

	c.mu.Lock()
	if ctx.Err() == nil {
		c.stats = stats
	}
	c.mu.Unlock()

	c.metrics.RecordUpstreamFetch(resourceStats, "success", time.Since(start))
	balance, _ := stats.Balance.Float64()
	c.metrics.SetDashboardBalance(balance)

	slog.Info("dashboard stats published",
		"user_id", userID,
		"balance", stats.Balance.String(),
		"accounts", stats.Accounts,
		"cards", stats.Cards)
}

// Snapshot returns a copy of the composed view-model. Stats are copied in a
// single critical section so a concurrent fan-in can never be seen half
// applied.
func (c *dashboardController) Snapshot() models.DashboardSnapshot {
	c.mu.Lock()
	snap := models.DashboardSnapshot{
		UserID: c.userID,
		Stats:  c.stats,
	}
	c.mu.Unlock()

	snap.Cards = c.cards.State()
	snap.Transactions = c.transactions.State()
	return snap
}

func (c *dashboardController) Close() {
	c.mu.Lock()
	cancel := c.cancel
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// fetchUserScoped fetches a user-scoped list resource. The server's contract
// (ordering, limits) is passed through as received, not re-enforced here.
func fetchUserScoped[T any](ctx context.Context, client *api.Client, path, userID string, extra url.Values) ([]T, error) {
	query := url.Values{"user_id": []string{userID}}
	for key, values := range extra {
		query[key] = values
	}

	var items []T
	if err := client.Get(ctx, path, query, &items); err != nil {
		return nil, err
	}
	return items, nil
}
