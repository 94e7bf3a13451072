// Package refresh owns the background polling loop that keeps the
// in-memory feed snapshot current. The loop is scoped to a context:
// cancel it and the loop, including any in-flight fetch, stops.
package refresh

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/clarkher/piggerTimeLine/internal/models"
)

// RowLoader fetches and parses the feed into rows.
type RowLoader interface {
	Load(ctx context.Context) ([]models.Row, error)
}

// Refresher polls a RowLoader on an interval and publishes the latest
// snapshot. Failed attempts keep the previous rows and record the error,
// so readers can tell fresh data from stale.
type Refresher struct {
	loader   RowLoader
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu   sync.RWMutex
	snap models.FeedSnapshot
}

// New creates a Refresher. It does not start polling; call Run.
func New(loader RowLoader, interval time.Duration, logger *slog.Logger) *Refresher {
	return &Refresher{
		loader:   loader,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Run refreshes once immediately, then on every tick until ctx is
// canceled. Fetches never overlap: the loop runs them one at a time,
// and a tick that arrives mid-fetch is simply dropped.
func (r *Refresher) Run(ctx context.Context) {
	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("refresh loop stopped")
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	rows, err := r.loader.Load(ctx)
	attempted := r.now()

	if err != nil {
		if ctx.Err() != nil {
			// Teardown, not a feed failure.
			return
		}
		r.mu.Lock()
		r.snap.AttemptedAt = attempted
		r.snap.LastError = err.Error()
		r.mu.Unlock()
		r.logger.Error("feed refresh failed", "error", err)
		return
	}

	r.mu.Lock()
	r.snap = models.FeedSnapshot{
		Rows:        rows,
		FetchedAt:   attempted,
		AttemptedAt: attempted,
	}
	coerced := r.snap.CoercedCount()
	r.mu.Unlock()

	r.logger.Info("feed refreshed", "rows", len(rows), "coerced", coerced)
}

// Snapshot returns the latest published snapshot. The row slice is
// replaced wholesale on each successful refresh and never mutated
// afterwards, so sharing it with callers is safe.
func (r *Refresher) Snapshot() models.FeedSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snap
}
