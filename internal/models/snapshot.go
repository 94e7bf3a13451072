package models

import "time"

// FeedSnapshot is the outcome of the refresh loop: the last successfully
// loaded row set plus enough bookkeeping to surface staleness instead of
// silently swallowing fetch failures.
type FeedSnapshot struct {
	Rows        []Row
	FetchedAt   time.Time // last successful load
	AttemptedAt time.Time // last attempt, successful or not
	LastError   string    // empty when the last attempt succeeded
}

// Stale reports whether the snapshot should be flagged as stale: the most
// recent attempt failed, or nothing has been loaded yet.
func (s FeedSnapshot) Stale() bool {
	return s.LastError != "" || s.FetchedAt.IsZero()
}

// CoercedCount counts rows that carry substituted dates.
func (s FeedSnapshot) CoercedCount() int {
	n := 0
	for _, r := range s.Rows {
		if r.Coerced() {
			n++
		}
	}
	return n
}
