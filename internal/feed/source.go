// Package feed loads the schedule feed: it fetches a delimited-text
// resource, tokenizes it, and normalizes the records into rows. Malformed
// rows are admitted with substituted dates rather than dropped, so the
// timeline always shows everything the feed contains.
package feed

import "context"

// Source produces raw feed records, header row first. Implementations
// fetch; Parse normalizes.
type Source interface {
	// Name identifies the source kind in logs ("csv", "sheets").
	Name() string
	Fetch(ctx context.Context) ([][]string, error)
}
