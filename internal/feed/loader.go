package feed

import (
	"context"
	"log/slog"
	"time"

	"github.com/clarkher/piggerTimeLine/internal/models"
)

// Loader fetches and normalizes the feed in one step.
type Loader struct {
	source Source
	logger *slog.Logger
	now    func() time.Time
}

// NewLoader wires a source to the parser.
func NewLoader(source Source, logger *slog.Logger) *Loader {
	return &Loader{source: source, logger: logger, now: time.Now}
}

// Load performs one fetch-and-parse pass. It fails with a FetchError or
// ParseError; on success every feed record is represented by a row.
func (l *Loader) Load(ctx context.Context) ([]models.Row, error) {
	records, err := l.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := Parse(records, models.DateOf(l.now()))
	if err != nil {
		return nil, err
	}

	coerced := 0
	for _, r := range rows {
		if r.Coerced() {
			coerced++
		}
	}
	l.logger.Debug("feed loaded",
		"source", l.source.Name(),
		"records", len(records)-1,
		"rows", len(rows),
		"coerced", coerced,
	)
	return rows, nil
}
