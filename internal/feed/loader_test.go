package feed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
)

type stubSource struct {
	records [][]string
	err     error
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Fetch(ctx context.Context) ([][]string, error) {
	return s.records, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoaderLoad(t *testing.T) {
	t.Run("fetches and parses", func(t *testing.T) {
		src := &stubSource{records: [][]string{
			{"Person", "Task", "Start", "End"},
			{"RD", "api work", "2024-03-01", "2024-03-10"},
		}}

		rows, err := NewLoader(src, discardLogger()).Load(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 1 || rows[0].Person != "RD" {
			t.Errorf("unexpected rows: %+v", rows)
		}
	})

	t.Run("propagates fetch failure", func(t *testing.T) {
		src := &stubSource{err: &FetchError{Err: errors.New("connection refused")}}

		_, err := NewLoader(src, discardLogger()).Load(context.Background())
		var ferr *FetchError
		if !errors.As(err, &ferr) {
			t.Fatalf("expected FetchError, got %v", err)
		}
	})
}
