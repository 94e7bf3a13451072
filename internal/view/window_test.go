package view

import (
	"testing"
	"time"

	"github.com/clarkher/piggerTimeLine/internal/models"
)

func TestDeriveWindow(t *testing.T) {
	today := models.NewDate(2024, time.May, 1)

	date := func(s string) models.Date {
		t.Helper()
		d, err := models.ParseDate(s)
		if err != nil {
			t.Fatalf("bad test date %q: %v", s, err)
		}
		return d
	}

	t.Run("pads min and max by seven days", func(t *testing.T) {
		rows := []models.Row{
			{Start: date("2024-01-10"), End: date("2024-01-12")},
			{Start: date("2024-01-15"), End: date("2024-01-20")},
		}

		w := deriveWindow(rows, 7, today)
		if w.Start.String() != "2024-01-03" {
			t.Errorf("got start %s, want 2024-01-03", w.Start)
		}
		if w.End.String() != "2024-01-27" {
			t.Errorf("got end %s, want 2024-01-27", w.End)
		}
	})

	t.Run("no rows collapses to today", func(t *testing.T) {
		w := deriveWindow(nil, 7, today)
		if w.Start.String() != "2024-05-01" || w.End.String() != "2024-05-01" {
			t.Errorf("got %s..%s, want today..today", w.Start, w.End)
		}
	})

	t.Run("coerced dates do not stretch the window", func(t *testing.T) {
		rows := []models.Row{
			{Start: date("2024-05-01"), StartCoerced: true, End: date("2024-05-02"), EndCoerced: true},
		}

		w := deriveWindow(rows, 7, today)
		if w.Start.String() != "2024-05-01" || w.End.String() != "2024-05-01" {
			t.Errorf("got %s..%s, want today..today", w.Start, w.End)
		}
	})

	t.Run("real end still counts when start is coerced", func(t *testing.T) {
		rows := []models.Row{
			{Start: today, StartCoerced: true, End: date("2024-06-10")},
		}

		w := deriveWindow(rows, 7, today)
		if w.Start.String() != "2024-06-03" {
			t.Errorf("got start %s, want 2024-06-03", w.Start)
		}
		if w.End.String() != "2024-06-17" {
			t.Errorf("got end %s, want 2024-06-17", w.End)
		}
	})

	t.Run("single day with zero pad", func(t *testing.T) {
		rows := []models.Row{{Start: date("2024-02-02"), End: date("2024-02-02")}}

		w := deriveWindow(rows, 0, today)
		if w.Start.String() != "2024-02-02" || w.End.String() != "2024-02-02" {
			t.Errorf("got %s..%s, want 2024-02-02..2024-02-02", w.Start, w.End)
		}
	})
}
