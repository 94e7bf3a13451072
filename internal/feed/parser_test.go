package feed

import (
	"errors"
	"testing"
	"time"

	"github.com/clarkher/piggerTimeLine/internal/models"
)

var feedHeader = []string{"Person", "Task", "Start", "End", "Type", "Status", "Progress", "Color", "Note", "URL"}

func TestParse(t *testing.T) {
	today := models.NewDate(2024, time.March, 15)

	t.Run("maps every column", func(t *testing.T) {
		records := [][]string{
			feedHeader,
			{"RD", "api work", "2024-03-01", "2024-03-10", "Task", "進行中", "40%", "#1e88e5", "kickoff notes", "https://tracker/42"},
		}

		rows, err := Parse(records, today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("got %d rows, want 1", len(rows))
		}

		r := rows[0]
		if r.Person != "RD" || r.Task != "api work" || r.Status != "進行中" {
			t.Errorf("unexpected identity fields: %+v", r)
		}
		if r.Start.String() != "2024-03-01" || r.End.String() != "2024-03-10" {
			t.Errorf("got dates %s..%s, want 2024-03-01..2024-03-10", r.Start, r.End)
		}
		if r.Type != models.RowTypeTask {
			t.Errorf("got type %q, want %q", r.Type, models.RowTypeTask)
		}
		if r.Progress != "40%" || r.Color != "#1e88e5" || r.Note != "kickoff notes" || r.URL != "https://tracker/42" {
			t.Errorf("unexpected detail fields: %+v", r)
		}
		if r.Coerced() {
			t.Error("expected no coerced dates")
		}
	})

	t.Run("header only yields no rows", func(t *testing.T) {
		rows, err := Parse([][]string{feedHeader}, today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 0 {
			t.Errorf("got %d rows, want 0", len(rows))
		}
	})

	t.Run("no header is an error", func(t *testing.T) {
		_, err := Parse(nil, today)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("expected ParseError, got %v", err)
		}
	})

	t.Run("short record leaves trailing fields empty", func(t *testing.T) {
		records := [][]string{
			feedHeader,
			{"QA", "regression pass", "2024-03-05"},
		}

		rows, err := Parse(records, today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		r := rows[0]
		if r.Person != "QA" || r.Start.String() != "2024-03-05" {
			t.Errorf("unexpected fields: %+v", r)
		}
		if r.Status != "" || r.URL != "" {
			t.Errorf("expected empty trailing fields, got %+v", r)
		}
		if !r.EndCoerced {
			t.Error("expected missing end to be coerced")
		}
	})

	t.Run("milestone type matches exactly", func(t *testing.T) {
		records := [][]string{
			feedHeader,
			{"PM", "launch", "2024-03-20", "2024-03-20", "Milestone", "", "", "", "", ""},
			{"PM", "launch prep", "2024-03-18", "2024-03-19", "milestone", "", "", "", "", ""},
		}

		rows, err := Parse(records, today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rows[0].IsMilestone() {
			t.Error("expected 'Milestone' to parse as milestone")
		}
		if rows[1].IsMilestone() {
			t.Error("expected lowercase 'milestone' to stay a task")
		}
	})

	t.Run("bad dates are substituted never dropped", func(t *testing.T) {
		records := [][]string{
			feedHeader,
			{"RD", "fuzzy plan", "sometime", "", "Task", "未開始", "", "", "", ""},
			{"RD", "solid plan", "2024-03-01", "2024-03-02", "Task", "進行中", "", "", "", ""},
		}

		rows, err := Parse(records, today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("got %d rows, want 2", len(rows))
		}

		r := rows[0]
		if !r.StartCoerced || !r.EndCoerced {
			t.Errorf("expected both dates coerced, got %+v", r)
		}
		if r.Start.String() != "2024-03-15" {
			t.Errorf("got start %s, want today", r.Start)
		}
		if r.End.String() != "2024-03-16" {
			t.Errorf("got end %s, want today+1", r.End)
		}
		if rows[1].Coerced() {
			t.Error("expected well-formed row untouched")
		}
	})

	t.Run("blank records are skipped", func(t *testing.T) {
		records := [][]string{
			feedHeader,
			{"", "", "", "", "", "", "", "", "", ""},
			{"RD", "real work", "2024-03-01", "2024-03-02", "Task", "", "", "", "", ""},
		}

		rows, err := Parse(records, today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 1 {
			t.Errorf("got %d rows, want 1", len(rows))
		}
	})

	t.Run("column order follows the header", func(t *testing.T) {
		records := [][]string{
			{"Task", "Person", "End", "Start"},
			{"swapped", "OP", "2024-03-09", "2024-03-04"},
		}

		rows, err := Parse(records, today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		r := rows[0]
		if r.Person != "OP" || r.Task != "swapped" {
			t.Errorf("unexpected fields: %+v", r)
		}
		if r.Start.String() != "2024-03-04" || r.End.String() != "2024-03-09" {
			t.Errorf("got dates %s..%s, want 2024-03-04..2024-03-09", r.Start, r.End)
		}
	})
}
