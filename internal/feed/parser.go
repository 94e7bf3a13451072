package feed

import (
	"errors"
	"strings"

	"github.com/clarkher/piggerTimeLine/internal/models"
)

// Column names the feed's header row is expected to carry. The match is
// exact and case-sensitive; the URL column is optional in older feeds.
const (
	colPerson   = "Person"
	colTask     = "Task"
	colStart    = "Start"
	colEnd      = "End"
	colType     = "Type"
	colStatus   = "Status"
	colProgress = "Progress"
	colColor    = "Color"
	colNote     = "Note"
	colURL      = "URL"
)

// Parse converts raw records (header row first) into rows. Dates that are
// missing or unparseable are substituted (Start with today, End with
// today+1) and flagged, never dropped. Records shorter than the header
// simply have their trailing attributes empty.
func Parse(records [][]string, today models.Date) ([]models.Row, error) {
	if len(records) == 0 {
		return nil, &ParseError{Err: errors.New("feed contains no header row")}
	}

	cols := headerIndex(records[0])
	rows := make([]models.Row, 0, len(records)-1)

	for _, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}

		row := models.Row{
			Person:   field(rec, cols, colPerson),
			Task:     field(rec, cols, colTask),
			Status:   field(rec, cols, colStatus),
			Progress: field(rec, cols, colProgress),
			Color:    field(rec, cols, colColor),
			Note:     field(rec, cols, colNote),
			URL:      field(rec, cols, colURL),
		}

		if field(rec, cols, colType) == string(models.RowTypeMilestone) {
			row.Type = models.RowTypeMilestone
		} else {
			row.Type = models.RowTypeTask
		}

		if d, err := models.ParseDate(field(rec, cols, colStart)); err == nil {
			row.Start = d
		} else {
			row.Start = today
			row.StartCoerced = true
		}
		if d, err := models.ParseDate(field(rec, cols, colEnd)); err == nil {
			row.End = d
		} else {
			row.End = today.AddDays(1)
			row.EndCoerced = true
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// headerIndex maps header names to column positions. Unknown headers are
// ignored; duplicate headers keep the first occurrence.
func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, seen := cols[name]; !seen {
			cols[name] = i
		}
	}
	return cols
}

// field reads one named cell, empty when the column is absent or the
// record is too short.
func field(rec []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func isBlank(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
