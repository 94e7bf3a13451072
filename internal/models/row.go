package models

// RowType classifies a feed row as a regular task bar or a milestone.
type RowType string

const (
	RowTypeTask      RowType = "Task"
	RowTypeMilestone RowType = "Milestone"
)

// Row is one task or milestone record from the schedule feed.
// Start and End are inclusive calendar dates; start <= end is NOT enforced,
// malformed ranges pass through as-is.
type Row struct {
	Person   string  `json:"person"`
	Task     string  `json:"task"`
	Start    Date    `json:"start"`
	End      Date    `json:"end"`
	Type     RowType `json:"type"`
	Status   string  `json:"status"`
	Progress string  `json:"progress,omitempty"`
	Color    string  `json:"color,omitempty"`
	Note     string  `json:"note,omitempty"`
	URL      string  `json:"url,omitempty"`

	// Set when the source cell was missing or unparseable and a synthetic
	// date was substituted (Start -> today, End -> today+1). Coerced rows
	// stay visible but render at the today column.
	StartCoerced bool `json:"startCoerced,omitempty"`
	EndCoerced   bool `json:"endCoerced,omitempty"`
}

// IsMilestone reports whether the row is a milestone record.
func (r Row) IsMilestone() bool {
	return r.Type == RowTypeMilestone
}

// Coerced reports whether either date endpoint was substituted.
func (r Row) Coerced() bool {
	return r.StartCoerced || r.EndCoerced
}
