package models

// FilterState is the transient per-request filter selection. It is decoded
// from query parameters on every request and never stored.
type FilterState struct {
	Person         string `json:"person"`
	Status         string `json:"status"`
	ShowMilestones bool   `json:"milestones"`
}

// DefaultFilter returns the selection a fresh session starts with:
// all people, all statuses, milestones shown.
func DefaultFilter() FilterState {
	return FilterState{ShowMilestones: true}
}

// Matches reports whether the row passes all three filter predicates.
func (f FilterState) Matches(r Row) bool {
	if !f.ShowMilestones && r.IsMilestone() {
		return false
	}
	if f.Person != "" && f.Person != r.Person {
		return false
	}
	if f.Status != "" && f.Status != r.Status {
		return false
	}
	return true
}
