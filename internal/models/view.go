package models

// TimelineEntry is one visible row mapped to the calendar widget's event
// schema. ID is the row's positional index in the current snapshot, so
// identity is not stable across refreshes.
type TimelineEntry struct {
	ID              string `json:"id"`
	ResourceID      string `json:"resourceId"`
	Title           string `json:"title"`
	Start           Date   `json:"start"`
	End             Date   `json:"end"`
	BackgroundColor string `json:"backgroundColor"`
	ClassName       string `json:"className"`
	Row             Row    `json:"row"`
}

// Resource is one lane of the resource timeline: a distinct person.
type Resource struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// BackgroundMarker is the non-interactive date overlay produced for each
// visible milestone row. It spans only the start date.
type BackgroundMarker struct {
	ID         string `json:"id"`
	ResourceID string `json:"resourceId"`
	Date       Date   `json:"date"`
	Color      string `json:"color"`
}

// DateWindow is the visible date range the widget should display,
// both ends inclusive.
type DateWindow struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// Facets are the distinct filterable values observed in the full
// unfiltered row set, in first-seen order, empty values excluded.
type Facets struct {
	People   []string `json:"people"`
	Statuses []string `json:"statuses"`
}

// DerivedView is the display-ready projection of the row set for one
// FilterState. It is recomputed on every request and never stored.
type DerivedView struct {
	Entries   []TimelineEntry    `json:"entries"`
	Resources []Resource         `json:"resources"`
	Markers   []BackgroundMarker `json:"markers"`
	Window    DateWindow         `json:"window"`
	Facets    Facets             `json:"facets"`
	Filter    FilterState        `json:"filter"`

	// VisibleRows is the filtered row subset the entries were built from.
	// Entries carry the rows already, so it is not serialized twice.
	VisibleRows []Row `json:"-"`
}
