package view

import (
	"strings"

	"github.com/clarkher/piggerTimeLine/internal/models"
)

// Link is the resolved click target for a row.
type Link struct {
	// Href is the URL field when present, otherwise the note text.
	Href string `json:"href"`
	// Actionable reports whether Href starts with "http" and can be
	// opened directly. Notes that merely mention a URL stay inert.
	Actionable bool `json:"actionable"`
}

// ResolveLink picks a row's click target: the URL field wins, the note
// is the fallback.
func ResolveLink(r models.Row) Link {
	href := r.URL
	if href == "" {
		href = r.Note
	}
	return Link{
		Href:       href,
		Actionable: strings.HasPrefix(href, "http"),
	}
}
