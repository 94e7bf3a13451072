// Package view derives the display-ready timeline projection from a row
// set and a filter selection. Build is pure: the same rows, filter, and
// clock always produce a deeply equal DerivedView, and nothing is cached
// between calls.
package view

import (
	"strconv"
	"strings"
	"time"

	"github.com/clarkher/piggerTimeLine/internal/models"
)

// Options configures a Builder.
type Options struct {
	// Policy selects the coloring strategy. Defaults to ColorByPerson.
	Policy ColoringPolicy
	// Palette supplies the color tables. Defaults to DefaultPalette.
	Palette *Palette
	// PadDays widens the derived date window on each side.
	PadDays int
	// Now is the clock used for the empty-window fallback and for date
	// coercion context. Defaults to time.Now.
	Now func() time.Time
}

// Builder turns rows plus a filter into a DerivedView.
type Builder struct {
	policy  ColoringPolicy
	palette *Palette
	padDays int
	now     func() time.Time
}

// NewBuilder constructs a Builder, filling unset options with defaults.
func NewBuilder(opts Options) *Builder {
	if !opts.Policy.Valid() {
		opts.Policy = ColorByPerson
	}
	if opts.Palette == nil {
		opts.Palette = DefaultPalette()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Builder{
		policy:  opts.Policy,
		palette: opts.Palette,
		padDays: opts.PadDays,
		now:     opts.Now,
	}
}

// Build computes the view for one filter selection. Facets always come
// from the full row set so narrowing one dropdown never empties the
// others; everything else derives from the visible subset.
func (b *Builder) Build(rows []models.Row, filter models.FilterState) models.DerivedView {
	today := models.DateOf(b.now())

	dv := models.DerivedView{
		Entries:     []models.TimelineEntry{},
		Resources:   []models.Resource{},
		Markers:     []models.BackgroundMarker{},
		Facets:      collectFacets(rows),
		Filter:      filter,
		VisibleRows: []models.Row{},
	}

	seenPerson := map[string]bool{}
	for i, r := range rows {
		if !filter.Matches(r) {
			continue
		}
		id := strconv.Itoa(i)

		dv.Entries = append(dv.Entries, models.TimelineEntry{
			ID:              id,
			ResourceID:      r.Person,
			Title:           r.Task,
			Start:           r.Start,
			End:             r.End,
			BackgroundColor: resolveColor(r, b.policy, b.palette),
			ClassName:       statusClass(r.Status),
			Row:             r,
		})
		dv.VisibleRows = append(dv.VisibleRows, r)

		if !seenPerson[r.Person] {
			seenPerson[r.Person] = true
			dv.Resources = append(dv.Resources, models.Resource{
				ID:    r.Person,
				Title: r.Person,
			})
		}
		if r.IsMilestone() {
			dv.Markers = append(dv.Markers, models.BackgroundMarker{
				ID:         "m" + id,
				ResourceID: r.Person,
				Date:       r.Start,
				Color:      b.palette.Milestone,
			})
		}
	}

	dv.Window = deriveWindow(dv.VisibleRows, b.padDays, today)
	return dv
}

// collectFacets gathers the distinct non-empty person and status values
// over the full row set, in first-seen order.
func collectFacets(rows []models.Row) models.Facets {
	f := models.Facets{People: []string{}, Statuses: []string{}}
	seenPerson := map[string]bool{}
	seenStatus := map[string]bool{}
	for _, r := range rows {
		if p := strings.TrimSpace(r.Person); p != "" && !seenPerson[p] {
			seenPerson[p] = true
			f.People = append(f.People, p)
		}
		if s := strings.TrimSpace(r.Status); s != "" && !seenStatus[s] {
			seenStatus[s] = true
			f.Statuses = append(f.Statuses, s)
		}
	}
	return f
}

// statusClass maps a status to a CSS class name, collapsing internal
// whitespace so the widget gets a single token.
func statusClass(status string) string {
	fields := strings.Fields(status)
	if len(fields) == 0 {
		return ""
	}
	return "status-" + strings.Join(fields, "-")
}
