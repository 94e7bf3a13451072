package view

import "github.com/clarkher/piggerTimeLine/internal/models"

// deriveWindow computes the date range the timeline should display:
// the min and max over the visible rows' dates, padded by pad days on
// each side. Coerced dates are placeholders, not schedule data, so they
// do not stretch the window. With no real dates the window collapses
// to [today, today].
func deriveWindow(rows []models.Row, pad int, today models.Date) models.DateWindow {
	var lo, hi models.Date
	seen := false

	observe := func(d models.Date) {
		if !seen {
			lo, hi = d, d
			seen = true
			return
		}
		if d.Before(lo.Time) {
			lo = d
		}
		if d.After(hi.Time) {
			hi = d
		}
	}

	for _, r := range rows {
		if !r.StartCoerced {
			observe(r.Start)
		}
		if !r.EndCoerced {
			observe(r.End)
		}
	}

	if !seen {
		return models.DateWindow{Start: today, End: today}
	}
	return models.DateWindow{
		Start: lo.AddDays(-pad),
		End:   hi.AddDays(pad),
	}
}
