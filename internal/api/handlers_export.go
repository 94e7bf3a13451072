package api

import (
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/clarkher/piggerTimeLine/internal/models"
	"github.com/clarkher/piggerTimeLine/internal/view"
)

type ExportHandler struct {
	snapshots SnapshotProvider
	builder   *view.Builder
}

func NewExportHandler(snapshots SnapshotProvider, builder *view.Builder) *ExportHandler {
	return &ExportHandler{snapshots: snapshots, builder: builder}
}

// Export handles GET /api/export.ics. It honors the same filter
// parameters as the view endpoint and emits the visible rows as all-day
// VEVENTs.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshots.Snapshot()
	dv := h.builder.Build(snap.Rows, filterFromQuery(r))

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//piggerTimeLine//schedule export//EN")

	stamp := time.Now().UTC()
	for _, row := range dv.VisibleRows {
		ev := cal.AddEvent(eventUID(row))
		ev.SetDtStampTime(stamp)
		ev.SetSummary(row.Task)
		ev.SetAllDayStartAt(row.Start.Time)
		// DTEND is exclusive for all-day events per RFC 5545, while the
		// feed's End is inclusive.
		ev.SetAllDayEndAt(row.End.AddDays(1).Time)

		if row.Status != "" {
			ev.SetProperty(ics.ComponentPropertyCategories, row.Status)
		}
		if row.Note != "" {
			ev.SetDescription(row.Note)
		}
		if link := view.ResolveLink(row); link.Actionable {
			ev.SetURL(link.Href)
		}
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="timeline.ics"`)
	_, _ = w.Write([]byte(cal.Serialize()))
}

// eventUID derives a stable identity from the row's content. Positional
// ids shift whenever the sheet is reordered, which would make calendar
// clients see every event as new on each import.
func eventUID(r models.Row) string {
	sum := sha1.Sum([]byte(r.Person + "|" + r.Task + "|" + r.Start.String()))
	return hex.EncodeToString(sum[:])[:12] + "@piggertimeline"
}
