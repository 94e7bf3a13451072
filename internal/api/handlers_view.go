package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/clarkher/piggerTimeLine/internal/models"
	"github.com/clarkher/piggerTimeLine/internal/view"
)

// SnapshotProvider hands out the latest feed snapshot.
type SnapshotProvider interface {
	Snapshot() models.FeedSnapshot
}

type ViewHandler struct {
	snapshots SnapshotProvider
	builder   *view.Builder
}

func NewViewHandler(snapshots SnapshotProvider, builder *view.Builder) *ViewHandler {
	return &ViewHandler{snapshots: snapshots, builder: builder}
}

// viewMeta reports snapshot freshness alongside the derived view so the
// page can show a staleness indicator instead of silently serving old data.
type viewMeta struct {
	FetchedAt   string `json:"fetchedAt"`
	AttemptedAt string `json:"attemptedAt"`
	Stale       bool   `json:"stale"`
	LastError   string `json:"lastError,omitempty"`
	Rows        int    `json:"rows"`
	Coerced     int    `json:"coerced"`
}

type viewResponse struct {
	models.DerivedView
	Meta viewMeta `json:"meta"`
}

// View handles GET /api/view. The widget calls it again on every filter
// control change, so it recomputes the projection from the latest
// snapshot each time.
func (h *ViewHandler) View(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshots.Snapshot()
	dv := h.builder.Build(snap.Rows, filterFromQuery(r))

	writeJSON(w, http.StatusOK, viewResponse{
		DerivedView: dv,
		Meta:        snapshotMeta(snap),
	})
}

// Link handles GET /api/rows/{id}/link, the entry-click callback.
func (h *ViewHandler) Link(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid row id")
		return
	}

	snap := h.snapshots.Snapshot()
	if idx < 0 || idx >= len(snap.Rows) {
		writeError(w, http.StatusNotFound, "row not found")
		return
	}

	writeJSON(w, http.StatusOK, view.ResolveLink(snap.Rows[idx]))
}

// filterFromQuery decodes the filter controls from query parameters.
// Anything absent or unparseable keeps its default.
func filterFromQuery(r *http.Request) models.FilterState {
	f := models.DefaultFilter()
	q := r.URL.Query()
	f.Person = q.Get("person")
	f.Status = q.Get("status")
	if v := q.Get("milestones"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.ShowMilestones = b
		}
	}
	return f
}

func snapshotMeta(snap models.FeedSnapshot) viewMeta {
	m := viewMeta{
		Stale:     snap.Stale(),
		LastError: snap.LastError,
		Rows:      len(snap.Rows),
		Coerced:   snap.CoercedCount(),
	}
	if !snap.FetchedAt.IsZero() {
		m.FetchedAt = snap.FetchedAt.Format(time.RFC3339)
	}
	if !snap.AttemptedAt.IsZero() {
		m.AttemptedAt = snap.AttemptedAt.Format(time.RFC3339)
	}
	return m
}
