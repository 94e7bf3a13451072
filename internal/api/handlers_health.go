package api

import (
	"net/http"
	"time"
)

type HealthHandler struct {
	snapshots SnapshotProvider
}

func NewHealthHandler(snapshots SnapshotProvider) *HealthHandler {
	return &HealthHandler{snapshots: snapshots}
}

type serviceCheck struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	FetchedAt string `json:"fetchedAt,omitempty"`
}

type healthResponse struct {
	Status   string       `json:"status"`
	Feed     serviceCheck `json:"feed"`
	RowCount int          `json:"rowCount"`
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshots.Snapshot()

	resp := healthResponse{
		Status:   "ok",
		Feed:     serviceCheck{Status: "ok"},
		RowCount: len(snap.Rows),
	}
	if !snap.FetchedAt.IsZero() {
		resp.Feed.FetchedAt = snap.FetchedAt.Format(time.RFC3339)
	}

	// Stale covers both a failed last attempt and never having fetched.
	if snap.Stale() {
		resp.Status = "degraded"
		resp.Feed.Status = "error"
		resp.Feed.Message = snap.LastError
		if snap.LastError == "" {
			resp.Feed.Message = "no successful fetch yet"
		}
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}
