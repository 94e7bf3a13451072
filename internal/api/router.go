package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/clarkher/piggerTimeLine/internal/view"
)

// NewRouter creates the Chi router with all routes and middleware.
func NewRouter(snapshots SnapshotProvider, builder *view.Builder, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware (runs on ALL routes including /health)
	r.Use(CORS)
	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recovery(logger))

	healthH := NewHealthHandler(snapshots)
	viewH := NewViewHandler(snapshots, builder)
	exportH := NewExportHandler(snapshots, builder)

	r.Get("/health", healthH.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/view", viewH.View)
		r.Get("/rows/{id}/link", viewH.Link)
		r.Get("/export.ics", exportH.Export)
	})

	return r
}
