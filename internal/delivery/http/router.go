package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventhub/internal/delivery/http/controllers"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/domain"
	"eventhub/internal/metrics"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(svc domain.DiscoveryService, verifier domain.SessionVerifier, logger *slog.Logger) *http.ServeMux {
	events := controllers.NewEventController(logger, svc)
	categories := controllers.NewCategoryController(logger, svc)
	organizer := controllers.NewOrganizerController(logger, svc)
	admin := controllers.NewAdminController(logger, svc)

	requireSession := middleware.RequireSession(verifier, logger, nil)
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)

	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("GET /events", events.ListEvents)
	mux.HandleFunc("GET /events/export.ics", events.ExportEvents)
	mux.HandleFunc("GET /events/latest", events.LatestEvents)
	mux.HandleFunc("GET /events/stats", events.Stats)
	mux.HandleFunc("GET /events/{eventID}", events.GetEvent)

	// Categories
	mux.HandleFunc("GET /categories", categories.ListCategories)
	mux.HandleFunc("GET /categories/names", categories.ListCategoryNames)
	mux.HandleFunc("GET /categories/{slug}/events", categories.CategoryEvents)

	// Session-scoped
	mux.HandleFunc("GET /organizer/events", requireSession(organizer.MyEvents))
	mux.HandleFunc("POST /admin/snapshot/refresh", requireSession(requireAdmin(admin.RefreshSnapshot)))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)
	mux.Handle("GET /metrics", metrics.Handler())

	return mux
}
