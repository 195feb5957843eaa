package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventhub/internal/adapters/ical"
	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/discovery"
	"eventhub/internal/domain"
)

// MaxLatestLimit caps GET /events/latest?limit=.
const MaxLatestLimit = 50

// ListEventsResponse is the data payload for paginated event listings.
type ListEventsResponse struct {
	Items      []domain.Event         `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListEventsSuccessResponse is the success response envelope for GET /events (200).
type ListEventsSuccessResponse struct {
	Data  ListEventsResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// GetEventSuccessResponse is the success response envelope for GET /events/{eventID} (200).
type GetEventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// LatestEventsSuccessResponse is the success response envelope for GET /events/latest (200).
type LatestEventsSuccessResponse struct {
	Data  []domain.Event    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventStatsSuccessResponse is the success response envelope for GET /events/stats (200).
type EventStatsSuccessResponse struct {
	Data  domain.EventStats `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.DiscoveryService
	Now     func() time.Time
}

func NewEventController(logger *slog.Logger, svc domain.DiscoveryService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
		Now:     time.Now,
	}
}

// writeServiceError maps discovery errors onto the response envelope. Unexpected errors are logged.
func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error, notFound string) {
	attrs := []any{"request_id", middleware.RequestIDFromContext(r.Context()), "path", r.URL.Path, "method", r.Method, "err", err}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, notFound)
	case errors.Is(err, domain.ErrForbidden):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
	case errors.Is(err, domain.ErrSnapshotUnavailable):
		logger.WarnContext(r.Context(), "request failed", attrs...)
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeUnavailable, "events are temporarily unavailable")
	default:
		logger.ErrorContext(r.Context(), "request failed", attrs...)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// ListEvents godoc
// @Summary Search and filter events
// @Description Returns one page of events matching every active criterion. Free text is matched case-insensitively against title, category, venue and city; category is an exact match ("all" or empty disables it); date is YYYY-MM-DD; location matches venue or city; price bounds are inclusive and ignored when not numeric. Responses carry an ETag; a matching If-None-Match yields 304.
// @Tags events
// @Produce json
// @Param q query string false "Free-text search"
// @Param category query string false "Exact category name or all"
// @Param date query string false "Calendar date (YYYY-MM-DD)"
// @Param location query string false "Venue or city substring"
// @Param price_min query string false "Inclusive lower price bound"
// @Param price_max query string false "Inclusive upper price bound"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} controllers.ListEventsSuccessResponse "data contains items and pagination"
// @Success 304 "snapshot and criteria unchanged"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	page, version, err := c.Service.Search(r.Context(), helpers.ParseEventQuery(r))
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	if helpers.NotModified(w, r, helpers.ETag(version, r)) {
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListEventsResponse{Items: page.Items, Pagination: helpers.NewPaginationMeta(page)})
}

// ExportEvents godoc
// @Summary Export filtered events as iCalendar
// @Description Same criteria as GET /events without pagination; returns a text/calendar document with one VEVENT per dated event.
// @Tags events
// @Produce text/calendar
// @Param q query string false "Free-text search"
// @Param category query string false "Exact category name or all"
// @Param date query string false "Calendar date (YYYY-MM-DD)"
// @Param location query string false "Venue or city substring"
// @Param price_min query string false "Inclusive lower price bound"
// @Param price_max query string false "Inclusive upper price bound"
// @Success 200 {string} string "iCalendar document"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /events/export.ics [get]
func (c *EventController) ExportEvents(w http.ResponseWriter, r *http.Request) {
	events, version, err := c.Service.Filter(r.Context(), helpers.ParseEventQuery(r))
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	if helpers.NotModified(w, r, helpers.ETag(version, r)) {
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="events.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(ical.Export(events, c.Now())))
}

// LatestEvents godoc
// @Summary Latest events
// @Description Returns up to limit events ordered by start date and time, newest first.
// @Tags events
// @Produce json
// @Param limit query int false "Maximum number of events (default 6, max 50)"
// @Success 200 {object} controllers.LatestEventsSuccessResponse
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /events/latest [get]
func (c *EventController) LatestEvents(w http.ResponseWriter, r *http.Request) {
	limit := helpers.ParseLimit(r, "limit", discovery.DefaultLatestLimit, MaxLatestLimit)
	events, err := c.Service.Latest(r.Context(), limit)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// Stats godoc
// @Summary Event totals
// @Description Returns the number of events and the number of tickets offered across them.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.EventStatsSuccessResponse
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /events/stats [get]
func (c *EventController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Service.Stats(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stats)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Description Returns a single event including its ticket tiers.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.GetEventSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Service.GetEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}
