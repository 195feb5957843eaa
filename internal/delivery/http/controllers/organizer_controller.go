package controllers

import (
	"log/slog"
	"net/http"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

type OrganizerController struct {
	Logger  *slog.Logger
	Service domain.DiscoveryService
}

func NewOrganizerController(logger *slog.Logger, svc domain.DiscoveryService) *OrganizerController {
	return &OrganizerController{Logger: logger, Service: svc}
}

// MyEvents godoc
// @Summary List the caller's events
// @Description Returns one page of events organized by the authenticated user, optionally narrowed to a status ("all" or empty keeps every status).
// @Tags organizer
// @Produce json
// @Security BearerAuth
// @Param status query string false "Event status, e.g. approved, pending, or all"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} controllers.ListEventsSuccessResponse "data contains items and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /organizer/events [get]
func (c *OrganizerController) MyEvents(w http.ResponseWriter, r *http.Request) {
	session, ok := domain.SessionFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	page, err := c.Service.OrganizerEvents(r.Context(), session.UserID, r.URL.Query().Get("status"), helpers.ParsePage(r))
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListEventsResponse{Items: page.Items, Pagination: helpers.NewPaginationMeta(page)})
}
