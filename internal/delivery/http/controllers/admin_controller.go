package controllers

import (
	"log/slog"
	"net/http"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/domain"
)

// RefreshSnapshotResponse is the data payload for POST /admin/snapshot/refresh (200).
type RefreshSnapshotResponse struct {
	Version string `json:"version"`
}

// RefreshSnapshotSuccessResponse is the success response envelope for POST /admin/snapshot/refresh (200).
type RefreshSnapshotSuccessResponse struct {
	Data  RefreshSnapshotResponse `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

type AdminController struct {
	Logger  *slog.Logger
	Service domain.DiscoveryService
}

func NewAdminController(logger *slog.Logger, svc domain.DiscoveryService) *AdminController {
	return &AdminController{Logger: logger, Service: svc}
}

// RefreshSnapshot godoc
// @Summary Force a snapshot refresh
// @Description Fetches the event collection from the source immediately. On failure the previous snapshot keeps being served and 502 is returned. Requires an admin session.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.RefreshSnapshotSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 502 {object} helpers.APIResponse "error.code: unavailable"
// @Router /admin/snapshot/refresh [post]
func (c *AdminController) RefreshSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Refresh(r.Context()); err != nil {
		c.Logger.ErrorContext(r.Context(), "snapshot refresh failed", "request_id", middleware.RequestIDFromContext(r.Context()), "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeUnavailable, err.Error())
		return
	}
	version, err := c.Service.Version(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RefreshSnapshotResponse{Version: version})
}
