package controllers

import (
	"log/slog"
	"net/http"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

// CategoriesSuccessResponse is the success response envelope for GET /categories (200).
type CategoriesSuccessResponse struct {
	Data  []domain.CategorySummary `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// CategoryNamesSuccessResponse is the success response envelope for GET /categories/names (200).
type CategoryNamesSuccessResponse struct {
	Data  []string          `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CategoryEventsResponse is the data payload for GET /categories/{slug}/events.
type CategoryEventsResponse struct {
	Category   string                 `json:"category"`
	Meta       domain.CategoryMeta    `json:"meta"`
	Items      []domain.Event         `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// CategoryEventsSuccessResponse is the success response envelope for GET /categories/{slug}/events (200).
type CategoryEventsSuccessResponse struct {
	Data  CategoryEventsResponse `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

type CategoryController struct {
	Logger  *slog.Logger
	Service domain.DiscoveryService
}

func NewCategoryController(logger *slog.Logger, svc domain.DiscoveryService) *CategoryController {
	return &CategoryController{Logger: logger, Service: svc}
}

// ListCategories godoc
// @Summary Category tiles
// @Description Returns one entry per distinct category in order of first appearance, with event count and display metadata. Events without a category are counted under Other.
// @Tags categories
// @Produce json
// @Success 200 {object} controllers.CategoriesSuccessResponse
// @Success 304 "snapshot unchanged"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /categories [get]
func (c *CategoryController) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, version, err := c.Service.Categories(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	if helpers.NotModified(w, r, helpers.ETag(version, r)) {
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, cats)
}

// ListCategoryNames godoc
// @Summary Category dropdown values
// @Description Returns "all" followed by every distinct non-empty category in order of first appearance.
// @Tags categories
// @Produce json
// @Success 200 {object} controllers.CategoryNamesSuccessResponse
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /categories/names [get]
func (c *CategoryController) ListCategoryNames(w http.ResponseWriter, r *http.Request) {
	names, err := c.Service.CategoryNames(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, names)
}

// CategoryEvents godoc
// @Summary Explore a category
// @Description Returns one page of events whose category matches slug case-insensitively, plus the display metadata for the category. Unknown slugs resolve to Other.
// @Tags categories
// @Produce json
// @Param slug path string true "Category slug, e.g. music"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} controllers.CategoryEventsSuccessResponse
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /categories/{slug}/events [get]
func (c *CategoryController) CategoryEvents(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	cat, page, err := c.Service.ExploreCategory(r.Context(), slug, helpers.ParsePage(r))
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CategoryEventsResponse{
		Category:   string(cat),
		Meta:       cat.Meta(),
		Items:      page.Items,
		Pagination: helpers.NewPaginationMeta(page),
	})
}
