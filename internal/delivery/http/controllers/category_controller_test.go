package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryController_ListCategories(t *testing.T) {
	svc := &fakeDiscoveryService{
		version: "v1",
		categories: []domain.CategorySummary{
			{Name: "Music", Slug: "music", Count: 2, CategoryMeta: domain.CategoryMusic.Meta()},
			{Name: "Other", Slug: "other", Count: 1, CategoryMeta: domain.CategoryOther.Meta()},
		},
	}
	c := NewCategoryController(testLogger, svc)
	rr := httptest.NewRecorder()
	c.ListCategories(rr, httptest.NewRequest(http.MethodGet, "/categories", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("ETag"))
	data, _ := decodeEnvelope[[]domain.CategorySummary](t, rr.Body)
	require.Len(t, data, 2)
	assert.Equal(t, "Music", data[0].Name)
	assert.Equal(t, 2, data[0].Count)
	assert.Equal(t, domain.CategoryMusic.Meta().Icon, data[0].Icon)
}

func TestCategoryController_ListCategoryNames(t *testing.T) {
	c := NewCategoryController(testLogger, &fakeDiscoveryService{names: []string{"all", "Tech", "Music"}})
	rr := httptest.NewRecorder()
	c.ListCategoryNames(rr, httptest.NewRequest(http.MethodGet, "/categories/names", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	data, _ := decodeEnvelope[[]string](t, rr.Body)
	assert.Equal(t, []string{"all", "Tech", "Music"}, data)
}

func TestCategoryController_CategoryEvents(t *testing.T) {
	svc := &fakeDiscoveryService{
		category: domain.CategoryMusic,
		page:     domain.Page[domain.Event]{Items: []domain.Event{sampleEvent("e1")}, Page: 1, PageSize: 9, Total: 1, TotalPages: 1, FirstIndex: 1, LastIndex: 1},
	}
	c := NewCategoryController(testLogger, svc)
	req := httptest.NewRequest(http.MethodGet, "/categories/music/events?page=1", nil)
	req.SetPathValue("slug", "music")
	rr := httptest.NewRecorder()

	c.CategoryEvents(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	data, _ := decodeEnvelope[CategoryEventsResponse](t, rr.Body)
	assert.Equal(t, "Music", data.Category)
	assert.Equal(t, domain.CategoryMusic.Meta(), data.Meta)
	assert.Len(t, data.Items, 1)
	assert.Equal(t, 1, data.Pagination.LastIndex)
	assert.Equal(t, "music", svc.lastSlug)
	assert.Equal(t, 1, svc.lastPage)
}

func TestCategoryController_CategoryEventsMissingSlug(t *testing.T) {
	c := NewCategoryController(testLogger, &fakeDiscoveryService{})
	rr := httptest.NewRecorder()
	c.CategoryEvents(rr, httptest.NewRequest(http.MethodGet, "/categories//events", nil))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	_, apiErr := decodeEnvelope[any](t, rr.Body)
	require.NotNil(t, apiErr)
	assert.Equal(t, helpers.ErrCodeBadRequest, apiErr.Code)
}
