package helpers

import (
	"net/http"
	"strconv"

	"eventhub/internal/domain"
)

// DefaultPage is used when page is missing, non-numeric or below 1.
const DefaultPage = 1

// ParsePage reads the 1-based page number from the request query string.
// Page size is fixed server-side so listing views stay aligned with the grid.
func ParsePage(r *http.Request) int {
	if s := r.URL.Query().Get("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			return v
		}
	}
	return DefaultPage
}

// PaginationMeta is the pagination metadata included in paginated list responses.
// FirstIndex and LastIndex are 1-based positions of the page's items in the filtered
// collection ("showing 10 to 18 of 20"); both are 0 when the page is empty.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
	FirstIndex int `json:"first_index"`
	LastIndex  int `json:"last_index"`
}

// NewPaginationMeta builds PaginationMeta from a computed page.
func NewPaginationMeta[T any](p domain.Page[T]) PaginationMeta {
	return PaginationMeta{
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		FirstIndex: p.FirstIndex,
		LastIndex:  p.LastIndex,
	}
}
