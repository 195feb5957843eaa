package discovery

import "eventhub/internal/domain"

// DefaultPageSize is the listing grid size (three rows of three cards).
const DefaultPageSize = 9

// Paginate returns the page-th slice of items, pages being pageSize long.
//
// A page below 1 is read as page 1 and a pageSize below 1 falls back to DefaultPageSize.
// Pages past the end yield no items. An empty collection has zero pages.
func Paginate[T any](items []T, page, pageSize int) domain.Page[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	total := len(items)
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}
	res := domain.Page[T]{
		Items:      []T{},
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
	if page > res.TotalPages {
		return res
	}
	start := domain.PaginationParams{Page: page, PageSize: pageSize}.Offset()
	end := start + min(pageSize, total-start)
	res.Items = append(make([]T, 0, end-start), items[start:end]...)
	res.FirstIndex = start + 1
	res.LastIndex = end
	return res
}
