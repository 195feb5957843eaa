package helpers

import (
	"net/http"
	"strconv"

	"eventhub/internal/domain"
)

// ParseEventQuery reads the listing criteria from the query string. Values are passed through
// as typed; an empty category means "all" and unusable dates or prices are ignored later by
// the filter.
func ParseEventQuery(r *http.Request) domain.EventQuery {
	q := r.URL.Query()
	return domain.EventQuery{
		SearchText: q.Get("q"),
		Category:   q.Get("category"),
		Filters: domain.Filters{
			Date:     q.Get("date"),
			Location: q.Get("location"),
			PriceMin: q.Get("price_min"),
			PriceMax: q.Get("price_max"),
		},
		Page: ParsePage(r),
	}
}

// ParseLimit reads a positive integer query parameter, returning def when it is missing or invalid.
func ParseLimit(r *http.Request, name string, def, max int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 1 {
		return def
	}
	if v > max {
		return max
	}
	return v
}
