package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Selector values meaning "no restriction" for the category and status pickers.
const (
	AllCategories = "all"
	AllStatuses   = "all"
)

// Filters holds the optional criteria of the listing filter panel, as submitted by a form.
// Every field is a raw string; empty or malformed values switch the criterion off.
type Filters struct {
	Date     string `json:"date"`
	Location string `json:"location"`
	PriceMin string `json:"price_min"`
	PriceMax string `json:"price_max"`
}

// IsZero reports whether no optional criterion is set.
func (f Filters) IsZero() bool {
	return strings.TrimSpace(f.Date) == "" &&
		strings.TrimSpace(f.Location) == "" &&
		strings.TrimSpace(f.PriceMin) == "" &&
		strings.TrimSpace(f.PriceMax) == ""
}

// ParsePriceBound coerces a form value into a price bound.
// It returns false for empty, non-numeric and NaN input, which callers treat as unbounded.
func ParsePriceBound(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// CalendarDate is a date without time of day or zone.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// CalendarDateOf returns the date of t in t's own location.
func CalendarDateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// ParseCalendarDate parses "YYYY-MM-DD".
func ParseCalendarDate(s string) (CalendarDate, bool) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return CalendarDate{}, false
	}
	return CalendarDateOf(t), true
}

// String formats the date as "YYYY-MM-DD".
func (d CalendarDate) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(time.DateOnly)
}
