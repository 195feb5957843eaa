// Package discovery selects and organizes a working set of events for display:
// compound filtering, category aggregation and pagination. Every function is pure and
// returns freshly allocated results; input slices are never modified.
package discovery

import (
	"math"
	"strings"

	"golang.org/x/text/cases"

	"eventhub/internal/domain"
)

// predicate is the compiled form of one listing query. Inactive criteria keep their zero value.
type predicate struct {
	fold     cases.Caser
	text     string
	category string
	date     domain.CalendarDate
	hasDate  bool
	location string
	priceMin float64
	priceMax float64
	hasPrice bool
}

func compile(searchText, category string, f domain.Filters) *predicate {
	p := &predicate{fold: cases.Fold(), priceMax: math.Inf(1)}
	if t := strings.TrimSpace(searchText); t != "" {
		p.text = p.fold.String(t)
	}
	if c := strings.TrimSpace(category); c != "" && c != domain.AllCategories {
		p.category = c
	}
	if f.IsZero() {
		return p
	}
	p.date, p.hasDate = domain.ParseCalendarDate(f.Date)
	if loc := strings.TrimSpace(f.Location); loc != "" {
		p.location = p.fold.String(loc)
	}
	if v, ok := domain.ParsePriceBound(f.PriceMin); ok {
		p.priceMin = v
		p.hasPrice = true
	}
	if v, ok := domain.ParsePriceBound(f.PriceMax); ok {
		p.priceMax = v
		p.hasPrice = true
	}
	return p
}

func (p *predicate) contains(field, needle string) bool {
	return field != "" && strings.Contains(p.fold.String(field), needle)
}

func (p *predicate) match(e domain.Event) bool {
	if p.text != "" &&
		!p.contains(e.Title, p.text) &&
		!p.contains(e.Category, p.text) &&
		!p.contains(e.VenueName, p.text) &&
		!p.contains(e.City, p.text) {
		return false
	}
	if p.category != "" && e.Category != p.category {
		return false
	}
	if p.hasDate {
		day, ok := e.StartDay()
		if !ok || day != p.date {
			return false
		}
	}
	if p.location != "" && !p.contains(e.VenueName, p.location) && !p.contains(e.City, p.location) {
		return false
	}
	if p.hasPrice && (e.Price < p.priceMin || e.Price > p.priceMax) {
		return false
	}
	return true
}

// ApplyFilters returns the events of raw that satisfy every active criterion, in input order.
//
// searchText matches title, category, venue name or city case-insensitively; category must
// match exactly unless it is empty or domain.AllCategories; the optional filters restrict
// by start date, location and an inclusive price range. The result never shares its
// backing array with raw.
func ApplyFilters(raw []domain.Event, searchText, category string, f domain.Filters) []domain.Event {
	p := compile(searchText, category, f)
	out := make([]domain.Event, 0, len(raw))
	for _, e := range raw {
		if p.match(e) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByCategorySlug keeps events whose category equals slug ignoring case.
// Uncategorized events belong to the "Other" slug, matching AggregateCategories.
func FilterByCategorySlug(raw []domain.Event, slug string) []domain.Event {
	slug = strings.TrimSpace(slug)
	out := make([]domain.Event, 0)
	for _, e := range raw {
		if strings.EqualFold(bucketName(e.Category), slug) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByStatus keeps events with the given status; "all" or empty keeps everything.
func FilterByStatus(raw []domain.Event, status string) []domain.Event {
	status = strings.TrimSpace(status)
	out := make([]domain.Event, 0, len(raw))
	for _, e := range raw {
		if status == "" || status == domain.AllStatuses || e.Status == status {
			out = append(out, e)
		}
	}
	return out
}

// FilterByOrganizer keeps events owned by organizerID.
func FilterByOrganizer(raw []domain.Event, organizerID string) []domain.Event {
	out := make([]domain.Event, 0)
	for _, e := range raw {
		if organizerID != "" && e.OrganizerID == organizerID {
			out = append(out, e)
		}
	}
	return out
}
