package discovery

import (
	"slices"

	"eventhub/internal/domain"
)

// DefaultLatestLimit is how many cards the home page "upcoming" strip shows.
const DefaultLatestLimit = 6

// Latest returns up to limit events ordered by start (date plus start time), newest first.
// Events with equal starts keep their input order.
func Latest(events []domain.Event, limit int) []domain.Event {
	if limit < 1 {
		limit = DefaultLatestLimit
	}
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b domain.Event) int {
		return b.StartsAt().Compare(a.StartsAt())
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	if sorted == nil {
		sorted = []domain.Event{}
	}
	return sorted
}

// Summarize counts events and the tickets offered across them.
func Summarize(events []domain.Event) domain.EventStats {
	st := domain.EventStats{TotalEvents: len(events)}
	for _, e := range events {
		st.TotalTickets += e.TicketCount()
	}
	return st
}

// FindByID returns the event with the given id.
func FindByID(events []domain.Event, id string) (domain.Event, bool) {
	i := slices.IndexFunc(events, func(e domain.Event) bool { return e.ID == id })
	if i < 0 {
		return domain.Event{}, false
	}
	return events[i], true
}
