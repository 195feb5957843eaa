package domain

import (
	"context"
	"time"
)

// TicketTier is one purchasable ticket type on an event.
type TicketTier struct {
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Event is a ticketed occasion as published by the ticketing backend.
// swagger:model Event
type Event struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Category    string       `json:"category"`
	VenueName   string       `json:"venue_name"`
	City        string       `json:"city"`
	StartDate   time.Time    `json:"start_date"`
	StartTime   string       `json:"start_time,omitempty"`
	Price       float64      `json:"price"`
	Description string       `json:"description,omitempty"`
	ImageURL    string       `json:"image_url,omitempty"`
	Status      string       `json:"status,omitempty"`
	OrganizerID string       `json:"organizer_id,omitempty"`
	Tickets     []TicketTier `json:"tickets,omitempty"`
}

// NewEvent returns a new Event with the fields the discovery engine reads.
func NewEvent(id, title, category, venueName, city string, startDate time.Time, price float64) *Event {
	return &Event{
		ID:        id,
		Title:     title,
		Category:  category,
		VenueName: venueName,
		City:      city,
		StartDate: startDate,
		Price:     price,
	}
}

// StartDay returns the calendar date of the event start in the offset it was recorded with.
// The second return is false when the event has no start date.
func (e Event) StartDay() (CalendarDate, bool) {
	if e.StartDate.IsZero() {
		return CalendarDate{}, false
	}
	return CalendarDateOf(e.StartDate), true
}

// StartsAt combines StartDate with the "HH:MM" StartTime, if present.
func (e Event) StartsAt() time.Time {
	if e.StartDate.IsZero() {
		return time.Time{}
	}
	if e.StartTime == "" {
		return e.StartDate
	}
	clock, err := time.Parse("15:04", e.StartTime)
	if err != nil {
		return e.StartDate
	}
	y, m, d := e.StartDate.Date()
	return time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, e.StartDate.Location())
}

// TicketCount is the sum of quantities over all ticket tiers.
func (e Event) TicketCount() int {
	n := 0
	for _, t := range e.Tickets {
		n += t.Quantity
	}
	return n
}

// EventSource supplies the raw, unfiltered event collection.
type EventSource interface {
	ListEvents(ctx context.Context) ([]Event, error)
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	EventSource
	GetByID(ctx context.Context, id string) (*Event, error)
}

// EventStats is the headline numbers shown on the home page.
// swagger:model EventStats
type EventStats struct {
	TotalEvents  int `json:"total_events"`
	TotalTickets int `json:"total_tickets"`
}
