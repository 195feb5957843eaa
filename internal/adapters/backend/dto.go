package backend

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"eventhub/internal/domain"
)

// eventDTO is an event as returned by /api/organizer/getallevents.
type eventDTO struct {
	ID          string      `json:"_id"`
	Title       string      `json:"eventtitle"`
	Category    *string     `json:"category"`
	VenueName   string      `json:"venueName"`
	City        string      `json:"city"`
	StartDate   wireDate    `json:"startDate"`
	StartTime   string      `json:"startTime"`
	Price       wireNumber  `json:"price"`
	Description string      `json:"description"`
	ImageURL    string      `json:"imageUrl"`
	Status      string      `json:"status"`
	Organizer   string      `json:"organizer"`
	Tickets     []ticketDTO `json:"tickets"`
}

type ticketDTO struct {
	Type     string     `json:"ticketType"`
	Price    wireNumber `json:"price"`
	Quantity wireNumber `json:"quantity"`
}

// wireNumber accepts a JSON number or a numeric string. Anything else decodes to 0.
type wireNumber float64

func (n *wireNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*n = 0
			return nil
		}
		b = []byte(strings.TrimSpace(s))
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = wireNumber(v)
	return nil
}

// dateLayouts are tried in order; the offset written by the backend is preserved.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

// wireDate accepts "YYYY-MM-DD" or an RFC 3339 timestamp. Unparseable values decode to the zero time.
type wireDate struct {
	time.Time
}

func (d *wireDate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		d.Time = time.Time{}
		return nil
	}
	d.Time = parseDate(s)
	return nil
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (e eventDTO) toDomain() domain.Event {
	ev := domain.Event{
		ID:          e.ID,
		Title:       e.Title,
		VenueName:   e.VenueName,
		City:        e.City,
		StartDate:   e.StartDate.Time,
		StartTime:   e.StartTime,
		Price:       float64(e.Price),
		Description: e.Description,
		ImageURL:    e.ImageURL,
		Status:      e.Status,
		OrganizerID: e.Organizer,
	}
	if e.Category != nil {
		ev.Category = *e.Category
	}
	if ev.Price < 0 {
		ev.Price = 0
	}
	for _, t := range e.Tickets {
		ev.Tickets = append(ev.Tickets, domain.TicketTier{
			Type:     t.Type,
			Price:    float64(t.Price),
			Quantity: int(t.Quantity),
		})
	}
	return ev
}
