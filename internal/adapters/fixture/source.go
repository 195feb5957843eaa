package fixture

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"eventhub/internal/domain"
)

// fileEvent is one entry of an events YAML file.
type fileEvent struct {
	ID          string       `yaml:"id"`
	Title       string       `yaml:"title"`
	Category    string       `yaml:"category"`
	VenueName   string       `yaml:"venue_name"`
	City        string       `yaml:"city"`
	StartDate   string       `yaml:"start_date"`
	StartTime   string       `yaml:"start_time"`
	Price       float64      `yaml:"price"`
	Description string       `yaml:"description"`
	Status      string       `yaml:"status"`
	OrganizerID string       `yaml:"organizer_id"`
	Tickets     []fileTicket `yaml:"tickets"`
}

type fileTicket struct {
	Type     string  `yaml:"type"`
	Price    float64 `yaml:"price"`
	Quantity int     `yaml:"quantity"`
}

type fileDocument struct {
	Events []fileEvent `yaml:"events"`
}

type fileEventSource struct {
	path string
}

// NewFileEventSource returns an EventSource backed by a YAML file. The file is re-read on
// every call so edits show up on the next snapshot refresh.
func NewFileEventSource(path string) domain.EventSource {
	return &fileEventSource{path: path}
}

func (s *fileEventSource) ListEvents(ctx context.Context) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read events file: %w", err)
	}
	return Parse(data)
}

// Parse decodes an events YAML document.
func Parse(data []byte) ([]domain.Event, error) {
	var doc fileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse events file: %w", err)
	}
	events := make([]domain.Event, 0, len(doc.Events))
	for _, fe := range doc.Events {
		e := domain.Event{
			ID:          fe.ID,
			Title:       fe.Title,
			Category:    fe.Category,
			VenueName:   fe.VenueName,
			City:        fe.City,
			StartTime:   fe.StartTime,
			Price:       fe.Price,
			Description: fe.Description,
			Status:      fe.Status,
			OrganizerID: fe.OrganizerID,
		}
		if fe.StartDate != "" {
			if t, err := time.Parse(time.DateOnly, fe.StartDate); err == nil {
				e.StartDate = t
			} else if t, err := time.Parse(time.RFC3339, fe.StartDate); err == nil {
				e.StartDate = t
			}
		}
		for _, t := range fe.Tickets {
			e.Tickets = append(e.Tickets, domain.TicketTier{Type: t.Type, Price: t.Price, Quantity: t.Quantity})
		}
		events = append(events, e)
	}
	return events, nil
}
