package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventhub/internal/domain"
)

const eventColumns = `id, title, category, venue_name, city, start_date, start_time, price, description, status, organizer_id`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (domain.Event, error) {
	var e domain.Event
	var categoryNull, startTimeNull, descNull, statusNull, organizerNull sql.NullString
	var startNull sql.NullTime
	var priceNull sql.NullFloat64
	err := row.Scan(
		&e.ID, &e.Title, &categoryNull, &e.VenueName, &e.City,
		&startNull, &startTimeNull, &priceNull, &descNull, &statusNull, &organizerNull,
	)
	if err != nil {
		return domain.Event{}, err
	}
	if categoryNull.Valid {
		e.Category = categoryNull.String
	}
	if startNull.Valid {
		e.StartDate = startNull.Time
	}
	if startTimeNull.Valid {
		e.StartTime = startTimeNull.String
	}
	if priceNull.Valid && priceNull.Float64 > 0 {
		e.Price = priceNull.Float64
	}
	if descNull.Valid {
		e.Description = descNull.String
	}
	if statusNull.Valid {
		e.Status = statusNull.String
	}
	if organizerNull.Valid {
		e.OrganizerID = organizerNull.String
	}
	return e, nil
}

func (r *eventRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		ORDER BY created_at DESC, id
	`, eventColumns)
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachTickets(ctx, events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) attachTickets(ctx context.Context, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}
	index := make(map[string]int, len(events))
	for i, e := range events {
		index[e.ID] = i
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT event_id, ticket_type, price, quantity
		FROM event_tickets
		ORDER BY event_id, ticket_type
	`)
	if err != nil {
		return fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var eventID string
		var t domain.TicketTier
		if err := rows.Scan(&eventID, &t.Type, &t.Price, &t.Quantity); err != nil {
			return err
		}
		if i, ok := index[eventID]; ok {
			events[i].Tickets = append(events[i].Tickets, t)
		}
	}
	return rows.Err()
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE id = $1
	`, eventColumns)
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}
