package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"eventhub/internal/domain"
)

const allEventsPath = "/api/organizer/getallevents"

type httpEventSource struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

// NewHTTPEventSource returns an EventSource that reads the public event list from the
// ticketing backend at baseURL. Outbound calls are limited to rps requests per second;
// a non-positive rps disables the limit.
func NewHTTPEventSource(client *http.Client, baseURL string, rps float64) domain.EventSource {
	if client == nil {
		client = http.DefaultClient
	}
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &httpEventSource{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		limiter: rate.NewLimiter(limit, 1),
	}
}

func (s *httpEventSource) ListEvents(ctx context.Context) ([]domain.Event, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for backend rate limit: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+allEventsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backend returned status: %d", resp.StatusCode)
	}

	var data []eventDTO
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode events response: %w", err)
	}
	events := make([]domain.Event, 0, len(data))
	for _, d := range data {
		events = append(events, d.toDomain())
	}
	return events, nil
}
