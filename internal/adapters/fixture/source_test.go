package fixture

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
events:
  - id: ev-1
    title: Jazz Night
    category: Music
    venue_name: Grand Hall
    city: Chennai
    start_date: "2025-05-10"
    start_time: "19:30"
    price: 499
    tickets:
      - type: VIP
        price: 999
        quantity: 20
  - id: ev-2
    title: Unsorted
    venue_name: Hub
    city: Pune
    start_date: "2025-06-01T18:00:00+05:30"
    price: 0
`

func TestFileEventSource_ListEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	events, err := NewFileEventSource(path).ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "Jazz Night", events[0].Title)
	assert.Equal(t, time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), events[0].StartDate)
	assert.Equal(t, 20, events[0].TicketCount())

	assert.Equal(t, "", events[1].Category)
	d, ok := events[1].StartDay()
	require.True(t, ok)
	assert.Equal(t, "2025-06-01", d.String())
}

func TestFileEventSource_Errors(t *testing.T) {
	_, err := NewFileEventSource(filepath.Join(t.TempDir(), "missing.yaml")).ListEvents(context.Background())
	require.Error(t, err)

	_, err = Parse([]byte("events: [unclosed"))
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewFileEventSource("whatever").ListEvents(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
