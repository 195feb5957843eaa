package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRefresher_InvalidSchedule(t *testing.T) {
	svc := newTestDiscovery(&fakeEventSource{}, nil, 9)

	_, err := NewRefresher(svc, "every now and then", time.Second, testLogger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse refresh schedule")
}

func TestRefresher_RunRefreshesSnapshot(t *testing.T) {
	src := &fakeEventSource{events: sampleEvents()}
	svc := newTestDiscovery(src, nil, 9)
	r, err := NewRefresher(svc, "*/5 * * * *", time.Second, testLogger)
	require.NoError(t, err)

	r.run()
	assert.Equal(t, int32(1), src.calls.Load())

	src.set(sampleEvents()[:1], nil)
	r.run()
	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalEvents)
}

func TestRefresher_RunFailureKeepsServing(t *testing.T) {
	src := &fakeEventSource{events: sampleEvents()}
	svc := newTestDiscovery(src, nil, 9)
	r, err := NewRefresher(svc, "@every 1h", time.Second, testLogger)
	require.NoError(t, err)
	r.run()

	src.set(nil, errors.New("backend down"))
	r.run()

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalEvents)
}

func TestRefresher_StartStop(t *testing.T) {
	svc := newTestDiscovery(&fakeEventSource{}, nil, 9)
	r, err := NewRefresher(svc, "@every 1h", time.Second, testLogger)
	require.NoError(t, err)

	r.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	r.Stop(ctx)
}
