package domain

import (
	"context"
	"time"
)

// EventQuery is the full set of listing criteria plus the requested page.
type EventQuery struct {
	SearchText string
	Category   string
	Filters    Filters
	Page       int
}

// Snapshot is an immutable copy of the raw event collection and what was derived from it
// at fetch time.
type Snapshot struct {
	Events     []Event
	Categories []CategorySummary
	Version    string
	FetchedAt  time.Time
}

// SnapshotCache stores the last fetched raw collection so a restart or a failing
// backend does not leave the service empty.
type SnapshotCache interface {
	Load(ctx context.Context) ([]Event, bool, error)
	Store(ctx context.Context, events []Event) error
}

// DiscoveryService answers every listing view from the current snapshot.
type DiscoveryService interface {
	Refresh(ctx context.Context) error
	Version(ctx context.Context) (string, error)
	// Search, Filter and Categories also return the version of the snapshot they read.
	Search(ctx context.Context, q EventQuery) (Page[Event], string, error)
	Filter(ctx context.Context, q EventQuery) ([]Event, string, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	Categories(ctx context.Context) ([]CategorySummary, string, error)
	CategoryNames(ctx context.Context) ([]string, error)
	ExploreCategory(ctx context.Context, slug string, page int) (Category, Page[Event], error)
	Latest(ctx context.Context, limit int) ([]Event, error)
	Stats(ctx context.Context) (EventStats, error)
	OrganizerEvents(ctx context.Context, organizerID, status string, page int) (Page[Event], error)
}
