package services

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/crypto/blake2b"

	"eventhub/internal/discovery"
	"eventhub/internal/domain"
	"eventhub/internal/metrics"
)

type discoveryService struct {
	source         domain.EventSource
	cache          domain.SnapshotCache
	logger         *slog.Logger
	pageSize       int
	contextTimeout time.Duration
	now            func() time.Time

	mu   sync.RWMutex
	snap *domain.Snapshot

	// refreshMu serializes fetches so concurrent cold-start requests share one backend call.
	refreshMu sync.Mutex
}

// NewDiscoveryService returns a DiscoveryService that serves every query from an in-memory
// snapshot of source. cache may be nil; when set it is written after each successful fetch
// and read when the source fails before any snapshot exists.
func NewDiscoveryService(
	source domain.EventSource,
	cache domain.SnapshotCache,
	logger *slog.Logger,
	pageSize int,
	timeout time.Duration,
) domain.DiscoveryService {
	if pageSize < 1 {
		pageSize = discovery.DefaultPageSize
	}
	return &discoveryService{
		source:         source,
		cache:          cache,
		logger:         logger,
		pageSize:       pageSize,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *discoveryService) current() *domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

func (s *discoveryService) swap(snap *domain.Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
	metrics.SetSnapshot(len(snap.Events), snap.FetchedAt)
}

func (s *discoveryService) build(events []domain.Event) (*domain.Snapshot, error) {
	b, err := json.Marshal(events)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	sum := blake2b.Sum256(b)
	return &domain.Snapshot{
		Events:     events,
		Categories: discovery.AggregateCategories(events),
		Version:    hex.EncodeToString(sum[:16]),
		FetchedAt:  s.now(),
	}, nil
}

// Refresh fetches the raw collection and replaces the snapshot. If the fetch fails the
// previous snapshot keeps being served; with no previous snapshot the cache is tried.
func (s *discoveryService) Refresh(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()
	return s.refresh(ctx)
}

func (s *discoveryService) refresh(ctx context.Context) error {
	events, err := s.source.ListEvents(ctx)
	if err != nil {
		metrics.RecordRefresh("error")
		if s.current() != nil {
			return fmt.Errorf("fetch events: %w", err)
		}
		if warmErr := s.warmFromCache(ctx); warmErr != nil {
			return fmt.Errorf("fetch events: %w (cache: %v)", err, warmErr)
		}
		s.logger.WarnContext(ctx, "serving cached snapshot", "err", err)
		return nil
	}

	snap, err := s.build(events)
	if err != nil {
		metrics.RecordRefresh("error")
		return err
	}
	s.swap(snap)
	metrics.RecordRefresh("ok")
	s.logger.InfoContext(ctx, "snapshot refreshed", "events", len(events), "categories", len(snap.Categories), "version", snap.Version)

	if s.cache != nil {
		if err := s.cache.Store(ctx, events); err != nil {
			s.logger.WarnContext(ctx, "snapshot cache store failed", "err", err)
		}
	}
	return nil
}

func (s *discoveryService) warmFromCache(ctx context.Context) error {
	if s.cache == nil {
		return domain.ErrSnapshotUnavailable
	}
	events, found, err := s.cache.Load(ctx)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrSnapshotUnavailable
	}
	snap, err := s.build(events)
	if err != nil {
		return err
	}
	s.swap(snap)
	metrics.RecordRefresh("cache")
	return nil
}

// snapshot returns the current snapshot, loading it on first use.
func (s *discoveryService) snapshot(ctx context.Context) (*domain.Snapshot, error) {
	if snap := s.current(); snap != nil {
		return snap, nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()
	if snap := s.current(); snap != nil {
		return snap, nil
	}
	if err := s.refresh(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSnapshotUnavailable, err)
	}
	return s.current(), nil
}

func (s *discoveryService) Version(ctx context.Context) (string, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return "", err
	}
	return snap.Version, nil
}

func (s *discoveryService) Filter(ctx context.Context, q domain.EventQuery) ([]domain.Event, string, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, "", err
	}
	filtered := discovery.ApplyFilters(snap.Events, q.SearchText, q.Category, q.Filters)
	metrics.RecordQuery("filter", len(filtered))
	return filtered, snap.Version, nil
}

func (s *discoveryService) Search(ctx context.Context, q domain.EventQuery) (domain.Page[domain.Event], string, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return domain.Page[domain.Event]{}, "", err
	}
	filtered := discovery.ApplyFilters(snap.Events, q.SearchText, q.Category, q.Filters)
	metrics.RecordQuery("search", len(filtered))
	return discovery.Paginate(filtered, q.Page, s.pageSize), snap.Version, nil
}

// GetEvent looks id up in the snapshot. When the source is a repository, ids created
// since the last refresh are read through to it.
func (s *discoveryService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if e, ok := discovery.FindByID(snap.Events, id); ok {
		e.Tickets = slices.Clone(e.Tickets)
		return &e, nil
	}
	repo, ok := s.source.(domain.EventRepository)
	if !ok {
		return nil, domain.ErrNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	e, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get event %s: %w", id, err)
	}
	return e, nil
}

func (s *discoveryService) Categories(ctx context.Context) ([]domain.CategorySummary, string, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, "", err
	}
	return slices.Clone(snap.Categories), snap.Version, nil
}

func (s *discoveryService) CategoryNames(ctx context.Context) ([]string, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return discovery.ListCategoryNames(snap.Events), nil
}

func (s *discoveryService) ExploreCategory(ctx context.Context, slug string, page int) (domain.Category, domain.Page[domain.Event], error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return "", domain.Page[domain.Event]{}, err
	}
	matched := discovery.FilterByCategorySlug(snap.Events, slug)
	metrics.RecordQuery("explore", len(matched))
	return domain.CategoryFromSlug(slug), discovery.Paginate(matched, page, s.pageSize), nil
}

func (s *discoveryService) Latest(ctx context.Context, limit int) ([]domain.Event, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return discovery.Latest(snap.Events, limit), nil
}

func (s *discoveryService) Stats(ctx context.Context) (domain.EventStats, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return domain.EventStats{}, err
	}
	return discovery.Summarize(snap.Events), nil
}

func (s *discoveryService) OrganizerEvents(ctx context.Context, organizerID, status string, page int) (domain.Page[domain.Event], error) {
	if organizerID == "" {
		return domain.Page[domain.Event]{}, domain.ErrForbidden
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return domain.Page[domain.Event]{}, err
	}
	owned := discovery.FilterByStatus(discovery.FilterByOrganizer(snap.Events, organizerID), status)
	metrics.RecordQuery("organizer", len(owned))
	return discovery.Paginate(owned, page, s.pageSize), nil
}
