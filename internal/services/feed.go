package services

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"eventpulse/internal/domain"
)

type feedService struct {
	logger         *slog.Logger
	fetcher        domain.EventFetcher
	nativeRepo     domain.NativeEventRepository
	normalizer     *Normalizer
	contextTimeout time.Duration

	cacheTTL  time.Duration
	mu        sync.Mutex
	cached    []domain.Event
	fetchedAt time.Time
}

// NewFeedService returns the aggregated event feed. cacheTTL bounds how long
// a successful external fetch is reused; a zero TTL disables the cache.
func NewFeedService(logger *slog.Logger,
	fetcher domain.EventFetcher,
	nativeRepo domain.NativeEventRepository,
	cacheTTL time.Duration,
	timeout time.Duration,
) domain.EventFeed {
	return &feedService{
		logger:         logger,
		fetcher:        fetcher,
		nativeRepo:     nativeRepo,
		normalizer:     NewNormalizer(logger),
		contextTimeout: timeout,
		cacheTTL:       cacheTTL,
	}
}

// externalEvents fetches and normalizes the external source, serving from
// the cache when fresh. Any failure or empty result degrades to the static
// fallback set; the fallback is never cached so a recovered source is picked
// up on the next pass.
func (s *feedService) externalEvents(ctx context.Context, forceRefresh bool) []domain.Event {
	s.mu.Lock()
	if !forceRefresh && s.cached != nil && time.Since(s.fetchedAt) < s.cacheTTL {
		cached := s.cached
		s.mu.Unlock()
		return cached
	}
	s.mu.Unlock()

	raw, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.logger.Warn("external event fetch failed, using fallback data", "err", err)
		return FallbackEvents()
	}
	events := s.normalizer.NormalizeBatch(raw)
	if len(events) == 0 {
		s.logger.Warn("external source returned no events, using fallback data")
		return FallbackEvents()
	}

	s.mu.Lock()
	s.cached = events
	s.fetchedAt = time.Now()
	s.mu.Unlock()
	return events
}

func (s *feedService) ListEvents(ctx context.Context, forceRefresh bool) ([]domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	external := s.externalEvents(ctx, forceRefresh)

	natives, err := s.nativeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	local := make([]domain.Event, 0, len(natives))
	for _, n := range natives {
		local = append(local, n.ToEvent())
	}

	return MergeSources(external, local), nil
}

func (s *feedService) GetEventByID(ctx context.Context, id string) (domain.Event, error) {
	events, err := s.ListEvents(ctx, false)
	if err != nil {
		return domain.Event{}, err
	}
	for _, e := range events {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Event{}, domain.ErrNotFound
}

func (s *feedService) RelatedEvents(ctx context.Context, id string, limit int) ([]domain.Event, error) {
	events, err := s.ListEvents(ctx, false)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		if e.ID == id {
			return RelatedEvents(e, events, limit), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *feedService) SearchEvents(ctx context.Context, query string) ([]domain.Event, error) {
	events, err := s.ListEvents(ctx, false)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	var out []domain.Event
	for _, e := range events {
		if eventMatches(e, q) {
			out = append(out, e)
		}
	}
	return out, nil
}

func eventMatches(e domain.Event, q string) bool {
	if strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Description), q) ||
		strings.Contains(strings.ToLower(e.Location), q) ||
		strings.Contains(strings.ToLower(e.City), q) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	for _, h := range e.Hosts {
		if strings.Contains(strings.ToLower(h.Name), q) {
			return true
		}
	}
	return false
}

func (s *feedService) FilterByTag(ctx context.Context, tag string) ([]domain.Event, error) {
	events, err := s.ListEvents(ctx, false)
	if err != nil {
		return nil, err
	}
	var out []domain.Event
	for _, e := range events {
		if e.HasTag(tag) {
			out = append(out, e)
		}
	}
	return out, nil
}
