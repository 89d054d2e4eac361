package services

import (
	"context"
	"time"

	"eventpulse/internal/domain"
)

type nativeEventService struct {
	repo           domain.NativeEventRepository
	contextTimeout time.Duration
}

// NewNativeEventService wraps the native event repository with request
// timeouts. Input validation happens in the delivery layer before anything
// reaches this service; the repository contract stays trusting.
func NewNativeEventService(repo domain.NativeEventRepository, timeout time.Duration) domain.NativeEventService {
	return &nativeEventService{
		repo:           repo,
		contextTimeout: timeout,
	}
}

func (s *nativeEventService) List(ctx context.Context) ([]*domain.NativeEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.List(ctx)
}

func (s *nativeEventService) GetByID(ctx context.Context, id string) (*domain.NativeEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.GetByID(ctx, id)
}

func (s *nativeEventService) Create(ctx context.Context, event *domain.NativeEvent) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.Create(ctx, event)
}

func (s *nativeEventService) Update(ctx context.Context, id string, patch domain.NativeEventPatch) (*domain.NativeEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.Update(ctx, id, patch)
}

func (s *nativeEventService) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.Delete(ctx, id)
}

func (s *nativeEventService) Search(ctx context.Context, query string) ([]*domain.NativeEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.Search(ctx, query)
}

func (s *nativeEventService) FilterByTag(ctx context.Context, tag string) ([]*domain.NativeEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.FilterByTag(ctx, tag)
}

func (s *nativeEventService) FilterByDateRange(ctx context.Context, start, end time.Time) ([]*domain.NativeEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.FilterByDateRange(ctx, start, end)
}
