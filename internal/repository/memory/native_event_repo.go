package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"eventpulse/internal/domain"
)

// nativeEventRepository keeps the native event collection in process memory,
// in insertion order. State lives only for the process lifetime; durability
// is deliberately out of scope and the postgres repository exists for
// deployments that need it. The mutex exists because HTTP handlers share the
// store across goroutines; there is still no optimistic-concurrency guard
// against two updates racing on the same id.
type nativeEventRepository struct {
	mu     sync.RWMutex
	events []*domain.NativeEvent
}

// NewNativeEventRepository returns an in-memory repository seeded with the
// given events. Pass nil for an empty store; tests construct a fresh store
// per case for isolation.
func NewNativeEventRepository(initial []*domain.NativeEvent) domain.NativeEventRepository {
	r := &nativeEventRepository{}
	for _, e := range initial {
		r.events = append(r.events, e.Clone())
	}
	return r
}

func (r *nativeEventRepository) List(ctx context.Context) ([]*domain.NativeEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.NativeEvent, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Clone())
	}
	return out, nil
}

func (r *nativeEventRepository) GetByID(ctx context.Context, id string) (*domain.NativeEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.events {
		if e.ID == id {
			return e.Clone(), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *nativeEventRepository) Create(ctx context.Context, event *domain.NativeEvent) error {
	id, err := domain.NewNativeEventID()
	if err != nil {
		return err
	}
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	event.ID = id
	event.CreatedAt = now
	event.UpdatedAt = now
	r.events = append(r.events, event.Clone())
	return nil
}

func (r *nativeEventRepository) Update(ctx context.Context, id string, patch domain.NativeEventPatch) (*domain.NativeEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.ID != id {
			continue
		}
		applyPatch(e, patch)
		e.UpdatedAt = time.Now()
		return e.Clone(), nil
	}
	return nil, domain.ErrNotFound
}

// applyPatch merges non-nil patch fields onto the stored event. ID and
// CreatedAt are not part of the patch type and can never be overwritten.
func applyPatch(e *domain.NativeEvent, patch domain.NativeEventPatch) {
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.StartAt != nil {
		e.StartAt = *patch.StartAt
	}
	if patch.EndAt != nil {
		e.EndAt = *patch.EndAt
	}
	if patch.Timezone != nil {
		e.Timezone = *patch.Timezone
	}
	if patch.Location != nil {
		e.Location = *patch.Location
	}
	if patch.FullAddress != nil {
		e.FullAddress = *patch.FullAddress
	}
	if patch.City != nil {
		e.City = *patch.City
	}
	if patch.Image != nil {
		e.Image = *patch.Image
	}
	if patch.Tags != nil {
		e.Tags = append([]string(nil), patch.Tags...)
	}
	if patch.MaxAttendees != nil {
		e.MaxAttendees = *patch.MaxAttendees
	}
	if patch.StakeAmount != nil {
		e.StakeAmount = *patch.StakeAmount
	}
	if patch.Organizer != nil {
		e.Organizer = *patch.Organizer
	}
	if patch.IsActive != nil {
		e.IsActive = *patch.IsActive
	}
}

func (r *nativeEventRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.events {
		if e.ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *nativeEventRepository) Search(ctx context.Context, query string) ([]*domain.NativeEvent, error) {
	q := strings.ToLower(query)

	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.NativeEvent
	for _, e := range r.events {
		if matchesQuery(e, q) {
			out = append(out, e.Clone())
		}
	}
	return out, nil
}

func matchesQuery(e *domain.NativeEvent, q string) bool {
	if strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Description), q) ||
		strings.Contains(strings.ToLower(e.Location), q) ||
		strings.Contains(strings.ToLower(e.City), q) ||
		strings.Contains(strings.ToLower(e.Organizer.Name), q) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func (r *nativeEventRepository) FilterByTag(ctx context.Context, tag string) ([]*domain.NativeEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.NativeEvent
	for _, e := range r.events {
		for _, t := range e.Tags {
			if strings.EqualFold(t, tag) {
				out = append(out, e.Clone())
				break
			}
		}
	}
	return out, nil
}

func (r *nativeEventRepository) FilterByDateRange(ctx context.Context, start, end time.Time) ([]*domain.NativeEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.NativeEvent
	for _, e := range r.events {
		t, ok := domain.ParseEventTime(e.StartAt)
		if !ok {
			continue
		}
		if !t.Before(start) && !t.After(end) {
			out = append(out, e.Clone())
		}
	}
	return out, nil
}
