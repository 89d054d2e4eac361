package domain

import "context"

// EventFeed is the aggregated read surface over external and native events.
// The read path never propagates source failures: a broken or empty external
// source degrades to fallback data, so callers always receive a usable list.
type EventFeed interface {
	// ListEvents returns the merged event list. forceRefresh bypasses the
	// external-source cache; cache invalidation is always explicit.
	ListEvents(ctx context.Context, forceRefresh bool) ([]Event, error)
	GetEventByID(ctx context.Context, id string) (Event, error)
	RelatedEvents(ctx context.Context, id string, limit int) ([]Event, error)
	SearchEvents(ctx context.Context, query string) ([]Event, error)
	FilterByTag(ctx context.Context, tag string) ([]Event, error)
}
