package memory

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"eventpulse/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvent(title string) *domain.NativeEvent {
	return &domain.NativeEvent{
		Title:       title,
		Description: "An event about things.",
		StartAt:     "2025-07-15T18:00:00Z",
		EndAt:       "2025-07-15T21:00:00Z",
		Timezone:    "UTC",
		Location:    "Test Hall",
		City:        "Berlin",
		Tags:        []string{"dev", "meetup"},
		Organizer:   domain.Organizer{Name: "Jordan Chen", Email: "jordan@example.com"},
		IsActive:    true,
	}
}

func TestNativeEventRepository_CreateAndGetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewNativeEventRepository(nil)

	ev := newTestEvent("Go Meetup")
	require.NoError(t, repo.Create(ctx, ev))

	require.NotEmpty(t, ev.ID)
	assert.True(t, strings.HasPrefix(ev.ID, "native-"))
	assert.False(t, ev.CreatedAt.IsZero())
	assert.Equal(t, ev.CreatedAt, ev.UpdatedAt)

	got, err := repo.GetByID(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, ev.ID, got.ID)
	assert.Equal(t, "Go Meetup", got.Title)
	assert.Equal(t, ev.CreatedAt, got.CreatedAt)
	assert.Equal(t, []string{"dev", "meetup"}, got.Tags)
}

func TestNativeEventRepository_CreateAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewNativeEventRepository(nil)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		ev := newTestEvent("Event")
		require.NoError(t, repo.Create(ctx, ev))
		require.False(t, seen[ev.ID], "duplicate id %s", ev.ID)
		seen[ev.ID] = true
	}
}

func TestNativeEventRepository_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewNativeEventRepository(SeedEvents())

	got, err := repo.GetByID(ctx, "native-does-not-exist")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Nil(t, got)
}

func TestNativeEventRepository_ListReturnsDefensiveCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewNativeEventRepository(SeedEvents())

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)

	// Mutating the returned values must not leak into the store.
	events[0].Title = "mutated"
	events[0].Tags[0] = "mutated"

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Crypto Startup Pitch Night", again[0].Title)
	assert.Equal(t, "crypto", again[0].Tags[0])
}

func TestNativeEventRepository_ListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewNativeEventRepository(nil)

	for _, title := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, newTestEvent(title)))
	}

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "first", events[0].Title)
	assert.Equal(t, "second", events[1].Title)
	assert.Equal(t, "third", events[2].Title)
}

func TestNativeEventRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewNativeEventRepository(nil)

	ev := newTestEvent("Original Title")
	require.NoError(t, repo.Create(ctx, ev))
	createdAt := ev.CreatedAt

	time.Sleep(2 * time.Millisecond)

	newTitle := "Updated Title"
	updated, err := repo.Update(ctx, ev.ID, domain.NativeEventPatch{Title: &newTitle})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Updated Title", updated.Title)
	// Untouched fields survive the merge.
	assert.Equal(t, "An event about things.", updated.Description)
	assert.Equal(t, "Test Hall", updated.Location)
	assert.Equal(t, []string{"dev", "meetup"}, updated.Tags)
	// ID and CreatedAt are immutable; UpdatedAt strictly increases.
	assert.Equal(t, ev.ID, updated.ID)
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(createdAt))

	got, err := repo.GetByID(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated Title", got.Title)
}

func TestNativeEventRepository_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewNativeEventRepository(nil)

	title := "anything"
	updated, err := repo.Update(ctx, "native-missing", domain.NativeEventPatch{Title: &title})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Nil(t, updated)
}

func TestNativeEventRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewNativeEventRepository(nil)

	ev := newTestEvent("Short-lived")
	require.NoError(t, repo.Create(ctx, ev))

	ok, err := repo.Delete(ctx, ev.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.GetByID(ctx, ev.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	// Deleting an already-deleted id is not a failure, just false.
	ok, err = repo.Delete(ctx, ev.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNativeEventRepository_Search(t *testing.T) {
	ctx := context.Background()
	repo := NewNativeEventRepository(SeedEvents())

	tests := []struct {
		name       string
		query      string
		wantTitles []string
	}{
		{
			name:       "matches title case-insensitively",
			query:      "defi security",
			wantTitles: []string{"DeFi Security Workshop"},
		},
		{
			name:       "matches organizer name",
			query:      "Chen",
			wantTitles: []string{"Crypto Startup Pitch Night"},
		},
		{
			name:       "matches city",
			query:      "london",
			wantTitles: []string{"NFT Art Gallery Opening"},
		},
		{
			name:       "matches tag substring",
			query:      "network",
			wantTitles: []string{"Crypto Startup Pitch Night"},
		},
		{
			name:       "no matches",
			query:      "quantum basket weaving",
			wantTitles: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Search(ctx, tt.query)
			require.NoError(t, err)
			var titles []string
			for _, e := range got {
				titles = append(titles, e.Title)
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestNativeEventRepository_FilterByTag(t *testing.T) {
	ctx := context.Background()
	repo := NewNativeEventRepository(SeedEvents())

	got, err := repo.FilterByTag(ctx, "CRYPTO")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Crypto Startup Pitch Night", got[0].Title)

	// Exact match only, not substring.
	got, err = repo.FilterByTag(ctx, "crypt")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNativeEventRepository_FilterByDateRange(t *testing.T) {
	ctx := context.Background()
	repo := NewNativeEventRepository(SeedEvents())

	tests := []struct {
		name       string
		start, end time.Time
		wantTitles []string
	}{
		{
			name:       "inclusive bounds",
			start:      time.Date(2024, 1, 15, 19, 0, 0, 0, time.UTC),
			end:        time.Date(2024, 1, 20, 14, 0, 0, 0, time.UTC),
			wantTitles: []string{"Crypto Startup Pitch Night", "DeFi Security Workshop"},
		},
		{
			name:       "nothing in range",
			start:      time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			end:        time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
			wantTitles: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FilterByDateRange(ctx, tt.start, tt.end)
			require.NoError(t, err)
			var titles []string
			for _, e := range got {
				titles = append(titles, e.Title)
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestNativeEventRepository_ToEvent(t *testing.T) {
	seed := SeedEvents()[0]
	ev := seed.ToEvent()

	assert.Equal(t, "native-1", ev.ID)
	assert.Equal(t, "/manage/events/native-1", ev.Link)
	require.NotNil(t, ev.Price)
	assert.False(t, ev.Price.IsFree)
	require.NotNil(t, ev.Price.Cents)
	assert.Equal(t, int64(1000), *ev.Price.Cents)
	assert.Equal(t, "ETH", ev.Price.Currency)
	require.Len(t, ev.Hosts, 1)
	assert.Equal(t, "Sarah Chen", ev.Hosts[0].Name)
	assert.Contains(t, ev.Hosts[0].Bio, "sarah@cryptostartups.nyc")
	assert.Equal(t, 150, ev.SpotsRemaining)

	// A zero stake converts to a free price.
	free := &domain.NativeEvent{ID: "native-x", Organizer: domain.Organizer{Name: "A", Email: "a@b.co"}}
	fe := free.ToEvent()
	require.NotNil(t, fe.Price)
	assert.True(t, fe.Price.IsFree)
	assert.Nil(t, fe.Price.Cents)
}
