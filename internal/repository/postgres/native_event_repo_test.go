package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"eventpulse/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nativeEventCols = []string{
	"id", "title", "description", "start_at", "end_at", "timezone",
	"location", "full_address", "city", "image", "tags", "max_attendees",
	"stake_amount", "organizer_name", "organizer_email", "organizer_avatar",
	"is_active", "created_at", "updated_at",
}

func addSampleRow(rows *sqlmock.Rows, id string) *sqlmock.Rows {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	return rows.AddRow(
		id, "Pitch Night", "Evening of pitches.", "2025-07-15T18:00:00Z", "2025-07-15T21:00:00Z", "UTC",
		"Hub NYC", "123 Tech Street", "New York", "/images/pitch.jpg", pq.StringArray{"crypto", "startup"}, int64(150),
		0.01, "Sarah Chen", "sarah@example.com", "/avatars/sarah.jpg",
		true, now, now,
	)
}

func TestNativeEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		id           string
		mock         func(mock sqlmock.Sqlmock)
		wantErr      bool
		wantNotFound bool
	}{
		{
			name: "success",
			id:   "native-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM native_events\s+WHERE id = \$1`).
					WithArgs("native-1").
					WillReturnRows(addSampleRow(sqlmock.NewRows(nativeEventCols), "native-1"))
			},
		},
		{
			name: "not found",
			id:   "native-missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM native_events`).
					WithArgs("native-missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr:      true,
			wantNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)

			repo := NewNativeEventRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantNotFound {
					assert.True(t, errors.Is(err, domain.ErrNotFound))
				}
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, tt.id, got.ID)
				assert.Equal(t, "Pitch Night", got.Title)
				assert.Equal(t, []string{"crypto", "startup"}, got.Tags)
				assert.Equal(t, 150, got.MaxAttendees)
				assert.Equal(t, "sarah@example.com", got.Organizer.Email)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNativeEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO native_events`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewNativeEventRepository(db)
	ev := &domain.NativeEvent{
		Title:     "Pitch Night",
		StartAt:   "2025-07-15T18:00:00Z",
		EndAt:     "2025-07-15T21:00:00Z",
		Timezone:  "UTC",
		Location:  "Hub NYC",
		Tags:      []string{"crypto"},
		Organizer: domain.Organizer{Name: "Sarah Chen", Email: "sarah@example.com"},
		IsActive:  true,
	}
	require.NoError(t, repo.Create(ctx, ev))
	assert.NotEmpty(t, ev.ID)
	assert.False(t, ev.CreatedAt.IsZero())
	assert.Equal(t, ev.CreatedAt, ev.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNativeEventRepository_Update(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`UPDATE native_events SET updated_at = NOW\(\), title = \$1\s+WHERE id = \$2`).
		WithArgs("New Title", "native-1").
		WillReturnRows(addSampleRow(sqlmock.NewRows(nativeEventCols), "native-1"))

	repo := NewNativeEventRepository(db)
	title := "New Title"
	got, err := repo.Update(ctx, "native-1", domain.NativeEventPatch{Title: &title})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "native-1", got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNativeEventRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mock   func(mock sqlmock.Sqlmock)
		wantOK bool
	}{
		{
			name: "deleted",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM native_events WHERE id = \$1`).
					WithArgs("native-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantOK: true,
		},
		{
			name: "missing id is not an error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM native_events WHERE id = \$1`).
					WithArgs("native-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)

			repo := NewNativeEventRepository(db)
			ok, err := repo.Delete(ctx, "native-1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNativeEventRepository_FilterByTag(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM native_events\s+WHERE EXISTS`).
		WithArgs("crypto").
		WillReturnRows(addSampleRow(sqlmock.NewRows(nativeEventCols), "native-1"))

	repo := NewNativeEventRepository(db)
	got, err := repo.FilterByTag(ctx, "crypto")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "native-1", got[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNativeEventRepository_FilterByDateRange(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(nativeEventCols)
	addSampleRow(rows, "native-1")
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	// Second row has an unparsable start_at and must be skipped silently.
	rows.AddRow(
		"native-2", "Broken", "", "not-a-date", "", "UTC",
		"Somewhere", "", "", "", pq.StringArray{}, int64(0),
		0.0, "A", "a@b.co", "",
		true, now, now,
	)
	mock.ExpectQuery(`SELECT (.+) FROM native_events\s+ORDER BY created_at ASC`).
		WillReturnRows(rows)

	repo := NewNativeEventRepository(db)
	got, err := repo.FilterByDateRange(ctx,
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "native-1", got[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
