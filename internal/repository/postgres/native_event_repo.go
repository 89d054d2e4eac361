package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"eventpulse/internal/domain"
)

// nativeEventRepository is the durable variant of the native event store.
// Same operation contract as the in-memory repository: no validation, lookup
// misses map to domain.ErrNotFound, Delete reports a miss as (false, nil).
type nativeEventRepository struct {
	DB *sql.DB
}

func NewNativeEventRepository(db *sql.DB) domain.NativeEventRepository {
	return &nativeEventRepository{
		DB: db,
	}
}

const nativeEventColumns = `id, title, description, start_at, end_at, timezone, location, full_address, city, image, tags, max_attendees, stake_amount, organizer_name, organizer_email, organizer_avatar, is_active, created_at, updated_at`

func scanNativeEvent(row interface{ Scan(...any) error }) (*domain.NativeEvent, error) {
	e := &domain.NativeEvent{}
	var tags pq.StringArray
	var fullAddr, city, image, avatar sql.NullString
	var maxAttendees sql.NullInt64
	var stake sql.NullFloat64
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.StartAt, &e.EndAt, &e.Timezone,
		&e.Location, &fullAddr, &city, &image, &tags, &maxAttendees, &stake,
		&e.Organizer.Name, &e.Organizer.Email, &avatar, &e.IsActive,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Tags = []string(tags)
	if fullAddr.Valid {
		e.FullAddress = fullAddr.String
	}
	if city.Valid {
		e.City = city.String
	}
	if image.Valid {
		e.Image = image.String
	}
	if avatar.Valid {
		e.Organizer.Avatar = avatar.String
	}
	if maxAttendees.Valid {
		e.MaxAttendees = int(maxAttendees.Int64)
	}
	if stake.Valid {
		e.StakeAmount = stake.Float64
	}
	return e, nil
}

func (r *nativeEventRepository) List(ctx context.Context) ([]*domain.NativeEvent, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM native_events
		ORDER BY created_at ASC
	`, nativeEventColumns)
	return r.queryMany(ctx, query)
}

func (r *nativeEventRepository) queryMany(ctx context.Context, query string, args ...any) ([]*domain.NativeEvent, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.NativeEvent, 0)
	for rows.Next() {
		e, err := scanNativeEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *nativeEventRepository) GetByID(ctx context.Context, id string) (*domain.NativeEvent, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM native_events
		WHERE id = $1
	`, nativeEventColumns)
	e, err := scanNativeEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *nativeEventRepository) Create(ctx context.Context, e *domain.NativeEvent) error {
	id, err := domain.NewNativeEventID()
	if err != nil {
		return err
	}
	now := time.Now()
	e.ID = id
	e.CreatedAt = now
	e.UpdatedAt = now

	query := `
		INSERT INTO native_events (id, title, description, start_at, end_at, timezone, location, full_address, city, image, tags, max_attendees, stake_amount, organizer_name, organizer_email, organizer_avatar, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`
	_, err = r.DB.ExecContext(ctx, query,
		e.ID, e.Title, e.Description, e.StartAt, e.EndAt, e.Timezone,
		e.Location, e.FullAddress, e.City, e.Image, pq.StringArray(e.Tags),
		e.MaxAttendees, e.StakeAmount, e.Organizer.Name, e.Organizer.Email,
		e.Organizer.Avatar, e.IsActive, e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *nativeEventRepository) Update(ctx context.Context, id string, patch domain.NativeEventPatch) (*domain.NativeEvent, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []any{}
	n := 1
	set := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}
	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.StartAt != nil {
		set("start_at", *patch.StartAt)
	}
	if patch.EndAt != nil {
		set("end_at", *patch.EndAt)
	}
	if patch.Timezone != nil {
		set("timezone", *patch.Timezone)
	}
	if patch.Location != nil {
		set("location", *patch.Location)
	}
	if patch.FullAddress != nil {
		set("full_address", *patch.FullAddress)
	}
	if patch.City != nil {
		set("city", *patch.City)
	}
	if patch.Image != nil {
		set("image", *patch.Image)
	}
	if patch.Tags != nil {
		set("tags", pq.StringArray(patch.Tags))
	}
	if patch.MaxAttendees != nil {
		set("max_attendees", *patch.MaxAttendees)
	}
	if patch.StakeAmount != nil {
		set("stake_amount", *patch.StakeAmount)
	}
	if patch.Organizer != nil {
		set("organizer_name", patch.Organizer.Name)
		set("organizer_email", patch.Organizer.Email)
		set("organizer_avatar", patch.Organizer.Avatar)
	}
	if patch.IsActive != nil {
		set("is_active", *patch.IsActive)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE native_events SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, nativeEventColumns)
	e, err := scanNativeEvent(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *nativeEventRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM native_events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (r *nativeEventRepository) Search(ctx context.Context, queryStr string) ([]*domain.NativeEvent, error) {
	pattern := "%" + queryStr + "%"
	query := fmt.Sprintf(`
		SELECT %s
		FROM native_events
		WHERE title ILIKE $1
		   OR description ILIKE $1
		   OR location ILIKE $1
		   OR city ILIKE $1
		   OR organizer_name ILIKE $1
		   OR EXISTS (SELECT 1 FROM unnest(tags) AS t WHERE t ILIKE $1)
		ORDER BY created_at ASC
	`, nativeEventColumns)
	return r.queryMany(ctx, query, pattern)
}

func (r *nativeEventRepository) FilterByTag(ctx context.Context, tag string) ([]*domain.NativeEvent, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM native_events
		WHERE EXISTS (SELECT 1 FROM unnest(tags) AS t WHERE lower(t) = lower($1))
		ORDER BY created_at ASC
	`, nativeEventColumns)
	return r.queryMany(ctx, query, tag)
}

// FilterByDateRange filters in Go rather than SQL because start_at is stored
// as the original ISO-8601 string and unparsable values must be skipped, not
// rejected by the database.
func (r *nativeEventRepository) FilterByDateRange(ctx context.Context, start, end time.Time) ([]*domain.NativeEvent, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*domain.NativeEvent
	for _, e := range all {
		t, ok := domain.ParseEventTime(e.StartAt)
		if !ok {
			continue
		}
		if !t.Before(start) && !t.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}
