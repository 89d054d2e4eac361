package domain

import (
	"context"
	"fmt"
	"math"
	"time"
)

// NativeEvent is a platform-authored event managed through the manage API.
// It is a superset of the canonical Event: organizer, attendance cap, and the
// stake amount reserved for future on-chain integration. StartAt/EndAt are
// ISO-8601 strings like the canonical model; CreatedAt/UpdatedAt are stamped
// by the repository and never accepted from callers.
// swagger:model NativeEvent
type NativeEvent struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartAt      string    `json:"start_at"`
	EndAt        string    `json:"end_at"`
	Timezone     string    `json:"timezone"`
	Location     string    `json:"location"`
	FullAddress  string    `json:"full_address,omitempty"`
	City         string    `json:"city,omitempty"`
	Image        string    `json:"image,omitempty"`
	Tags         []string  `json:"tags"`
	MaxAttendees int       `json:"max_attendees,omitempty"`
	StakeAmount  float64   `json:"stake_amount,omitempty"`
	Organizer    Organizer `json:"organizer"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Organizer identifies who authored a native event. Avatar is optional.
type Organizer struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// NativeEventPatch is a partial update for a native event. Nil fields are
// left unchanged; ID and CreatedAt are never patchable.
type NativeEventPatch struct {
	Title        *string
	Description  *string
	StartAt      *string
	EndAt        *string
	Timezone     *string
	Location     *string
	FullAddress  *string
	City         *string
	Image        *string
	Tags         []string
	MaxAttendees *int
	StakeAmount  *float64
	Organizer    *Organizer
	IsActive     *bool
}

// NativeEventRepository is the single owner of the native event collection.
// It trusts its input: validation (end after start, email format) is the
// caller's responsibility before any write reaches the repository.
// Lookup misses are reported as ErrNotFound, never as panics; Delete reports
// a miss as (false, nil) because deleting an absent id is not a failure.
type NativeEventRepository interface {
	List(ctx context.Context) ([]*NativeEvent, error)
	GetByID(ctx context.Context, id string) (*NativeEvent, error)
	Create(ctx context.Context, event *NativeEvent) error
	Update(ctx context.Context, id string, patch NativeEventPatch) (*NativeEvent, error)
	Delete(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, query string) ([]*NativeEvent, error)
	FilterByTag(ctx context.Context, tag string) ([]*NativeEvent, error)
	FilterByDateRange(ctx context.Context, start, end time.Time) ([]*NativeEvent, error)
}

// NativeEventService is the manage-area surface over the repository. Same
// operations and failure semantics, with per-request timeouts applied.
type NativeEventService interface {
	List(ctx context.Context) ([]*NativeEvent, error)
	GetByID(ctx context.Context, id string) (*NativeEvent, error)
	Create(ctx context.Context, event *NativeEvent) error
	Update(ctx context.Context, id string, patch NativeEventPatch) (*NativeEvent, error)
	Delete(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, query string) ([]*NativeEvent, error)
	FilterByTag(ctx context.Context, tag string) ([]*NativeEvent, error)
	FilterByDateRange(ctx context.Context, start, end time.Time) ([]*NativeEvent, error)
}

// ToEvent converts a native event to the canonical shape consumed by the
// public feed. The stake amount is expressed as price minor units; the link
// points at the manage page since native events have no external origin.
func (n *NativeEvent) ToEvent() Event {
	price := &Price{Cents: nil, Currency: "", IsFree: true}
	if n.StakeAmount > 0 {
		cents := int64(math.Round(n.StakeAmount * 100000))
		price = &Price{Cents: &cents, Currency: "ETH", IsFree: false}
	}
	return Event{
		ID:          n.ID,
		Title:       n.Title,
		StartAt:     n.StartAt,
		EndAt:       n.EndAt,
		Timezone:    n.Timezone,
		Location:    n.Location,
		FullAddress: n.FullAddress,
		City:        n.City,
		Link:        fmt.Sprintf("/manage/events/%s", n.ID),
		Tags:        append([]string(nil), n.Tags...),
		Description: n.Description,
		Image:       n.Image,
		Price:       price,
		Hosts: []Host{{
			Name:      n.Organizer.Name,
			AvatarURL: n.Organizer.Avatar,
			Bio:       fmt.Sprintf("Event Organizer - %s", n.Organizer.Email),
		}},
		SpotsRemaining: n.MaxAttendees,
		IsSoldOut:      false,
	}
}

// Clone returns a deep copy of the native event.
func (n *NativeEvent) Clone() *NativeEvent {
	out := *n
	if n.Tags != nil {
		out.Tags = append([]string(nil), n.Tags...)
	}
	return &out
}
