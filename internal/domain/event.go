package domain

import "strings"

// Event is the canonical event shape every data source normalizes into.
// StartAt and EndAt are ISO-8601 strings rather than time.Time: source data
// arrives with arbitrary or broken timestamps, and the display layer contract
// requires carrying unparsable values through instead of rejecting the record.
// An empty EndAt means the event has no known end time.
// swagger:model Event
type Event struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	StartAt        string   `json:"start_at"`
	EndAt          string   `json:"end_at,omitempty"`
	Timezone       string   `json:"timezone"`
	Location       string   `json:"location"`
	FullAddress    string   `json:"full_address,omitempty"`
	City           string   `json:"city,omitempty"`
	Link           string   `json:"link"`
	Tags           []string `json:"tags"`
	Description    string   `json:"description,omitempty"`
	Image          string   `json:"image,omitempty"`
	Price          *Price   `json:"price,omitempty"`
	Hosts          []Host   `json:"hosts,omitempty"`
	GuestCount     int      `json:"guest_count,omitempty"`
	SpotsRemaining int      `json:"spots_remaining,omitempty"`
	IsSoldOut      bool     `json:"is_sold_out"`
}

// Price is event pricing in minor currency units.
// Invariant: IsFree=true implies Cents==nil and Currency=="";
// IsFree=false implies Cents non-nil, non-negative, and Currency non-empty.
// swagger:model Price
type Price struct {
	Cents    *int64    `json:"cents"`
	Currency string    `json:"currency,omitempty"`
	IsFree   bool      `json:"is_free"`
	MaxPrice *MaxPrice `json:"max_price,omitempty"`
}

// MaxPrice is the upper bound of a ticket price range.
type MaxPrice struct {
	Cents    int64  `json:"cents"`
	Currency string `json:"currency"`
}

// Host is an event host or organizer entry. At most three are kept per event.
type Host struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Bio       string `json:"bio,omitempty"`
}

// EventStatus is the derived lifecycle state of an event. It is a pure
// function of the wall clock and the stored fields, computed on every read
// and never persisted.
type EventStatus string

const (
	EventStatusUpcoming EventStatus = "upcoming"
	EventStatusLive     EventStatus = "live"
	EventStatusEnded    EventStatus = "ended"
	EventStatusSoldOut  EventStatus = "sold-out"
)

// Clone returns a deep copy of the event.
func (e Event) Clone() Event {
	out := e
	if e.Tags != nil {
		out.Tags = append([]string(nil), e.Tags...)
	}
	if e.Hosts != nil {
		out.Hosts = append([]Host(nil), e.Hosts...)
	}
	if e.Price != nil {
		p := *e.Price
		if e.Price.Cents != nil {
			c := *e.Price.Cents
			p.Cents = &c
		}
		if e.Price.MaxPrice != nil {
			mp := *e.Price.MaxPrice
			p.MaxPrice = &mp
		}
		out.Price = &p
	}
	return out
}

// HasTag reports whether the event carries the given tag, case-insensitively.
func (e Event) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
