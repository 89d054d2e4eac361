package domain

import (
	"context"
	"encoding/json"
)

// EventFetcher fetches raw event records from the external discovery source
// (or a test double). Records are returned undecoded so that one malformed
// record can be dropped without failing the batch.
type EventFetcher interface {
	Fetch(ctx context.Context) ([]json.RawMessage, error)
}

// ApifyRecord is the loosely-typed record shape returned by the Apify event
// actors. Field naming varies per actor run, so every canonical field has an
// explicit alias column here; resolution order is the struct order. Absent
// fields stay at their zero value and the normalizer substitutes documented
// defaults.
type ApifyRecord struct {
	ID          string `json:"id"`
	APIID       string `json:"api_id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`

	StartAtSnake string `json:"start_at"`
	StartAtCamel string `json:"startAt"`
	EndAtSnake   string `json:"end_at"`
	EndAtCamel   string `json:"endAt"`
	Timezone     string `json:"timezone"`

	Location string `json:"location"`
	Venue    string `json:"venue"`
	Address  string `json:"address"`
	City     string `json:"city"`

	URL  string `json:"url"`
	Link string `json:"link"`

	Image        string `json:"image"`
	CoverURL     string `json:"cover_url"`
	MainImageURL string `json:"mainImageUrl"`

	Tags       []string `json:"tags"`
	Categories []string `json:"categories"`

	Price      *ApifyPrice      `json:"price"`
	TicketInfo *ApifyTicketInfo `json:"ticket_info"`

	// Hosts stay raw so a single malformed entry can be dropped instead of
	// rejecting the whole record.
	Hosts []json.RawMessage `json:"hosts"`

	GuestCountSnake int `json:"guest_count"`
	GuestCountCamel int `json:"guestCount"`
	SpotsRemaining  int `json:"spots_remaining"`

	IsSoldOutSnake bool `json:"is_sold_out"`
	IsSoldOutCamel bool `json:"isSoldOut"`
}

// ApifyPrice is a direct price object on a raw record.
type ApifyPrice struct {
	Cents       int64  `json:"cents"`
	Currency    string `json:"currency"`
	IsFreeSnake bool   `json:"is_free"`
	IsFreeCamel bool   `json:"isFree"`
}

// ApifyTicketInfo is the nested ticket block some actors emit. Price is a
// decimal major-unit amount, unlike ApifyPrice.Cents.
type ApifyTicketInfo struct {
	Price          float64 `json:"price"`
	IsFree         bool    `json:"is_free"`
	SpotsRemaining int     `json:"spots_remaining"`
	IsSoldOut      bool    `json:"is_sold_out"`
}

// ApifyHost is a raw host entry. Entries that fail to decode as objects are
// dropped by the normalizer rather than failing the record.
type ApifyHost struct {
	Name           string `json:"name"`
	AvatarURLSnake string `json:"avatar_url"`
	AvatarURLCamel string `json:"avatarUrl"`
	Bio            string `json:"bio"`
	BioShort       string `json:"bio_short"`
}
