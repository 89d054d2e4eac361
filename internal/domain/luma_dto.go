package domain

import "encoding/json"

// LumaEventResponse is the Lu.ma event API response shape: a richly nested
// document with the event proper, ticketing, hosts, and a rich-text
// description tree.
type LumaEventResponse struct {
	APIID             string          `json:"api_id"`
	Event             LumaEvent       `json:"event"`
	URL               string          `json:"url"`
	MainImageURL      string          `json:"mainImageUrl"`
	Categories        []string        `json:"categories"`
	TicketInfo        *LumaTicketInfo `json:"ticket_info"`
	Hosts             []LumaHost      `json:"hosts"`
	GuestCount        int             `json:"guest_count"`
	DescriptionMirror json.RawMessage `json:"description_mirror"`
}

// LumaEvent is the inner event object of a Lu.ma response.
type LumaEvent struct {
	Name           string              `json:"name"`
	StartAt        string              `json:"start_at"`
	EndAt          string              `json:"end_at"`
	Timezone       string              `json:"timezone"`
	CoverURL       string              `json:"cover_url"`
	GeoAddressInfo *LumaGeoAddressInfo `json:"geo_address_info"`
}

// LumaGeoAddressInfo carries the venue address refinements.
type LumaGeoAddressInfo struct {
	City        string `json:"city"`
	CityState   string `json:"city_state"`
	FullAddress string `json:"full_address"`
}

// LumaTicketInfo is the Lu.ma ticketing block.
type LumaTicketInfo struct {
	IsFree         bool          `json:"is_free"`
	IsSoldOut      bool          `json:"is_sold_out"`
	SpotsRemaining int           `json:"spots_remaining"`
	MaxPrice       *LumaMaxPrice `json:"max_price"`
}

// LumaMaxPrice is the top of the ticket price range, in minor units.
type LumaMaxPrice struct {
	Cents    int64  `json:"cents"`
	Currency string `json:"currency"`
}

// LumaHost is a host entry in a Lu.ma response.
type LumaHost struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	BioShort  string `json:"bio_short"`
}

// LumaDescriptionNode is one node of the Lu.ma rich-text description tree.
// Only paragraph nodes contribute text; everything else is skipped when the
// tree is flattened for display.
type LumaDescriptionNode struct {
	Type    string                `json:"type"`
	Text    string                `json:"text"`
	Content []LumaDescriptionNode `json:"content"`
}
