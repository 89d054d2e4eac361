package services

import (
	"encoding/json"
	"testing"

	"eventpulse/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenLumaDescription(t *testing.T) {
	tests := []struct {
		name     string
		mirror   string
		want     string
		wantText bool
	}{
		{
			name:     "paragraphs joined with single space",
			mirror:   `{"content":[{"type":"paragraph","content":[{"text":"First part."}]},{"type":"paragraph","content":[{"text":"Second part."}]}]}`,
			want:     "First part. Second part.",
			wantText: true,
		},
		{
			name:     "leaf texts inside a paragraph concatenate",
			mirror:   `{"content":[{"type":"paragraph","content":[{"text":"Hello "},{"text":"world"}]}]}`,
			want:     "Hello world",
			wantText: true,
		},
		{
			name:     "non paragraph nodes skipped",
			mirror:   `{"content":[{"type":"heading","content":[{"text":"Skip me"}]},{"type":"paragraph","content":[{"text":"Keep me"}]}]}`,
			want:     "Keep me",
			wantText: true,
		},
		{
			name:     "empty mirror is absent not empty",
			mirror:   "",
			wantText: false,
		},
		{
			name:     "mirror without content is absent",
			mirror:   `{"something":"else"}`,
			wantText: false,
		},
		{
			name:     "whitespace-only paragraphs yield nothing",
			mirror:   `{"content":[{"type":"paragraph","content":[{"text":"   "}]}]}`,
			wantText: false,
		},
		{
			name:     "invalid json is absent",
			mirror:   `{{{`,
			wantText: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FlattenLumaDescription(json.RawMessage(tt.mirror))
			assert.Equal(t, tt.wantText, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateLumaTags(t *testing.T) {
	tests := []struct {
		name string
		le   domain.LumaEventResponse
		want []string
	}{
		{
			name: "keywords from title, remote without address",
			le: domain.LumaEventResponse{
				Event: domain.LumaEvent{Name: "Ethereum Builders Night"},
			},
			want: []string{"crypto", "remote"},
		},
		{
			name: "address makes it hybrid",
			le: domain.LumaEventResponse{
				Event: domain.LumaEvent{
					Name:           "LLM Hackathon",
					GeoAddressInfo: &domain.LumaGeoAddressInfo{FullAddress: "1 Main St"},
				},
			},
			want: []string{"ai", "hybrid"},
		},
		{
			name: "categories come first and are lowercased",
			le: domain.LumaEventResponse{
				Categories: []string{"Networking"},
				Event:      domain.LumaEvent{Name: "Startup Mixer"},
			},
			want: []string{"networking", "dev", "remote"},
		},
		{
			name: "keywords from flattened description",
			le: domain.LumaEventResponse{
				Event:             domain.LumaEvent{Name: "Evening Social"},
				DescriptionMirror: json.RawMessage(`{"content":[{"type":"paragraph","content":[{"text":"A night of blockchain talks."}]}]}`),
			},
			want: []string{"crypto", "remote"},
		},
		{
			name: "duplicates collapse",
			le: domain.LumaEventResponse{
				Categories: []string{"crypto"},
				Event:      domain.LumaEvent{Name: "DeFi Summit"},
			},
			want: []string{"crypto", "remote"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, generateLumaTags(tt.le))
		})
	}
}

func TestTransformLumaEvent(t *testing.T) {
	le := domain.LumaEventResponse{
		APIID: "evt-luma-1",
		Event: domain.LumaEvent{
			Name:     "Web3 Workshop",
			StartAt:  "2025-08-01T17:00:00Z",
			EndAt:    "2025-08-01T20:00:00Z",
			Timezone: "America/New_York",
			CoverURL: "https://img.example/cover.jpg",
			GeoAddressInfo: &domain.LumaGeoAddressInfo{
				City:        "Brooklyn",
				CityState:   "Brooklyn, NY",
				FullAddress: "99 Water St, Brooklyn, NY",
			},
		},
		URL: "https://lu.ma/web3-workshop",
		TicketInfo: &domain.LumaTicketInfo{
			SpotsRemaining: 40,
			MaxPrice:       &domain.LumaMaxPrice{Cents: 2500, Currency: "usd"},
		},
		Hosts:             []domain.LumaHost{{Name: "Dana", AvatarURL: "https://img.example/dana.png", BioShort: "Organizer"}},
		GuestCount:        120,
		DescriptionMirror: json.RawMessage(`{"content":[{"type":"paragraph","content":[{"text":"Hands-on smart contract session."}]}]}`),
	}

	e := TransformLumaEvent(le)
	assert.Equal(t, "evt-luma-1", e.ID)
	assert.Equal(t, "Web3 Workshop", e.Title)
	assert.Equal(t, "2025-08-01T17:00:00Z", e.StartAt)
	assert.Equal(t, "Brooklyn, NY", e.Location, "city_state preferred over city")
	assert.Equal(t, "99 Water St, Brooklyn, NY", e.FullAddress)
	assert.Equal(t, "Brooklyn", e.City)
	assert.Equal(t, "https://lu.ma/web3-workshop", e.Link)
	assert.Equal(t, "Hands-on smart contract session.", e.Description)
	assert.Equal(t, "https://img.example/cover.jpg", e.Image)
	assert.Equal(t, 120, e.GuestCount)
	assert.Equal(t, 40, e.SpotsRemaining)
	assert.Contains(t, e.Tags, "crypto")
	assert.Contains(t, e.Tags, "hybrid")

	require.NotNil(t, e.Price)
	require.NotNil(t, e.Price.Cents)
	assert.Equal(t, int64(2500), *e.Price.Cents)
	assert.Equal(t, "usd", e.Price.Currency)
	require.NotNil(t, e.Price.MaxPrice)
	assert.Equal(t, int64(2500), e.Price.MaxPrice.Cents)

	require.Len(t, e.Hosts, 1)
	assert.Equal(t, "Dana", e.Hosts[0].Name)
	assert.Equal(t, "Organizer", e.Hosts[0].Bio)
}

func TestTransformLumaEvent_MissingVenue(t *testing.T) {
	e := TransformLumaEvent(domain.LumaEventResponse{
		APIID: "evt-luma-2",
		Event: domain.LumaEvent{Name: "Quiet Gathering", StartAt: "2025-08-01T17:00:00Z"},
	})
	assert.Equal(t, "Location TBD", e.Location)
	assert.Empty(t, e.FullAddress)
	assert.Contains(t, e.Tags, "remote")
	assert.Nil(t, e.Price)
}
