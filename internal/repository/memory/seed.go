package memory

import (
	"time"

	"eventpulse/internal/domain"
)

// SeedEvents returns the initial native event set the service ships with.
// These exist so a fresh deployment has content in the manage area before
// anyone creates an event.
func SeedEvents() []*domain.NativeEvent {
	return []*domain.NativeEvent{
		{
			ID:           "native-1",
			Title:        "Crypto Startup Pitch Night",
			Description:  "Join us for an evening of innovative crypto startup pitches. Network with founders, investors, and crypto enthusiasts while discovering the next big thing in Web3.",
			StartAt:      "2024-01-15T19:00:00Z",
			EndAt:        "2024-01-15T22:00:00Z",
			Timezone:     "America/New_York",
			Location:     "Innovation Hub NYC",
			FullAddress:  "123 Tech Street, New York, NY 10001",
			City:         "New York",
			Image:        "/images/pitch-night.jpg",
			Tags:         []string{"crypto", "startup", "networking", "investment"},
			MaxAttendees: 150,
			StakeAmount:  0.01,
			Organizer:    domain.Organizer{
				Name:   "Sarah Chen",
				Email:  "sarah@cryptostartups.nyc",
				Avatar: "/avatars/sarah.jpg",
			},
			IsActive:     true,
			CreatedAt:    time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:           "native-2",
			Title:        "DeFi Security Workshop",
			Description:  "Learn about smart contract security, common vulnerabilities, and best practices for building secure DeFi protocols. Hands-on workshop with real-world examples.",
			StartAt:      "2024-01-20T14:00:00Z",
			EndAt:        "2024-01-20T18:00:00Z",
			Timezone:     "America/Los_Angeles",
			Location:     "Silicon Valley Crypto Center",
			FullAddress:  "456 Blockchain Ave, Palo Alto, CA 94301",
			City:         "Palo Alto",
			Image:        "/images/defi-security.jpg",
			Tags:         []string{"defi", "security", "workshop", "education"},
			MaxAttendees: 50,
			StakeAmount:  0.02,
			Organizer:    domain.Organizer{
				Name:   "Alex Rodriguez",
				Email:  "alex@defisec.io",
				Avatar: "/avatars/alex.jpg",
			},
			IsActive:     true,
			CreatedAt:    time.Date(2024, 1, 2, 15, 30, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 1, 2, 15, 30, 0, 0, time.UTC),
		},
		{
			ID:           "native-3",
			Title:        "NFT Art Gallery Opening",
			Description:  "Exclusive opening night for our curated NFT art exhibition featuring emerging digital artists. Meet the artists, learn about their creative process, and discover unique digital art pieces.",
			StartAt:      "2024-01-25T18:30:00Z",
			EndAt:        "2024-01-25T21:30:00Z",
			Timezone:     "Europe/London",
			Location:     "Digital Art Space London",
			FullAddress:  "789 Creative Quarter, London, UK E1 6AN",
			City:         "London",
			Image:        "/images/nft-gallery.jpg",
			Tags:         []string{"nft", "art", "gallery", "culture"},
			MaxAttendees: 100,
			StakeAmount:  0.005,
			Organizer:    domain.Organizer{
				Name:   "Emma Thompson",
				Email:  "emma@digitalartspace.co.uk",
				Avatar: "/avatars/emma.jpg",
			},
			IsActive:     true,
			CreatedAt:    time.Date(2024, 1, 3, 9, 15, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 1, 3, 9, 15, 0, 0, time.UTC),
		},
	}
}
