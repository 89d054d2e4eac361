package services

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"strings"
	"time"

	"eventpulse/internal/domain"
)

// Normalizer converts raw Apify records into canonical events. A single
// record never fails normalization: every field-level miss degrades to a
// documented default. Only a record that cannot be decoded at all is dropped,
// and that never aborts the rest of the batch.
type Normalizer struct {
	logger *slog.Logger
}

func NewNormalizer(logger *slog.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// NormalizeBatch decodes and normalizes each raw record independently.
// Malformed records are logged and excluded; valid records always surface.
func (n *Normalizer) NormalizeBatch(raw []json.RawMessage) []domain.Event {
	events := make([]domain.Event, 0, len(raw))
	for i, msg := range raw {
		var rec domain.ApifyRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			n.logger.Warn("dropping malformed source record", "index", i, "err", err)
			continue
		}
		events = append(events, NormalizeApifyEvent(rec))
	}
	return events
}

// NormalizeApifyEvent maps one raw record to the canonical schema, resolving
// field aliases in order and substituting defaults for anything missing.
// The defaults (synthetic id, "now" start, "#" link, "dev" tag) are lossy
// guesses carried over as a compatibility contract, not validation outcomes.
func NormalizeApifyEvent(rec domain.ApifyRecord) domain.Event {
	id := firstNonEmpty(rec.ID, rec.APIID)
	if id == "" {
		id = domain.NewBatchEventID()
	}

	title := firstNonEmpty(rec.Title, rec.Name)
	if title == "" {
		title = "Untitled Event"
	}

	startAt := firstNonEmpty(rec.StartAtSnake, rec.StartAtCamel)
	if startAt == "" {
		// Lossy fallback, not an error: a record without a start time still
		// surfaces, pinned to the moment of normalization.
		startAt = time.Now().UTC().Format(time.RFC3339)
	}
	// No synthetic end time. Absent means "no known end", which is distinct
	// from any concrete timestamp.
	endAt := firstNonEmpty(rec.EndAtSnake, rec.EndAtCamel)

	timezone := rec.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	location := firstNonEmpty(rec.Location, rec.Venue)
	if location == "" {
		location = "TBD"
	}

	link := firstNonEmpty(rec.URL, rec.Link)
	if link == "" {
		link = "#"
	}

	rawTags := rec.Tags
	if rawTags == nil {
		rawTags = rec.Categories
	}
	var tags []string
	if rawTags == nil {
		tags = []string{"dev"}
	} else {
		tags = NormalizeTags(rawTags)
	}

	guestCount := rec.GuestCountSnake
	if guestCount == 0 {
		guestCount = rec.GuestCountCamel
	}
	spotsRemaining := rec.SpotsRemaining
	if spotsRemaining == 0 && rec.TicketInfo != nil {
		spotsRemaining = rec.TicketInfo.SpotsRemaining
	}
	isSoldOut := rec.IsSoldOutSnake || rec.IsSoldOutCamel
	if !isSoldOut && rec.TicketInfo != nil {
		isSoldOut = rec.TicketInfo.IsSoldOut
	}

	return domain.Event{
		ID:             id,
		Title:          title,
		StartAt:        startAt,
		EndAt:          endAt,
		Timezone:       timezone,
		Location:       location,
		FullAddress:    rec.Address,
		City:           rec.City,
		Link:           link,
		Tags:           tags,
		Description:    rec.Description,
		Image:          firstNonEmpty(rec.Image, rec.CoverURL, rec.MainImageURL),
		Price:          resolvePrice(rec),
		Hosts:          normalizeHosts(rec.Hosts),
		GuestCount:     guestCount,
		SpotsRemaining: spotsRemaining,
		IsSoldOut:      isSoldOut,
	}
}

const maxTags = 3

// tagKeywordSets is the keyword classification table: a raw tag containing
// any keyword (case-insensitive substring) maps to the canonical tag.
// Resolution follows table order; unmatched tags pass through lowercased.
var tagKeywordSets = []struct {
	tag      string
	keywords []string
}{
	{"crypto", []string{"crypto", "blockchain", "defi", "web3"}},
	{"ai", []string{"ai", "ml", "machine learning", "artificial intelligence"}},
	{"dev", []string{"dev", "programming", "coding", "software"}},
	{"remote", []string{"remote", "online", "virtual"}},
	{"hybrid", []string{"hybrid"}},
}

// NormalizeTags lowercases, classifies, deduplicates, and caps raw tags.
// An empty input yields an empty result; the ["dev"] default applies only
// when the source supplied no tag field at all, which is the caller's call.
func NormalizeTags(raw []string) []string {
	out := make([]string, 0, maxTags)
	seen := make(map[string]bool)
	for _, tag := range raw {
		t := strings.ToLower(strings.TrimSpace(tag))
		if t == "" {
			continue
		}
		t = classifyTag(t)
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
		if len(out) == maxTags {
			break
		}
	}
	return out
}

func classifyTag(tag string) string {
	for _, set := range tagKeywordSets {
		for _, kw := range set.keywords {
			if strings.Contains(tag, kw) {
				return set.tag
			}
		}
	}
	return tag
}

// resolvePrice resolves pricing in priority order: the nested ticket block
// (decimal major units, converted to cents with the default currency), then
// a direct price object, then free.
func resolvePrice(rec domain.ApifyRecord) *domain.Price {
	if rec.TicketInfo != nil {
		if rec.TicketInfo.IsFree {
			return &domain.Price{Cents: nil, Currency: "", IsFree: true}
		}
		if rec.TicketInfo.Price != 0 {
			cents := int64(math.Round(rec.TicketInfo.Price * 100))
			return &domain.Price{Cents: &cents, Currency: "usd", IsFree: false}
		}
	}
	if rec.Price != nil {
		if rec.Price.IsFreeSnake || rec.Price.IsFreeCamel {
			return &domain.Price{Cents: nil, Currency: "", IsFree: true}
		}
		if rec.Price.Cents != 0 {
			cents := rec.Price.Cents
			currency := rec.Price.Currency
			if currency == "" {
				currency = "usd"
			}
			return &domain.Price{Cents: &cents, Currency: currency, IsFree: false}
		}
	}
	return &domain.Price{Cents: nil, Currency: "", IsFree: true}
}

const maxHosts = 3

// normalizeHosts resolves host aliases and drops entries that are not
// well-formed objects. At most three hosts are kept.
func normalizeHosts(raw []json.RawMessage) []domain.Host {
	if raw == nil {
		return nil
	}
	hosts := make([]domain.Host, 0, maxHosts)
	for _, msg := range raw {
		// JSON null decodes into a struct without error; treat it as a
		// malformed entry like any other non-object.
		if string(bytes.TrimSpace(msg)) == "null" {
			continue
		}
		var h domain.ApifyHost
		if err := json.Unmarshal(msg, &h); err != nil {
			continue
		}
		name := h.Name
		if name == "" {
			name = "Unknown Host"
		}
		hosts = append(hosts, domain.Host{
			Name:      name,
			AvatarURL: firstNonEmpty(h.AvatarURLSnake, h.AvatarURLCamel),
			Bio:       firstNonEmpty(h.Bio, h.BioShort),
		})
		if len(hosts) == maxHosts {
			break
		}
	}
	return hosts
}

// IsValidEvent reports whether a normalized event carries the minimum data
// the feed requires. Normalization defaults make this almost always true;
// it exists as a final guard against empty-shell records.
func IsValidEvent(e domain.Event) bool {
	return e.ID != "" && e.Title != "" && e.StartAt != "" && e.Location != "" && e.Link != "" && len(e.Tags) > 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
