package services

import (
	"encoding/json"
	"strings"

	"eventpulse/internal/domain"
)

// TransformLumaEvent maps a single Lu.ma API response to the canonical
// schema. Lu.ma nests venue, ticketing, and a rich-text description tree
// that all need flattening before the feed can use the record.
func TransformLumaEvent(le domain.LumaEventResponse) domain.Event {
	geo := le.Event.GeoAddressInfo
	location := "Location TBD"
	fullAddress := ""
	city := ""
	if geo != nil {
		location = firstNonEmpty(geo.CityState, geo.City, "Location TBD")
		fullAddress = geo.FullAddress
		city = geo.City
	}

	var price *domain.Price
	spotsRemaining := 0
	isSoldOut := false
	if ti := le.TicketInfo; ti != nil {
		price = &domain.Price{IsFree: ti.IsFree}
		if ti.MaxPrice != nil {
			cents := ti.MaxPrice.Cents
			price.Cents = &cents
			price.Currency = ti.MaxPrice.Currency
			price.MaxPrice = &domain.MaxPrice{Cents: ti.MaxPrice.Cents, Currency: ti.MaxPrice.Currency}
		}
		spotsRemaining = ti.SpotsRemaining
		isSoldOut = ti.IsSoldOut
	}

	var hosts []domain.Host
	for _, h := range le.Hosts {
		hosts = append(hosts, domain.Host{Name: h.Name, AvatarURL: h.AvatarURL, Bio: h.BioShort})
	}

	description, _ := FlattenLumaDescription(le.DescriptionMirror)

	return domain.Event{
		ID:             le.APIID,
		Title:          le.Event.Name,
		StartAt:        le.Event.StartAt,
		EndAt:          le.Event.EndAt,
		Timezone:       le.Event.Timezone,
		Location:       location,
		FullAddress:    fullAddress,
		City:           city,
		Link:           le.URL,
		Tags:           generateLumaTags(le),
		Description:    description,
		Image:          firstNonEmpty(le.MainImageURL, le.Event.CoverURL),
		Price:          price,
		Hosts:          hosts,
		GuestCount:     le.GuestCount,
		SpotsRemaining: spotsRemaining,
		IsSoldOut:      isSoldOut,
	}
}

// FlattenLumaDescription extracts plain text from the rich-text description
// tree: only paragraph nodes contribute, their leaf text is concatenated,
// and paragraphs are joined with single spaces. The boolean is false when
// there is no usable text; callers must not confuse that with an empty
// string that happens to be present.
func FlattenLumaDescription(mirror json.RawMessage) (string, bool) {
	if len(mirror) == 0 {
		return "", false
	}
	var root struct {
		Content []domain.LumaDescriptionNode `json:"content"`
	}
	if err := json.Unmarshal(mirror, &root); err != nil || root.Content == nil {
		return "", false
	}

	var paragraphs []string
	for _, node := range root.Content {
		if node.Type != "paragraph" || node.Content == nil {
			continue
		}
		var b strings.Builder
		for _, leaf := range node.Content {
			b.WriteString(leaf.Text)
		}
		if text := strings.TrimSpace(b.String()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	if len(paragraphs) == 0 {
		return "", false
	}
	return strings.Join(paragraphs, " "), true
}

// lumaKeywordTags maps content keywords to canonical tags. Unlike the raw
// tag classifier this scans the combined title and description, because
// Lu.ma events rarely ship usable category labels.
var lumaKeywordTags = []struct {
	tag      string
	keywords []string
}{
	{"ai", []string{"ai", "artificial intelligence", "machine learning", "ml", "llm", "neural", "gpt"}},
	{"crypto", []string{"crypto", "blockchain", "bitcoin", "ethereum", "defi", "nft", "web3"}},
	{"dev", []string{"developer", "development", "coding", "programming", "software", "tech", "startup"}},
}

// generateLumaTags derives tags from explicit categories, content keywords,
// and venue presence (no address means remote, an address means hybrid).
// The result is deduplicated; order follows discovery order.
func generateLumaTags(le domain.LumaEventResponse) []string {
	var tags []string
	tags = append(tags, le.Categories...)

	description, _ := FlattenLumaDescription(le.DescriptionMirror)
	combined := strings.ToLower(le.Event.Name + " " + description)
	for _, set := range lumaKeywordTags {
		for _, kw := range set.keywords {
			if strings.Contains(combined, kw) {
				tags = append(tags, set.tag)
				break
			}
		}
	}

	geo := le.Event.GeoAddressInfo
	if geo == nil || geo.FullAddress == "" {
		tags = append(tags, "remote")
	} else {
		tags = append(tags, "hybrid")
	}

	seen := make(map[string]bool)
	out := tags[:0]
	for _, t := range tags {
		t = strings.ToLower(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
