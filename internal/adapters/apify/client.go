package apify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"eventpulse/internal/domain"
)

const defaultBaseURL = "https://api.apify.com"

type apifyHTTPFetcher struct {
	client  *http.Client
	baseURL string
	token   string
	actorID string
}

// NewHTTPFetcher returns a fetcher that reads the last run's dataset items of
// the configured Apify actor. The token may be empty; Fetch then reports
// domain.ErrNoAPIToken so the caller can degrade to fallback data.
func NewHTTPFetcher(client *http.Client, token, actorID string) domain.EventFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &apifyHTTPFetcher{
		client:  client,
		baseURL: defaultBaseURL,
		token:   token,
		actorID: actorID,
	}
}

func (f *apifyHTTPFetcher) Fetch(ctx context.Context) ([]json.RawMessage, error) {
	if f.token == "" {
		return nil, domain.ErrNoAPIToken
	}

	u := fmt.Sprintf("%s/v2/acts/%s/runs/last/dataset/items?token=%s",
		f.baseURL, url.PathEscape(f.actorID), url.QueryEscape(f.token))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from apify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("apify api returned status: %d", resp.StatusCode)
	}

	var items []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode apify response: %w", err)
	}
	return items, nil
}
