package domain

import "errors"

var (
	// ErrNotFound is returned when a lookup by id matches nothing.
	ErrNotFound = errors.New("not found")
	// ErrNoAPIToken is returned by the external fetcher when no API
	// credential is configured. Callers treat it as "source unavailable",
	// not as a fatal condition.
	ErrNoAPIToken = errors.New("apify api token is not configured")
)
