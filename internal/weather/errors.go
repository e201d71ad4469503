package weather

import "errors"

// Sentinel errors the handler maps to HTTP statuses.
var (
	// ErrMissingLocation means no location was supplied by the client.
	ErrMissingLocation = errors.New("location is required")
	// ErrNotConfigured means the geocoding API key is absent or still the placeholder.
	ErrNotConfigured = errors.New("weather API key is not configured")
	// ErrLocationNotFound means geocoding returned zero results.
	ErrLocationNotFound = errors.New("location not found")
	// ErrUpstreamUnavailable means an upstream call failed or returned non-2xx.
	ErrUpstreamUnavailable = errors.New("weather upstream unavailable")
	// ErrUpstreamData means an upstream payload was malformed or too short.
	ErrUpstreamData = errors.New("malformed weather upstream payload")
)
