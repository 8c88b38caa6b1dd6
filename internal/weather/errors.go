package weather

import "errors"

// Domain-specific errors for the weather package.
var (
	// ErrLocationNotFound means the provider has no match for the location.
	ErrLocationNotFound = errors.New("location not found")

	// ErrRateLimited means the provider is throttling our requests.
	ErrRateLimited = errors.New("weather provider rate limited")

	// ErrTransport covers network failures, timeouts and provider outages.
	ErrTransport = errors.New("weather provider unreachable")

	// ErrPartialData is returned alongside a valid Forecast when fewer
	// days came back than requested. Non-fatal.
	ErrPartialData = errors.New("forecast shorter than requested")
)
