package openweather

import "errors"

// Sentinel errors for OpenWeatherMap API failures. Callers match with
// errors.Is; the wrapped message carries the provider's detail text.
var (
	ErrNotFound     = errors.New("openweathermap: city not found")
	ErrUnauthorized = errors.New("openweathermap: invalid API key")
	ErrRateLimited  = errors.New("openweathermap: rate limited")
	ErrTransport    = errors.New("openweathermap: request failed")
)
