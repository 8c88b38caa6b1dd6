package weather

import (
	"context"
	"time"
)

// Record is the canonical weather record, independent of any provider's
// wire format. Temperature and humidity are meaningful only when
// Available is true; a record with either missing is marked unavailable.
type Record struct {
	Location    string
	Timestamp   time.Time
	Temperature float64 // °C
	TempMin     float64 // °C, populated for forecast days
	TempMax     float64 // °C, populated for forecast days
	Condition   string
	Humidity    int     // percent
	WindSpeed   float64 // m/s
	Day         int     // forecast day index, 0 for current conditions
	Available   bool
}

// Forecast is an ordered multi-day forecast, one record per day in
// chronological order. Non-empty whenever the provider returned data.
type Forecast struct {
	Location string
	Days     []Record
}

// Provider fetches live weather data for a location.
type Provider interface {
	// GetCurrent returns current conditions for a location.
	GetCurrent(ctx context.Context, location string) (Record, error)

	// GetForecast returns up to days daily records, clamped to the
	// provider-supported range. When fewer days are available than
	// requested, the short forecast is returned together with a
	// wrapped ErrPartialData.
	GetForecast(ctx context.Context, location string, days int) (Forecast, error)
}
