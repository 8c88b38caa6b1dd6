package openweather

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"weather-chat-agent/internal/weather"
	pkgLog "weather-chat-agent/pkg/log"
	"weather-chat-agent/pkg/openweather"
)

const (
	// MinForecastDays and MaxForecastDays bound the horizon supported by
	// the OpenWeatherMap 5-day endpoint. Requested values are clamped.
	MinForecastDays = 1
	MaxForecastDays = 5
)

// Provider adapts the OpenWeatherMap REST client to the canonical
// weather.Provider interface.
type Provider struct {
	client *openweather.Client
	l      pkgLog.Logger
}

var _ weather.Provider = (*Provider)(nil)

// New creates a new OpenWeatherMap-backed provider.
func New(client *openweather.Client, l pkgLog.Logger) *Provider {
	return &Provider{client: client, l: l}
}

// GetCurrent fetches and normalizes current conditions for a location.
func (p *Provider) GetCurrent(ctx context.Context, location string) (weather.Record, error) {
	resp, err := p.client.Current(ctx, location)
	if err != nil {
		return weather.Record{}, p.mapError(ctx, location, err)
	}

	rec := weather.Record{
		Location:  displayLocation(resp.Name, resp.Sys.Country),
		Timestamp: time.Unix(resp.Dt, 0).UTC(),
		Condition: description(resp.Weather),
	}

	// Temperature and humidity travel together; either missing marks
	// the record unavailable.
	if resp.Main.Temp != nil && resp.Main.Humidity != nil {
		rec.Temperature = *resp.Main.Temp
		rec.Humidity = *resp.Main.Humidity
		rec.Available = true
	}
	if resp.Wind.Speed != nil {
		rec.WindSpeed = *resp.Wind.Speed
	}

	return rec, nil
}

// GetForecast fetches the 3-hourly forecast and folds it into one record
// per day. days is clamped to [MinForecastDays, MaxForecastDays]. When the
// provider returns fewer days than requested, the short forecast comes
// back together with a wrapped weather.ErrPartialData.
func (p *Provider) GetForecast(ctx context.Context, location string, days int) (weather.Forecast, error) {
	if days < MinForecastDays {
		days = MinForecastDays
	}
	if days > MaxForecastDays {
		days = MaxForecastDays
	}

	resp, err := p.client.Forecast(ctx, location)
	if err != nil {
		return weather.Forecast{}, p.mapError(ctx, location, err)
	}

	forecast := weather.Forecast{
		Location: displayLocation(resp.City.Name, resp.City.Country),
		Days:     foldDaily(resp.List, days),
	}

	if len(forecast.Days) < days {
		return forecast, fmt.Errorf("%w: got %d of %d days for %s",
			weather.ErrPartialData, len(forecast.Days), days, location)
	}
	return forecast, nil
}

// foldDaily groups 3-hour entries by UTC date and reduces each group to a
// single daily record: min/max temperature over the day, with condition,
// humidity and wind taken from the entry closest to midday.
func foldDaily(entries []openweather.ForecastEntry, days int) []weather.Record {
	type group struct {
		date    time.Time
		entries []openweather.ForecastEntry
	}

	byDate := make(map[string]*group)
	var order []string

	for _, e := range entries {
		ts := time.Unix(e.Dt, 0).UTC()
		key := ts.Format("2006-01-02")
		g, ok := byDate[key]
		if !ok {
			g = &group{date: ts.Truncate(24 * time.Hour)}
			byDate[key] = g
			order = append(order, key)
		}
		g.entries = append(g.entries, e)
	}
	sort.Strings(order)

	var out []weather.Record
	for i, key := range order {
		if i >= days {
			break
		}
		g := byDate[key]

		rec := weather.Record{
			Timestamp: g.date,
			Day:       i,
		}

		var haveTemp bool
		for _, e := range g.entries {
			if e.Main.Temp == nil {
				continue
			}
			t := *e.Main.Temp
			if !haveTemp || t < rec.TempMin {
				rec.TempMin = t
			}
			if !haveTemp || t > rec.TempMax {
				rec.TempMax = t
			}
			haveTemp = true
		}

		mid := closestToMidday(g.entries)
		rec.Condition = description(mid.Weather)
		if mid.Wind.Speed != nil {
			rec.WindSpeed = *mid.Wind.Speed
		}
		if haveTemp && mid.Main.Humidity != nil {
			rec.Temperature = (rec.TempMin + rec.TempMax) / 2
			rec.Humidity = *mid.Main.Humidity
			rec.Available = true
		}

		out = append(out, rec)
	}
	return out
}

// closestToMidday picks the entry nearest 12:00 UTC as the day's
// representative sample.
func closestToMidday(entries []openweather.ForecastEntry) openweather.ForecastEntry {
	best := entries[0]
	bestDist := middayDistance(best.Dt)
	for _, e := range entries[1:] {
		if d := middayDistance(e.Dt); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

func middayDistance(unix int64) int {
	h := time.Unix(unix, 0).UTC().Hour()
	d := h - 12
	if d < 0 {
		d = -d
	}
	return d
}

func description(conds []openweather.Condition) string {
	if len(conds) == 0 {
		return ""
	}
	return conds[0].Description
}

func displayLocation(name, country string) string {
	if country == "" {
		return name
	}
	return fmt.Sprintf("%s, %s", name, country)
}

// mapError translates client sentinels into domain errors.
func (p *Provider) mapError(ctx context.Context, location string, err error) error {
	switch {
	case errors.Is(err, openweather.ErrNotFound):
		return fmt.Errorf("%w: %q", weather.ErrLocationNotFound, location)
	case errors.Is(err, openweather.ErrRateLimited):
		return fmt.Errorf("%w: %v", weather.ErrRateLimited, err)
	case errors.Is(err, openweather.ErrUnauthorized):
		// Key problems are a deployment issue, not something the user
		// can fix; surfaced as a transport failure after logging.
		p.l.Errorf(ctx, "openweather provider: credential rejected: %v", err)
		return fmt.Errorf("%w: %v", weather.ErrTransport, err)
	default:
		return fmt.Errorf("%w: %v", weather.ErrTransport, err)
	}
}
