package openweather_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weather-chat-agent/internal/weather"
	provider "weather-chat-agent/internal/weather/provider/openweather"
	"weather-chat-agent/pkg/openweather"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// forecastBody builds an OWM forecast payload with 8 three-hour entries
// per day for the given number of days.
func forecastBody(city string, days int) string {
	base := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	var entries []map[string]any
	for d := 0; d < days; d++ {
		for h := 0; h < 24; h += 3 {
			ts := base.AddDate(0, 0, d).Add(time.Duration(h) * time.Hour)
			entries = append(entries, map[string]any{
				"dt":     ts.Unix(),
				"dt_txt": ts.Format("2006-01-02 15:04:05"),
				"main":   map[string]any{"temp": 15.0 + float64(d) + float64(h)/10, "humidity": 70},
				"wind":   map[string]any{"speed": 3.0},
				"weather": []map[string]any{
					{"description": "light rain"},
				},
			})
		}
	}
	body, _ := json.Marshal(map[string]any{
		"city": map[string]any{"name": city, "country": "JP"},
		"list": entries,
	})
	return string(body)
}

func newProviderServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		city := r.URL.Query().Get("q")
		switch city {
		case "Zzzznotacity":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"cod": "404", "message": "city not found"}`))
			return
		case "Throttleville":
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"cod": 429, "message": "blocked"}`))
			return
		case "Keylessburg":
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"cod": 401, "message": "Invalid API key"}`))
			return
		}

		switch r.URL.Path {
		case "/weather":
			if city == "Gapville" {
				// humidity missing: record must be unavailable
				w.Write([]byte(`{"name": "Gapville", "dt": 1756641600,
					"main": {"temp": 18.0},
					"wind": {"speed": 5.0},
					"weather": [{"description": "cloudy"}]}`))
				return
			}
			w.Write([]byte(`{"name": "Paris", "dt": 1756641600,
				"main": {"temp": 18.0, "humidity": 60},
				"wind": {"speed": 5.0},
				"weather": [{"description": "scattered clouds"}],
				"sys": {"country": "FR"}}`))
		case "/forecast":
			if city == "Shortville" {
				fmt.Fprint(w, forecastBody("Shortville", 2))
				return
			}
			fmt.Fprint(w, forecastBody("Tokyo", 5))
		}
	}))
}

func newProvider(t *testing.T, ts *httptest.Server) *provider.Provider {
	t.Helper()
	client := openweather.NewClient("test-key")
	client.SetAPIURL(ts.URL)
	return provider.New(client, &mockLogger{})
}

func TestProvider_GetCurrent(t *testing.T) {
	ts := newProviderServer(t)
	defer ts.Close()
	p := newProvider(t, ts)

	t.Run("Normalizes Record", func(t *testing.T) {
		rec, err := p.GetCurrent(context.Background(), "Paris")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rec.Available {
			t.Fatalf("expected available record")
		}
		if rec.Location != "Paris, FR" {
			t.Errorf("unexpected location %q", rec.Location)
		}
		if rec.Temperature != 18.0 || rec.Humidity != 60 || rec.WindSpeed != 5.0 {
			t.Errorf("unexpected measurements: %+v", rec)
		}
		if rec.Condition != "scattered clouds" {
			t.Errorf("unexpected condition %q", rec.Condition)
		}
		if rec.Timestamp.IsZero() {
			t.Errorf("expected timestamp from provider dt")
		}
	})

	t.Run("Missing Humidity Marks Unavailable", func(t *testing.T) {
		rec, err := p.GetCurrent(context.Background(), "Gapville")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Available {
			t.Errorf("record with missing humidity must be unavailable")
		}
	})

	t.Run("Location Not Found", func(t *testing.T) {
		_, err := p.GetCurrent(context.Background(), "Zzzznotacity")
		if !errors.Is(err, weather.ErrLocationNotFound) {
			t.Errorf("expected ErrLocationNotFound, got %v", err)
		}
	})

	t.Run("Rate Limited", func(t *testing.T) {
		_, err := p.GetCurrent(context.Background(), "Throttleville")
		if !errors.Is(err, weather.ErrRateLimited) {
			t.Errorf("expected ErrRateLimited, got %v", err)
		}
	})

	t.Run("Bad Credentials Map To Transport", func(t *testing.T) {
		_, err := p.GetCurrent(context.Background(), "Keylessburg")
		if !errors.Is(err, weather.ErrTransport) {
			t.Errorf("expected ErrTransport, got %v", err)
		}
	})
}

func TestProvider_GetForecast(t *testing.T) {
	ts := newProviderServer(t)
	defer ts.Close()
	p := newProvider(t, ts)

	t.Run("Folds Into Daily Records", func(t *testing.T) {
		f, err := p.GetForecast(context.Background(), "Tokyo", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.Days) != 5 {
			t.Fatalf("expected 5 daily records, got %d", len(f.Days))
		}
		for i, day := range f.Days {
			if day.Day != i {
				t.Errorf("day %d has index %d", i, day.Day)
			}
			if !day.Available {
				t.Errorf("day %d unexpectedly unavailable", i)
			}
			if day.TempMin >= day.TempMax {
				t.Errorf("day %d min %.1f not below max %.1f", i, day.TempMin, day.TempMax)
			}
			if i > 0 && !f.Days[i-1].Timestamp.Before(day.Timestamp) {
				t.Errorf("days out of chronological order at %d", i)
			}
		}
	})

	t.Run("Clamps Horizon", func(t *testing.T) {
		f, err := p.GetForecast(context.Background(), "Tokyo", 99)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.Days) != 5 {
			t.Errorf("expected clamp to 5 days, got %d", len(f.Days))
		}

		f, err = p.GetForecast(context.Background(), "Tokyo", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.Days) != 1 {
			t.Errorf("expected clamp to 1 day, got %d", len(f.Days))
		}
	})

	t.Run("Partial Data Is Non-Fatal", func(t *testing.T) {
		f, err := p.GetForecast(context.Background(), "Shortville", 5)
		if !errors.Is(err, weather.ErrPartialData) {
			t.Fatalf("expected ErrPartialData, got %v", err)
		}
		if len(f.Days) != 2 {
			t.Errorf("expected the 2 available days, got %d", len(f.Days))
		}
	})

	t.Run("Location Not Found", func(t *testing.T) {
		_, err := p.GetForecast(context.Background(), "Zzzznotacity", 3)
		if !errors.Is(err, weather.ErrLocationNotFound) {
			t.Errorf("expected ErrLocationNotFound, got %v", err)
		}
	})
}
