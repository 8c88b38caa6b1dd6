package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultAPIURL = "https://api.openweathermap.org/data/2.5"

// Client is the OpenWeatherMap REST API client.
// It authenticates with an API key passed as a query parameter and
// requests metric units throughout.
type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a new OpenWeatherMap client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     defaultAPIURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SetAPIURL overrides the default API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// Current fetches current conditions for a city.
func (c *Client) Current(ctx context.Context, city string) (*CurrentResponse, error) {
	var result CurrentResponse
	if err := c.get(ctx, "weather", city, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Forecast fetches the 5-day / 3-hour forecast for a city.
func (c *Client) Forecast(ctx context.Context, city string) (*ForecastResponse, error) {
	var result ForecastResponse
	if err := c.get(ctx, "forecast", city, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, endpoint, city string, out any) error {
	params := url.Values{}
	params.Add("q", city)
	params.Add("appid", c.apiKey)
	params.Add("units", "metric")

	reqURL := fmt.Sprintf("%s/%s?%s", c.apiURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode openweathermap response: %w", err)
	}

	return nil
}

// statusError maps non-200 responses to sentinel errors. OpenWeatherMap
// reports 404 for unknown cities, 401 for bad keys, and 429 (or 403 on
// some plans) when throttled.
func (c *Client) statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var apiErr struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(raw, &apiErr)
	msg := apiErr.Message
	if msg == "" {
		msg = string(raw)
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusTooManyRequests, http.StatusForbidden:
		return fmt.Errorf("%w: status %d: %s", ErrRateLimited, resp.StatusCode, msg)
	default:
		return fmt.Errorf("%w: status %d: %s", ErrTransport, resp.StatusCode, msg)
	}
}
