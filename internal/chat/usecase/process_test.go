package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"weather-chat-agent/internal/chat"
	"weather-chat-agent/internal/chat/usecase"
	"weather-chat-agent/internal/conversation"
	"weather-chat-agent/internal/model"
	"weather-chat-agent/internal/router"
	"weather-chat-agent/internal/weather"
	"weather-chat-agent/pkg/gemini"
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

// mockRouter returns a canned classification and records its calls.
type mockRouter struct {
	output router.RouterOutput
	err    error
	calls  int
}

func (m *mockRouter) Classify(ctx context.Context, message string, conversationHistory []string) (router.RouterOutput, error) {
	m.calls++
	return m.output, m.err
}

// mockProvider counts upstream calls so tests can assert exactly one
// fetch happens per turn.
type mockProvider struct {
	record        weather.Record
	recordErr     error
	forecast      weather.Forecast
	forecastErr   error
	currentCalls  int
	forecastCalls int
	lastLocation  string
	lastDays      int
}

func (m *mockProvider) GetCurrent(ctx context.Context, location string) (weather.Record, error) {
	m.currentCalls++
	m.lastLocation = location
	return m.record, m.recordErr
}

func (m *mockProvider) GetForecast(ctx context.Context, location string, days int) (weather.Forecast, error) {
	m.forecastCalls++
	m.lastLocation = location
	m.lastDays = days
	return m.forecast, m.forecastErr
}

// newGeminiServer answers every generateContent call with the given
// text, or a 500 when text is empty.
func newGeminiServer(t *testing.T, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if text == "" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		escaped, _ := json.Marshal(text)
		fmt.Fprintf(w, `{"candidates": [{"content": {"parts": [{"text": %s}], "role": "model"}}]}`, escaped)
	}))
}

func newGeminiClient(ts *httptest.Server) *gemini.Client {
	client := gemini.NewClient("test-key")
	client.SetAPIURL(ts.URL)
	return client
}

func parisRecord() weather.Record {
	return weather.Record{
		Location:    "Paris, FR",
		Timestamp:   time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		Temperature: 18.2,
		Condition:   "scattered clouds",
		Humidity:    65,
		WindSpeed:   4.1,
		Available:   true,
	}
}

func tokyoForecast(days int) weather.Forecast {
	f := weather.Forecast{Location: "Tokyo, JP"}
	for d := 0; d < days; d++ {
		f.Days = append(f.Days, weather.Record{
			Location:  "Tokyo, JP",
			Timestamp: time.Date(2026, 9, 1+d, 12, 0, 0, 0, time.UTC),
			TempMin:   20 + float64(d),
			TempMax:   27 + float64(d),
			Condition: "light rain",
			Humidity:  78,
			WindSpeed: 3.4,
			Day:       d,
			Available: true,
		})
	}
	return f
}

func TestProcessCurrentWeather(t *testing.T) {
	ts := newGeminiServer(t, "unused")
	defer ts.Close()

	rt := &mockRouter{output: router.RouterOutput{Intent: router.IntentCurrentWeather, Location: "Paris", Days: 1, Confidence: 95}}
	provider := &mockProvider{record: parisRecord()}
	store := conversation.NewStore(conversation.StoreConfig{})

	uc := usecase.New(&mockLogger{}, rt, provider, newGeminiClient(ts), store)

	out, err := uc.Process(context.Background(), model.Scope{SessionID: "s1"}, chat.ProcessInput{Message: "What's the weather in Paris?"})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if out.Intent != router.IntentCurrentWeather {
		t.Errorf("Intent = %v, want %v", out.Intent, router.IntentCurrentWeather)
	}
	for _, want := range []string{"Paris", "18.2", "Scattered Clouds", "65%"} {
		if !strings.Contains(out.Reply, want) {
			t.Errorf("Reply = %q, want it to contain %q", out.Reply, want)
		}
	}
	if provider.currentCalls != 1 {
		t.Errorf("GetCurrent called %d times, want 1", provider.currentCalls)
	}
	if provider.forecastCalls != 0 {
		t.Errorf("GetForecast called %d times, want 0", provider.forecastCalls)
	}
	if provider.lastLocation != "Paris" {
		t.Errorf("location = %q, want Paris", provider.lastLocation)
	}
}

func TestProcessForecast(t *testing.T) {
	ts := newGeminiServer(t, "unused")
	defer ts.Close()

	rt := &mockRouter{output: router.RouterOutput{Intent: router.IntentForecast, Location: "Tokyo", Days: 5, Confidence: 90}}
	provider := &mockProvider{forecast: tokyoForecast(5)}
	store := conversation.NewStore(conversation.StoreConfig{})

	uc := usecase.New(&mockLogger{}, rt, provider, newGeminiClient(ts), store)

	out, err := uc.Process(context.Background(), model.Scope{SessionID: "s1"}, chat.ProcessInput{Message: "5 day forecast for Tokyo"})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if !strings.Contains(out.Reply, "5-day forecast for Tokyo, JP") {
		t.Errorf("Reply = %q, want forecast header", out.Reply)
	}
	for d := 1; d <= 5; d++ {
		if !strings.Contains(out.Reply, fmt.Sprintf("Day %d", d)) {
			t.Errorf("Reply missing Day %d block:\n%s", d, out.Reply)
		}
	}
	if provider.forecastCalls != 1 {
		t.Errorf("GetForecast called %d times, want 1", provider.forecastCalls)
	}
	if provider.lastDays != 5 {
		t.Errorf("days = %d, want 5", provider.lastDays)
	}
}

func TestProcessPartialForecast(t *testing.T) {
	ts := newGeminiServer(t, "unused")
	defer ts.Close()

	rt := &mockRouter{output: router.RouterOutput{Intent: router.IntentForecast, Location: "Tokyo", Days: 5}}
	provider := &mockProvider{
		forecast:    tokyoForecast(2),
		forecastErr: fmt.Errorf("only 2 of 5 days: %w", weather.ErrPartialData),
	}
	store := conversation.NewStore(conversation.StoreConfig{})

	uc := usecase.New(&mockLogger{}, rt, provider, newGeminiClient(ts), store)

	out, err := uc.Process(context.Background(), model.Scope{SessionID: "s1"}, chat.ProcessInput{Message: "5 day forecast for Tokyo"})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if !strings.Contains(out.Reply, "2-day forecast for Tokyo, JP") {
		t.Errorf("Reply = %q, want partial forecast rendered", out.Reply)
	}
}

func TestProcessLocationNotFound(t *testing.T) {
	ts := newGeminiServer(t, "unused")
	defer ts.Close()

	rt := &mockRouter{output: router.RouterOutput{Intent: router.IntentCurrentWeather, Location: "Zzzznotacity"}}
	provider := &mockProvider{recordErr: weather.ErrLocationNotFound}
	store := conversation.NewStore(conversation.StoreConfig{})

	uc := usecase.New(&mockLogger{}, rt, provider, newGeminiClient(ts), store)

	out, err := uc.Process(context.Background(), model.Scope{SessionID: "s1"}, chat.ProcessInput{Message: "weather in Zzzznotacity"})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if !strings.Contains(out.Reply, "Zzzznotacity") || !strings.Contains(out.Reply, "couldn't find") {
		t.Errorf("Reply = %q, want a not-found message naming the city", out.Reply)
	}
}

func TestProcessProviderDown(t *testing.T) {
	ts := newGeminiServer(t, "unused")
	defer ts.Close()

	rt := &mockRouter{output: router.RouterOutput{Intent: router.IntentCurrentWeather, Location: "Paris"}}
	provider := &mockProvider{recordErr: fmt.Errorf("status 502: %w", weather.ErrTransport)}
	store := conversation.NewStore(conversation.StoreConfig{})

	uc := usecase.New(&mockLogger{}, rt, provider, newGeminiClient(ts), store)

	out, err := uc.Process(context.Background(), model.Scope{SessionID: "s1"}, chat.ProcessInput{Message: "weather in Paris"})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if !strings.Contains(out.Reply, "unavailable") {
		t.Errorf("Reply = %q, want a service-unavailable message", out.Reply)
	}
	if out.Intent != router.IntentCurrentWeather {
		t.Errorf("Intent = %v, want the classified intent preserved", out.Intent)
	}
}

func TestProcessGeneral(t *testing.T) {
	ts := newGeminiServer(t, "A monsoon is a seasonal wind shift.")
	defer ts.Close()

	rt := &mockRouter{output: router.RouterOutput{Intent: router.IntentGeneral}}
	provider := &mockProvider{}
	store := conversation.NewStore(conversation.StoreConfig{})

	uc := usecase.New(&mockLogger{}, rt, provider, newGeminiClient(ts), store)

	out, err := uc.Process(context.Background(), model.Scope{SessionID: "s1"}, chat.ProcessInput{Message: "What is a monsoon?"})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if out.Reply != "A monsoon is a seasonal wind shift." {
		t.Errorf("Reply = %q, want the LLM answer verbatim", out.Reply)
	}
	if provider.currentCalls != 0 || provider.forecastCalls != 0 {
		t.Errorf("provider called on general path: current=%d forecast=%d", provider.currentCalls, provider.forecastCalls)
	}
}

func TestProcessGeneralLLMDown(t *testing.T) {
	ts := newGeminiServer(t, "")
	defer ts.Close()

	rt := &mockRouter{output: router.RouterOutput{Intent: router.IntentGeneral}}
	store := conversation.NewStore(conversation.StoreConfig{})

	uc := usecase.New(&mockLogger{}, rt, &mockProvider{}, newGeminiClient(ts), store)

	out, err := uc.Process(context.Background(), model.Scope{SessionID: "s1"}, chat.ProcessInput{Message: "hello"})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if !strings.Contains(out.Reply, "trouble processing") {
		t.Errorf("Reply = %q, want the general fallback message", out.Reply)
	}
}

func TestProcessRouterError(t *testing.T) {
	ts := newGeminiServer(t, "Happy to help with weather questions.")
	defer ts.Close()

	rt := &mockRouter{err: errors.New("classifier exploded")}
	provider := &mockProvider{}
	store := conversation.NewStore(conversation.StoreConfig{})

	uc := usecase.New(&mockLogger{}, rt, provider, newGeminiClient(ts), store)

	out, err := uc.Process(context.Background(), model.Scope{SessionID: "s1"}, chat.ProcessInput{Message: "hmm"})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if out.Intent != router.IntentGeneral {
		t.Errorf("Intent = %v, want GENERAL on classification error", out.Intent)
	}
	if provider.currentCalls != 0 || provider.forecastCalls != 0 {
		t.Error("provider must not be called when classification fails")
	}
}

func TestProcessEmptyMessage(t *testing.T) {
	ts := newGeminiServer(t, "unused")
	defer ts.Close()

	store := conversation.NewStore(conversation.StoreConfig{})
	uc := usecase.New(&mockLogger{}, &mockRouter{}, &mockProvider{}, newGeminiClient(ts), store)

	_, err := uc.Process(context.Background(), model.Scope{SessionID: "s1"}, chat.ProcessInput{Message: "   "})
	if !errors.Is(err, chat.ErrEmptyMessage) {
		t.Errorf("error = %v, want ErrEmptyMessage", err)
	}
	if _, ok := store.Lookup("s1"); ok {
		t.Error("empty message must not create a session")
	}
}

func TestHistoryAndReset(t *testing.T) {
	ts := newGeminiServer(t, "unused")
	defer ts.Close()

	rt := &mockRouter{output: router.RouterOutput{Intent: router.IntentCurrentWeather, Location: "Paris"}}
	store := conversation.NewStore(conversation.StoreConfig{})
	uc := usecase.New(&mockLogger{}, rt, &mockProvider{record: parisRecord()}, newGeminiClient(ts), store)

	sc := model.Scope{SessionID: "s1"}

	if _, err := uc.History(context.Background(), sc); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("History() before any turn: error = %v, want ErrSessionNotFound", err)
	}

	if _, err := uc.Process(context.Background(), sc, chat.ProcessInput{Message: "weather in Paris"}); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	out, err := uc.History(context.Background(), sc)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(out.Turns) != 2 {
		t.Fatalf("len(Turns) = %d, want 2 (user + assistant)", len(out.Turns))
	}
	if out.Turns[0].Role != conversation.RoleUser || out.Turns[0].Text != "weather in Paris" {
		t.Errorf("Turns[0] = %+v, want the user message", out.Turns[0])
	}
	if out.Turns[1].Role != conversation.RoleAssistant {
		t.Errorf("Turns[1].Role = %v, want assistant", out.Turns[1].Role)
	}

	if err := uc.Reset(context.Background(), sc); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if _, err := uc.History(context.Background(), sc); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("History() after reset: error = %v, want ErrSessionNotFound", err)
	}
}
