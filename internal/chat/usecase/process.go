package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"weather-chat-agent/internal/chat"
	"weather-chat-agent/internal/conversation"
	"weather-chat-agent/internal/model"
	"weather-chat-agent/internal/router"
	"weather-chat-agent/internal/weather"
	"weather-chat-agent/pkg/gemini"
)

// Process handles one user utterance: classify, dispatch, reply, record.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input chat.ProcessInput) (chat.ProcessOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.ProcessOutput{}, chat.ErrEmptyMessage
	}

	uc.l.Infof(ctx, "Process: session=%s message=%q", sc.SessionID, message)

	history := uc.store.Get(sc.SessionID)

	result, err := uc.router.Classify(ctx, message, history.RenderLines(ClassifyHistoryWindow))
	if err != nil {
		// The router degrades to GENERAL on its own; this guards custom
		// Router implementations that surface errors instead.
		uc.l.Warnf(ctx, "Process: classification error, using general path: %v", err)
		result = router.RouterOutput{Intent: router.IntentGeneral}
	}

	var reply string
	switch result.Intent {
	case router.IntentCurrentWeather:
		reply = uc.currentReply(ctx, result.Location)
	case router.IntentForecast:
		reply = uc.forecastReply(ctx, result.Location, result.Days)
	default:
		reply = uc.generalReply(ctx, message, history)
	}

	history.Append(conversation.Turn{Role: conversation.RoleUser, Text: message})
	history.Append(conversation.Turn{Role: conversation.RoleAssistant, Text: reply})

	return chat.ProcessOutput{Reply: reply, Intent: result.Intent}, nil
}

// History returns the retained window for a session.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope) (chat.HistoryOutput, error) {
	h, ok := uc.store.Lookup(sc.SessionID)
	if !ok {
		return chat.HistoryOutput{}, chat.ErrSessionNotFound
	}
	return chat.HistoryOutput{Turns: h.Recent(h.Len())}, nil
}

// Reset clears a session's conversation state.
func (uc *implUseCase) Reset(ctx context.Context, sc model.Scope) error {
	uc.store.Reset(sc.SessionID)
	return nil
}

// currentReply fetches and formats current conditions. Provider failures
// become friendly replies: not-found gets a spelling hint, everything
// else a retry-later message. Nothing is retried.
func (uc *implUseCase) currentReply(ctx context.Context, location string) string {
	rec, err := uc.provider.GetCurrent(ctx, location)
	if err != nil {
		return uc.weatherErrorReply(ctx, location, err)
	}
	return weather.FormatCurrent(rec)
}

// forecastReply fetches and formats a multi-day forecast. A partial
// forecast is formatted as-is; the formatter copes with short sequences.
func (uc *implUseCase) forecastReply(ctx context.Context, location string, days int) string {
	forecast, err := uc.provider.GetForecast(ctx, location, days)
	if err != nil && !errors.Is(err, weather.ErrPartialData) {
		return uc.weatherErrorReply(ctx, location, err)
	}
	if err != nil {
		uc.l.Warnf(ctx, "forecastReply: partial forecast for %s: %v", location, err)
	}
	return weather.FormatForecast(forecast)
}

func (uc *implUseCase) weatherErrorReply(ctx context.Context, location string, err error) string {
	if errors.Is(err, weather.ErrLocationNotFound) {
		uc.l.Infof(ctx, "weather lookup: unknown location %q", location)
		return fmt.Sprintf(MsgLocationNotFound, location)
	}
	uc.l.Errorf(ctx, "weather lookup failed for %q: %v", location, err)
	return MsgWeatherUnavailable
}

// generalReply issues a second LLM completion over the conversation
// window and returns its text verbatim.
func (uc *implUseCase) generalReply(ctx context.Context, message string, history *conversation.History) string {
	lines := strings.Join(history.RenderLines(GeneralHistoryWindow), "\n")
	prompt := fmt.Sprintf(GeneralPrompt, lines, message)

	answer, err := uc.llm.GenerateText(ctx, prompt, &gemini.GenerationConfig{MaxOutputTokens: 1024})
	if err != nil {
		uc.l.Errorf(ctx, "generalReply: LLM failed: %v", err)
		return MsgGeneralUnavailable
	}
	return answer
}
