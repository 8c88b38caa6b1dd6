package chat

import (
	"context"

	"weather-chat-agent/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Process handles one user utterance end to end: classify the intent,
	// dispatch to the weather provider or the general LLM path, and record
	// the turn pair in the session's conversation history. External-call
	// failures surface as textual replies, never as errors.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)

	// History returns the retained conversation window for a session.
	History(ctx context.Context, sc model.Scope) (HistoryOutput, error)

	// Reset clears a session's conversation state.
	Reset(ctx context.Context, sc model.Scope) error
}
