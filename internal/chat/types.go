package chat

import (
	"weather-chat-agent/internal/conversation"
	"weather-chat-agent/internal/router"
)

// ProcessInput is the input for processing one user utterance.
type ProcessInput struct {
	Message string // Free-form user text
}

// ProcessOutput is the assistant's reply for one utterance.
type ProcessOutput struct {
	Reply  string
	Intent router.Intent // Category the message was routed as
}

// HistoryOutput is the retained conversation window for a session.
type HistoryOutput struct {
	Turns []conversation.Turn
}
