package router

import (
	"context"

	"weather-chat-agent/pkg/gemini"
	"weather-chat-agent/pkg/log"
)

// Router is the interface for semantic intent routing.
type Router interface {
	Classify(ctx context.Context, message string, conversationHistory []string) (RouterOutput, error)
}

// SemanticRouter classifies user intent using an LLM. Every failure mode
// of the classify step (LLM error, empty or unparseable output, weather
// intent without a location) resolves to the GENERAL fallback so the
// caller can always produce an answer.
type SemanticRouter struct {
	llm *gemini.Client
	l   log.Logger
}

var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter.
func New(llm *gemini.Client, l log.Logger) *SemanticRouter {
	return &SemanticRouter{
		llm: llm,
		l:   l,
	}
}
