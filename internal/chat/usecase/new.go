package usecase

import (
	"weather-chat-agent/internal/conversation"
	"weather-chat-agent/internal/router"
	"weather-chat-agent/internal/weather"
	"weather-chat-agent/pkg/gemini"
	pkgLog "weather-chat-agent/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	router   router.Router
	provider weather.Provider
	llm      *gemini.Client
	store    *conversation.Store
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	rt router.Router,
	provider weather.Provider,
	llm *gemini.Client,
	store *conversation.Store,
) *implUseCase {
	return &implUseCase{
		l:        l,
		router:   rt,
		provider: provider,
		llm:      llm,
		store:    store,
	}
}
