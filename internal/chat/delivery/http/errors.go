package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"weather-chat-agent/internal/chat"
	"weather-chat-agent/pkg/response"
)

// respondError translates domain errors into HTTP responses. Anything
// unrecognized is a server fault and returns 500 without the detail.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		response.Error(c, err, nil)
	case errors.Is(err, chat.ErrSessionNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}
