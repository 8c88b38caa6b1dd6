package http

import (
	"github.com/gin-gonic/gin"

	"weather-chat-agent/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Message sending is rate limited per client; session reads are not.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("/messages", mw.RateLimit(), h.SendMessage)
		chat.GET("/sessions/:id/history", h.History)
		chat.DELETE("/sessions/:id", h.Reset)
	}
}
