package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"weather-chat-agent/internal/chat"
	"weather-chat-agent/internal/model"
	pkgResponse "weather-chat-agent/pkg/response"
	pkgTelegram "weather-chat-agent/pkg/telegram"
)

const (
	startMessage = "Hi! I'm a weather assistant.\n\nAsk me things like:\n• \"What's the weather in Paris?\"\n• \"3 day forecast for Tokyo\"\n• \"Why is the sky blue?\"\n\nUse /reset to start a fresh conversation."
	helpMessage  = "Ask about current weather or a forecast for any city, or ask general weather questions. I remember the recent conversation, so follow-ups like \"and tomorrow?\" work too.\n\nCommands:\n/reset - clear the conversation\n/help - show this message"
	resetMessage = "Conversation cleared. Ask me about the weather!"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine so the classify + weather round trip never trips
// Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message

	// Detach from the request context, which is cancelled once the 200
	// goes out.
	go func() {
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, "Something went wrong handling your message. Please try again.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	sc := model.Scope{SessionID: fmt.Sprintf("telegram_%d", msg.Chat.ID)}
	if msg.From != nil {
		sc.Username = msg.From.Username
	}

	switch msg.Text {
	case "/start":
		return h.bot.SendMessage(msg.Chat.ID, startMessage)
	case "/help":
		return h.bot.SendMessage(msg.Chat.ID, helpMessage)
	case "/reset":
		if err := h.uc.Reset(ctx, sc); err != nil {
			return err
		}
		return h.bot.SendMessage(msg.Chat.ID, resetMessage)
	}

	output, err := h.uc.Process(ctx, sc, chat.ProcessInput{Message: msg.Text})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Process failed: %v", err)
		return h.bot.SendMessage(msg.Chat.ID, "I couldn't process that message. Please try again.")
	}

	return h.bot.SendMessage(msg.Chat.ID, output.Reply)
}
