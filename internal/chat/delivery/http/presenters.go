package http

import (
	"strings"
	"time"

	"weather-chat-agent/internal/chat"
	"weather-chat-agent/internal/conversation"
)

// --- Request DTOs ---

type sendMessageReq struct {
	SessionID string `json:"session_id" binding:"omitempty,max=128"`
	Message   string `json:"message"    binding:"required,max=2000"`
}

func (r sendMessageReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return chat.ErrEmptyMessage
	}
	return nil
}

func (r sendMessageReq) toInput() chat.ProcessInput {
	return chat.ProcessInput{Message: r.Message}
}

// --- Response DTOs ---

type sendMessageResp struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	Intent    string `json:"intent"`
}

func (h *handler) newSendMessageResp(sessionID string, out chat.ProcessOutput) sendMessageResp {
	return sendMessageResp{
		SessionID: sessionID,
		Reply:     out.Reply,
		Intent:    string(out.Intent),
	}
}

type turnResp struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type historyResp struct {
	SessionID string     `json:"session_id"`
	Turns     []turnResp `json:"turns"`
}

func (h *handler) newHistoryResp(sessionID string, out chat.HistoryOutput) historyResp {
	turns := make([]turnResp, len(out.Turns))
	for i, t := range out.Turns {
		turns[i] = newTurnResp(t)
	}
	return historyResp{
		SessionID: sessionID,
		Turns:     turns,
	}
}

func newTurnResp(t conversation.Turn) turnResp {
	return turnResp{
		Role:      string(t.Role),
		Text:      t.Text,
		Timestamp: t.Timestamp,
	}
}
