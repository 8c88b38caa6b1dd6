package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"weather-chat-agent/internal/model"
	"weather-chat-agent/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Processes one user message and returns the assistant's reply.
// @Description A new session is created when session_id is omitted.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendMessageReq true "Message data"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	output, err := h.uc.Process(ctx, model.Scope{SessionID: sessionID}, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSendMessageResp(sessionID, output))
}

// History godoc
// @Summary     Get session history
// @Description Returns the retained conversation turns for a session.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions/{id}/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session id is required"})
		return
	}

	output, err := h.uc.History(ctx, model.Scope{SessionID: id})
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(id, output))
}

// Reset godoc
// @Summary     Reset a session
// @Description Clears a session's conversation state.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions/{id} [DELETE]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session id is required"})
		return
	}

	if err := h.uc.Reset(ctx, model.Scope{SessionID: id}); err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
