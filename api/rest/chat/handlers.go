package chat

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	agentcore "codeberg.org/techworld/server/internal/agent"
	"codeberg.org/techworld/server/internal/auth"
	"codeberg.org/techworld/server/internal/errors"
	"codeberg.org/techworld/server/internal/history"
	"codeberg.org/techworld/server/internal/llm"
	"codeberg.org/techworld/server/internal/logger"
)

// ChatHandler godoc
// @Summary Chat with the sales assistant
// @Description Handles one conversation turn with retrieval-grounded product advice
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Chat request"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/chat [post]
func ChatHandler(agent *agentcore.Agent, store *history.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		// session tokens may only speak for their own session
		if tokenSession := auth.SessionID(c); tokenSession != "" && tokenSession != req.SessionID {
			errors.Forbidden(c, "session id does not match token")
			return
		}

		ctx := c.Request.Context()

		messages, err := store.Messages(ctx, req.SessionID)
		if err != nil {
			// history is a nicety, a broken redis should not kill the chat
			logger.ErrorErr(err, "failed to load history", "session_id", req.SessionID)
			messages = nil
		}

		if err := store.Append(ctx, req.SessionID, llm.Message{Role: "user", Content: req.ChatInput}); err != nil {
			logger.ErrorErr(err, "failed to store user message", "session_id", req.SessionID)
		}

		resp, err := agent.Chat(ctx, agentcore.ChatRequest{
			UserQuery: req.ChatInput,
			History:   messages,
		})

		output := ""

		if err != nil {
			// the chat contract degrades gracefully like the lookup tools
			logger.ErrorErr(err, "agent turn failed", "session_id", req.SessionID)
			output = fmt.Sprintf("Lỗi hệ thống: %s", err)
		} else {
			output = resp.Output
		}

		if err := store.Append(ctx, req.SessionID, llm.Message{Role: "assistant", Content: output}); err != nil {
			logger.ErrorErr(err, "failed to store assistant message", "session_id", req.SessionID)
		}

		c.JSON(http.StatusOK, ChatResponse{Output: output})
	}
}

// SessionHandler godoc
// @Summary Create a chat session
// @Description Issues a session token for browser clients
// @Tags chat
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/chat/session [post]
func SessionHandler(authManager *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, sessionID, err := authManager.IssueSession()
		if err != nil {
			errors.InternalError(c, "failed to create session", err)
			return
		}

		c.JSON(http.StatusOK, SessionResponse{Token: token, SessionID: sessionID})
	}
}

// HistoryHandler godoc
// @Summary Fetch session history
// @Description Returns the stored messages of a chat session, oldest first
// @Tags chat
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {array} llm.Message
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/chat/{session_id}/history [get]
func HistoryHandler(store *history.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("session_id")

		if tokenSession := auth.SessionID(c); tokenSession != "" && tokenSession != sessionID {
			errors.Forbidden(c, "session id does not match token")
			return
		}

		messages, err := store.Messages(c.Request.Context(), sessionID)
		if err != nil {
			errors.InternalError(c, "failed to load history", err)
			return
		}

		c.JSON(http.StatusOK, messages)
	}
}
