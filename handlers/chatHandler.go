package handlers

import (
	"UnifyMD/agent"
	"UnifyMD/middlewares"
	"net/http"

	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatHandler relays one message per request to the agent. No history is
// kept between requests.
type ChatHandler struct {
	executor agent.Executor
}

// NewChatHandler accepts a nil executor; chat then answers 503.
func NewChatHandler(executor agent.Executor) *ChatHandler {
	return &ChatHandler{executor: executor}
}

func (h *ChatHandler) Chat(c *gin.Context) {
	if h.executor == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "chat agent unavailable"})
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	output, err := h.executor.Invoke(c.Request.Context(), req.Message)
	if err != nil {
		middlewares.HttpError(c, "chat agent failed", http.StatusBadGateway, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": output})
}
