package api

import (
	"chat-core/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReadPositionHandler struct {
	service services.IReadPositionService
}

func NewReadPositionHandler(service services.IReadPositionService) *ReadPositionHandler {
	return &ReadPositionHandler{service: service}
}

type setReadPositionRequest struct {
	// A null message id is accepted as a no-op.
	MessageID *string `json:"message_id"`
}

func (h *ReadPositionHandler) Set(c *gin.Context) {
	var req setReadPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var messageID *uuid.UUID
	if req.MessageID != nil {
		parsed, err := uuid.Parse(*req.MessageID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message ID"})
			return
		}
		messageID = &parsed
	}

	if err := h.service.SetReadPosition(c.Request.Context(), c.Param("id"), messageID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReadPositionHandler) UnreadCount(c *gin.Context) {
	count, err := h.service.UnreadCount(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
