package api

import (
	"chat-core/services"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MessageHandler struct {
	service services.IMessageService
}

func NewMessageHandler(service services.IMessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

type postMessageRequest struct {
	Body       string         `json:"body" binding:"required"`
	Metadata   map[string]any `json:"metadata"`
	Attachment string         `json:"attachment"`
}

type messageResponse struct {
	ID             string         `json:"id"`
	ConversationID string         `json:"conversation_id"`
	CreatedBy      string         `json:"created_by"`
	CreatedAt      string         `json:"created_at"`
	Body           string         `json:"body"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	Attachment     string         `json:"attachment,omitempty"`
}

func (h *MessageHandler) Post(c *gin.Context) {
	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.service.Post(c.Request.Context(), services.PostMessageRequest{
		ConversationID: c.Param("id"),
		Body:           req.Body,
		Metadata:       req.Metadata,
		Attachment:     req.Attachment,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	response := messageResponse{
		ID:             message.ID.String(),
		ConversationID: message.ConversationID,
		CreatedBy:      message.CreatedBy,
		CreatedAt:      message.CreatedAt.Format(time.RFC3339Nano),
		Body:           message.Body,
		Metadata:       message.Metadata,
	}
	if message.Attachment != nil {
		response.Attachment = message.Attachment.Name
	}
	c.JSON(http.StatusCreated, response)
}

// Edit exists only to reject: messages are immutable after creation.
func (h *MessageHandler) Edit(c *gin.Context) {
	messageID, err := uuid.Parse(c.Param("messageId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message ID"})
		return
	}

	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.service.Edit(c.Request.Context(), messageID, req.Body); err != nil {
		respondError(c, err)
		return
	}
}
