package api

import (
	"chat-core/domain"
	"chat-core/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ConversationHandler struct {
	service services.IConversationService
}

func NewConversationHandler(service services.IConversationService) *ConversationHandler {
	return &ConversationHandler{service: service}
}

type conversationRequest struct {
	ParticipantIDs  []string `json:"participant_ids"`
	AdminIDs        []string `json:"admin_ids"`
	IsDirectMessage bool     `json:"is_direct_message"`
}

type conversationResponse struct {
	ID              string   `json:"id"`
	ParticipantIDs  []string `json:"participant_ids"`
	AdminIDs        []string `json:"admin_ids"`
	IsDirectMessage bool     `json:"is_direct_message"`
}

func (h *ConversationHandler) Create(c *gin.Context) {
	var req conversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), domain.Conversation{
		ParticipantIDs:  req.ParticipantIDs,
		AdminIDs:        req.AdminIDs,
		IsDirectMessage: req.IsDirectMessage,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toConversationResponse(created))
}

func (h *ConversationHandler) Update(c *gin.Context) {
	var req conversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), domain.Conversation{
		ID:              c.Param("id"),
		ParticipantIDs:  req.ParticipantIDs,
		AdminIDs:        req.AdminIDs,
		IsDirectMessage: req.IsDirectMessage,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toConversationResponse(updated))
}

func (h *ConversationHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toConversationResponse(conversation domain.Conversation) conversationResponse {
	return conversationResponse{
		ID:              conversation.ID,
		ParticipantIDs:  conversation.ParticipantIDs,
		AdminIDs:        conversation.AdminIDs,
		IsDirectMessage: conversation.IsDirectMessage,
	}
}
