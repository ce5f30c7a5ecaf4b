package api

import (
	"chat-core/auth"
	"chat-core/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the core operations behind the authenticated HTTP surface.
func NewRouter(
	conversations services.IConversationService,
	messages services.IMessageService,
	readPositions services.IReadPositionService,
	queries services.IQueryService,
) *gin.Engine {
	conversationHandler := NewConversationHandler(conversations)
	messageHandler := NewMessageHandler(messages)
	readPositionHandler := NewReadPositionHandler(readPositions)
	queryHandler := NewQueryHandler(queries)

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(auth.RequireAuth())
	{
		v1.POST("/conversations", conversationHandler.Create)
		v1.PUT("/conversations/:id", conversationHandler.Update)
		v1.DELETE("/conversations/:id", conversationHandler.Delete)

		v1.POST("/conversations/:id/messages", messageHandler.Post)
		v1.PUT("/conversations/:id/messages/:messageId", messageHandler.Edit)

		v1.PUT("/conversations/:id/read-position", readPositionHandler.Set)
		v1.GET("/conversations/:id/unread-count", readPositionHandler.UnreadCount)

		v1.GET("/conversations/:id/messages", queryHandler.GetMessages)
		v1.GET("/conversations/:id/messages/search", queryHandler.Search)
	}

	return router
}
