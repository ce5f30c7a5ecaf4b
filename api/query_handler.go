package api

import (
	"chat-core/services"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type QueryHandler struct {
	service services.IQueryService
}

func NewQueryHandler(service services.IQueryService) *QueryHandler {
	return &QueryHandler{service: service}
}

func (h *QueryHandler) GetMessages(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	var beforeTime *time.Time
	if raw := c.Query("before_time"); raw != "" {
		parsed, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid before_time"})
			return
		}
		beforeTime = &parsed
	}

	views, err := h.service.GetMessages(c.Request.Context(), c.Param("id"), limit, beforeTime)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": views})
}

func (h *QueryHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	views, err := h.service.SearchMessages(c.Request.Context(), c.Param("id"), query, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": views})
}
