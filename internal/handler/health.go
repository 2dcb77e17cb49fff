package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jexlaindia/app/internal/apperrors"
)

// HealthResponse is returned by GET /api/health when the database answers.
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// Health handles GET /api/health.
func (h *Handler) Health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		_ = c.Error(apperrors.Unavailable("Service unhealthy", err))
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: time.Now().UTC(),
	})
}
