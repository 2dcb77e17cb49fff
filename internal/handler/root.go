package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// WelcomeMessage is returned by GET /api/.
const WelcomeMessage = "JEXLA Group API - Excellence & Automation"

// Root handles GET /api/.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": WelcomeMessage})
}
