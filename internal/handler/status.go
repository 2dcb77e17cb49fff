package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jexlaindia/app/internal/apperrors"
	"github.com/jexlaindia/app/internal/data"
	"github.com/jexlaindia/app/internal/db"
)

// CreateStatusCheck handles POST /api/status.
func (h *Handler) CreateStatusCheck(c *gin.Context) {
	var req data.StatusCheckCreate
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	check, err := h.statusChecks.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, db.ErrNotAcknowledged) {
			_ = c.Error(apperrors.NotAcknowledged("Failed to create status check", err))
			return
		}
		_ = c.Error(apperrors.Internal("Failed to create status check", err))
		return
	}

	c.JSON(http.StatusOK, check)
}

// ListStatusChecks handles GET /api/status.
func (h *Handler) ListStatusChecks(c *gin.Context) {
	checks, err := h.statusChecks.List(c.Request.Context())
	if err != nil {
		_ = c.Error(apperrors.Internal("Failed to retrieve status checks", err))
		return
	}

	c.JSON(http.StatusOK, checks)
}
