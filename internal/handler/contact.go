package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jexlaindia/app/internal/apperrors"
	"github.com/jexlaindia/app/internal/data"
	"github.com/jexlaindia/app/internal/db"
)

// CreateContactMessage handles POST /api/contact. Invalid input is reported
// field by field; storage failures only ever surface as a generic message.
func (h *Handler) CreateContactMessage(c *gin.Context) {
	var req data.ContactMessageCreate
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	msg, err := h.contacts.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, db.ErrNotAcknowledged) {
			_ = c.Error(apperrors.NotAcknowledged("Failed to save contact message", err))
			return
		}
		_ = c.Error(apperrors.Internal("Failed to process contact message", err))
		return
	}

	c.JSON(http.StatusOK, msg)
}

// ListContactMessages handles GET /api/contact, newest first.
func (h *Handler) ListContactMessages(c *gin.Context) {
	msgs, err := h.contacts.List(c.Request.Context())
	if err != nil {
		_ = c.Error(apperrors.Internal("Failed to retrieve contact messages", err))
		return
	}

	c.JSON(http.StatusOK, msgs)
}
