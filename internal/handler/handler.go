// Package handler implements the HTTP endpoints of the API.
package handler

import (
	"context"

	"github.com/jexlaindia/app/internal/data"
)

// StatusChecks is the status-check store the handlers use.
type StatusChecks interface {
	Create(ctx context.Context, in data.StatusCheckCreate) (*data.StatusCheck, error)
	List(ctx context.Context) ([]*data.StatusCheck, error)
}

// ContactMessages is the contact-message store the handlers use.
type ContactMessages interface {
	Create(ctx context.Context, in data.ContactMessageCreate) (*data.ContactMessage, error)
	List(ctx context.Context) ([]*data.ContactMessage, error)
}

// Pinger checks the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds the dependencies shared by every endpoint. It keeps no
// per-request state.
type Handler struct {
	statusChecks StatusChecks
	contacts     ContactMessages
	db           Pinger
}

// New returns a Handler wired to the given stores and database.
func New(statusChecks StatusChecks, contacts ContactMessages, db Pinger) *Handler {
	useJSONFieldNames()
	return &Handler{statusChecks: statusChecks, contacts: contacts, db: db}
}
