// Package data holds the API's resource models and the stores that persist them.
package data

import (
	"time"

	"github.com/google/uuid"
)

// now is swapped out by tests that need deterministic timestamps.
var now = time.Now

// StatusCheck is a client check-in record stored in status_checks.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// StatusCheckCreate is the client-supplied part of a StatusCheck.
// Pointer fields make "required" mean present; an empty string is accepted.
type StatusCheckCreate struct {
	ClientName *string `json:"client_name" binding:"required"`
}

// ContactMessage is a contact-form submission stored in contact_messages.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ContactMessageCreate is the client-supplied part of a ContactMessage.
// Name, Phone and Message must be present but may be empty; Email must be
// a valid address. Phone format is not checked.
type ContactMessageCreate struct {
	Name    *string `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   *string `json:"phone" binding:"required"`
	Message *string `json:"message" binding:"required"`
}

// NewStatusCheck returns a StatusCheck with a fresh id and the current UTC time.
func NewStatusCheck(in StatusCheckCreate) *StatusCheck {
	return &StatusCheck{
		ID:         uuid.NewString(),
		ClientName: value(in.ClientName),
		Timestamp:  createdAt(),
	}
}

// NewContactMessage returns a ContactMessage with a fresh id and the current UTC time.
// The supplied fields are kept verbatim.
func NewContactMessage(in ContactMessageCreate) *ContactMessage {
	return &ContactMessage{
		ID:        uuid.NewString(),
		Name:      value(in.Name),
		Email:     in.Email,
		Phone:     value(in.Phone),
		Message:   value(in.Message),
		Timestamp: createdAt(),
	}
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// createdAt is truncated to the stored precision so a record read back
// compares equal to the one returned on create.
func createdAt() time.Time {
	return now().UTC().Truncate(time.Microsecond)
}

// statusCheckDoc and contactMessageDoc are the persisted layouts.
type statusCheckDoc struct {
	ID         string `bson:"id"`
	ClientName string `bson:"client_name"`
	Timestamp  string `bson:"timestamp"`
}

type contactMessageDoc struct {
	ID        string `bson:"id"`
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	Phone     string `bson:"phone"`
	Message   string `bson:"message"`
	Timestamp string `bson:"timestamp"`
}
