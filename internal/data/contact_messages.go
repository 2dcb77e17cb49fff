package data

import (
	"context"
	"fmt"

	"github.com/jexlaindia/app/internal/db"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ContactMessagesStore persists ContactMessage records.
type ContactMessagesStore struct {
	store DocumentStore
}

// NewContactMessagesStore returns a ContactMessagesStore backed by store.
func NewContactMessagesStore(store DocumentStore) *ContactMessagesStore {
	return &ContactMessagesStore{store: store}
}

// Create builds a ContactMessage from in and inserts it. A write the server
// does not acknowledge is reported as db.ErrNotAcknowledged.
func (s *ContactMessagesStore) Create(ctx context.Context, in ContactMessageCreate) (*ContactMessage, error) {
	msg := NewContactMessage(in)

	doc := contactMessageDoc{
		ID:        msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Phone:     msg.Phone,
		Message:   msg.Message,
		Timestamp: FormatTimestamp(msg.Timestamp),
	}
	if err := s.store.InsertOne(ctx, db.ContactMessagesCollection, doc); err != nil {
		return nil, err
	}
	return msg, nil
}

// List returns up to db.MaxFindLimit contact messages, newest first.
func (s *ContactMessagesStore) List(ctx context.Context) ([]*ContactMessage, error) {
	docs, err := s.store.Find(ctx, db.ContactMessagesCollection, bson.D{}, db.FindOptions{
		SortKey:        "timestamp",
		SortDescending: true,
		Limit:          db.MaxFindLimit,
	})
	if err != nil {
		return nil, err
	}

	msgs := make([]*ContactMessage, 0, len(docs))
	for _, doc := range docs {
		ts, err := ParseTimestamp(doc["timestamp"])
		if err != nil {
			return nil, fmt.Errorf("contact message %q: %w", stringField(doc, "id"), err)
		}
		msgs = append(msgs, &ContactMessage{
			ID:        stringField(doc, "id"),
			Name:      stringField(doc, "name"),
			Email:     stringField(doc, "email"),
			Phone:     stringField(doc, "phone"),
			Message:   stringField(doc, "message"),
			Timestamp: ts,
		})
	}
	return msgs, nil
}
