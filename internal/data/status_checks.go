package data

import (
	"context"
	"fmt"

	"github.com/jexlaindia/app/internal/db"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// StatusChecksStore persists StatusCheck records.
type StatusChecksStore struct {
	store DocumentStore
}

// NewStatusChecksStore returns a StatusChecksStore backed by store.
func NewStatusChecksStore(store DocumentStore) *StatusChecksStore {
	return &StatusChecksStore{store: store}
}

// Create builds a StatusCheck from in and inserts it.
func (s *StatusChecksStore) Create(ctx context.Context, in StatusCheckCreate) (*StatusCheck, error) {
	check := NewStatusCheck(in)

	doc := statusCheckDoc{
		ID:         check.ID,
		ClientName: check.ClientName,
		Timestamp:  FormatTimestamp(check.Timestamp),
	}
	if err := s.store.InsertOne(ctx, db.StatusChecksCollection, doc); err != nil {
		return nil, err
	}
	return check, nil
}

// List returns up to db.MaxFindLimit status checks in server order.
func (s *StatusChecksStore) List(ctx context.Context) ([]*StatusCheck, error) {
	docs, err := s.store.Find(ctx, db.StatusChecksCollection, bson.D{}, db.FindOptions{
		Limit: db.MaxFindLimit,
	})
	if err != nil {
		return nil, err
	}

	checks := make([]*StatusCheck, 0, len(docs))
	for _, doc := range docs {
		ts, err := ParseTimestamp(doc["timestamp"])
		if err != nil {
			return nil, fmt.Errorf("status check %q: %w", stringField(doc, "id"), err)
		}
		checks = append(checks, &StatusCheck{
			ID:         stringField(doc, "id"),
			ClientName: stringField(doc, "client_name"),
			Timestamp:  ts,
		})
	}
	return checks, nil
}
