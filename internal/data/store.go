package data

import (
	"context"

	"github.com/jexlaindia/app/internal/db"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// DocumentStore is the subset of *db.Client the stores need.
type DocumentStore interface {
	InsertOne(ctx context.Context, collection string, doc any) error
	Find(ctx context.Context, collection string, filter any, opts db.FindOptions) ([]bson.M, error)
}

func stringField(doc bson.M, key string) string {
	s, _ := doc[key].(string)
	return s
}
