// Package db manages the MongoDB connection and exposes the small set of
// document operations the API needs.
package db

import (
	"context" // For connection timeout/cancellation
	"errors"
	"fmt" // Error formatting
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"          // MongoDB driver
	"go.mongodb.org/mongo-driver/v2/mongo/options"  // MongoDB options
	"go.mongodb.org/mongo-driver/v2/mongo/readpref" // MongoDB read preference
)

// Collection names.
const (
	StatusChecksCollection    = "status_checks"
	ContactMessagesCollection = "contact_messages"
)

// MaxFindLimit caps how many documents a single Find returns.
const MaxFindLimit int64 = 1000

// StorageIDField is the storage-assigned identifier. It never leaves this package.
const StorageIDField = "_id"

// ErrNotAcknowledged is returned when the server accepted a write without confirming it.
var ErrNotAcknowledged = errors.New("write not acknowledged")

// FindOptions shapes a Find call.
type FindOptions struct {
	// Exclude lists fields stripped by the projection. _id is always excluded.
	Exclude []string
	// SortKey is optional; an empty key leaves the order to the server.
	SortKey        string
	SortDescending bool
	// Limit <= 0 or above MaxFindLimit is clamped to MaxFindLimit.
	Limit int64
}

// Client wraps mongo.Client and a single database.
type Client struct {
	// client is the underlying MongoDB connection (thread-safe, can be reused)
	client *mongo.Client

	// db is the configured database; collections are resolved by name per call
	db *mongo.Database
}

// New connects to MongoDB, verifies the connection with a ping and returns a Client.
func New(ctx context.Context, mongoURI, dbName string) (*Client, error) {
	opts := options.Client().
		ApplyURI(mongoURI).                 // Parse connection string
		SetConnectTimeout(10 * time.Second) // Max time to connect

	// Connect only builds the client; the ping below is the real connection test
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Client{
		client: client,
		db:     client.Database(dbName), // created lazily on first write
	}, nil
}

// Name returns the database name.
func (c *Client) Name() string {
	return c.db.Name()
}

// Collection returns a handle to the named collection.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// InsertOne writes a single document into collection.
func (c *Client) InsertOne(ctx context.Context, collection string, doc any) error {
	result, err := c.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert into %s: %w", collection, err)
	}
	// unacknowledged write concerns return a result with no confirmation
	if !result.Acknowledged || result.InsertedID == nil {
		return fmt.Errorf("insert into %s: %w", collection, ErrNotAcknowledged)
	}
	return nil
}

// Find returns up to opts.Limit documents matching filter, with _id and
// opts.Exclude stripped. A nil filter matches every document.
func (c *Client) Find(ctx context.Context, collection string, filter any, opts FindOptions) ([]bson.M, error) {
	if filter == nil {
		filter = bson.D{}
	}

	findOpts := options.Find().
		SetProjection(projection(opts.Exclude)).
		SetLimit(clampLimit(opts.Limit))

	if opts.SortKey != "" {
		dir := 1
		if opts.SortDescending {
			dir = -1 // -1 means descending order (newest first)
		}
		findOpts.SetSort(bson.D{{Key: opts.SortKey, Value: dir}})
	}

	cursor, err := c.Collection(collection).Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}
	return docs, nil
}

// Ping checks the primary is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Close disconnects from MongoDB.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// CreateIndexes ensures the indexes the API relies on exist.
func (c *Client) CreateIndexes(ctx context.Context) error {
	// ids are generated client-side; the unique index turns a collision into a write error
	for _, name := range []string{StatusChecksCollection, ContactMessagesCollection} {
		_, err := c.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("failed to create %s id index: %w", name, err)
		}
	}

	// contact messages are listed newest first
	_, err := c.Collection(ContactMessagesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create %s timestamp index: %w", ContactMessagesCollection, err)
	}
	return nil
}

func projection(exclude []string) bson.D {
	proj := bson.D{{Key: StorageIDField, Value: 0}}
	for _, f := range exclude {
		if f == StorageIDField {
			continue
		}
		proj = append(proj, bson.E{Key: f, Value: 0})
	}
	return proj
}

func clampLimit(limit int64) int64 {
	if limit <= 0 || limit > MaxFindLimit {
		return MaxFindLimit
	}
	return limit
}
