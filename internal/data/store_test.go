package data

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/jexlaindia/app/internal/db"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// memStore is an in-memory DocumentStore. Documents go through a bson
// round trip so the stores see the same shapes the driver would return.
type memStore struct {
	mu        sync.Mutex
	docs      map[string][]bson.M
	insertErr error
	findErr   error
	lastFind  db.FindOptions
}

func newMemStore() *memStore {
	return &memStore{docs: map[string][]bson.M{}}
}

func (m *memStore) InsertOne(ctx context.Context, collection string, doc any) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	var out bson.M
	if err := bson.Unmarshal(raw, &out); err != nil {
		return err
	}
	out[db.StorageIDField] = bson.NewObjectID()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[collection] = append(m.docs[collection], out)
	return nil
}

func (m *memStore) Find(ctx context.Context, collection string, filter any, opts db.FindOptions) ([]bson.M, error) {
	m.lastFind = opts
	if m.findErr != nil {
		return nil, m.findErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]bson.M, 0, len(m.docs[collection]))
	for _, d := range m.docs[collection] {
		cp := bson.M{}
		for k, v := range d {
			cp[k] = v
		}
		delete(cp, db.StorageIDField)
		for _, f := range opts.Exclude {
			delete(cp, f)
		}
		out = append(out, cp)
	}

	if opts.SortKey != "" {
		sort.SliceStable(out, func(i, j int) bool {
			a, _ := out[i][opts.SortKey].(string)
			b, _ := out[j][opts.SortKey].(string)
			if opts.SortDescending {
				return a > b
			}
			return a < b
		})
	}
	if opts.Limit > 0 && int64(len(out)) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

// put stores a raw document, bypassing the stores.
func (m *memStore) put(collection string, doc bson.M) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[collection] = append(m.docs[collection], doc)
}

var errStoreDown = errors.New("server selection timeout")

// withClock pins the constructors' clock for the duration of a test.
func withClock(t interface{ Cleanup(func()) }, times ...time.Time) {
	i := 0
	now = func() time.Time {
		ts := times[i%len(times)]
		i++
		return ts
	}
	t.Cleanup(func() { now = time.Now })
}

func ptr(s string) *string { return &s }
