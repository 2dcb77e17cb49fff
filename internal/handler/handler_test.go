package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jexlaindia/app/internal/data"
	"github.com/jexlaindia/app/internal/middleware"
	"go.uber.org/zap"
)

// fakeStatusChecks keeps status checks in memory.
type fakeStatusChecks struct {
	mu      sync.Mutex
	checks  []*data.StatusCheck
	saveErr error
	listErr error
}

func (f *fakeStatusChecks) Create(ctx context.Context, in data.StatusCheckCreate) (*data.StatusCheck, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	check := data.NewStatusCheck(in)
	f.mu.Lock()
	f.checks = append(f.checks, check)
	f.mu.Unlock()
	return check, nil
}

func (f *fakeStatusChecks) List(ctx context.Context) ([]*data.StatusCheck, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*data.StatusCheck{}, f.checks...), nil
}

// fakeContacts keeps contact messages in memory and lists them newest first.
type fakeContacts struct {
	mu      sync.Mutex
	msgs    []*data.ContactMessage
	saveErr error
	listErr error
}

func (f *fakeContacts) Create(ctx context.Context, in data.ContactMessageCreate) (*data.ContactMessage, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	msg := data.NewContactMessage(in)
	f.mu.Lock()
	f.msgs = append(f.msgs, msg)
	f.mu.Unlock()
	return msg, nil
}

func (f *fakeContacts) List(ctx context.Context) ([]*data.ContactMessage, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]*data.ContactMessage{}, f.msgs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

// add inserts a message with a fixed timestamp.
func (f *fakeContacts) add(name string, at time.Time) *data.ContactMessage {
	msg := &data.ContactMessage{ID: uuid.NewString(), Name: name, Email: name + "@example.com", Phone: "1", Message: name, Timestamp: at}
	f.mu.Lock()
	f.msgs = append(f.msgs, msg)
	f.mu.Unlock()
	return msg
}

type fakePinger struct{ err error }

func (f *fakePinger) Ping(ctx context.Context) error { return f.err }

var errDB = errors.New("server selection error: context deadline exceeded")

type testServer struct {
	engine   *gin.Engine
	checks   *fakeStatusChecks
	contacts *fakeContacts
	pinger   *fakePinger
}

func newTestServer() *testServer {
	gin.SetMode(gin.TestMode)

	ts := &testServer{checks: &fakeStatusChecks{}, contacts: &fakeContacts{}, pinger: &fakePinger{}}
	h := New(ts.checks, ts.contacts, ts.pinger)

	r := gin.New()
	r.Use(middleware.ErrorHandler(zap.NewNop().Sugar()))
	api := r.Group("/api")
	api.GET("/", h.Root)
	api.POST("/status", h.CreateStatusCheck)
	api.GET("/status", h.ListStatusChecks)
	api.POST("/contact", h.CreateContactMessage)
	api.GET("/contact", h.ListContactMessages)
	api.GET("/health", h.Health)

	ts.engine = r
	return ts
}

func (ts *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}
