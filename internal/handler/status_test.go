package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/jexlaindia/app/internal/data"
	"github.com/jexlaindia/app/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStatusCheck_ThenList(t *testing.T) {
	ts := newTestServer()

	for _, name := range []string{"web", "mobile app", "ünïcode"} {
		w := ts.do(http.MethodPost, "/api/status", map[string]string{"client_name": name})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var created data.StatusCheck
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, name, created.ClientName)
		assert.WithinDuration(t, time.Now(), created.Timestamp, 5*time.Second)

		w = ts.do(http.MethodGet, "/api/status", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var listed []data.StatusCheck
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
		found := false
		for _, c := range listed {
			if c.ID == created.ID && c.ClientName == name {
				found = true
			}
		}
		assert.True(t, found, "created status check %s missing from listing", created.ID)
	}
}

func TestCreateStatusCheck_Validation(t *testing.T) {
	ts := newTestServer()

	for _, body := range []any{map[string]string{}, `{"client_name": null}`, "{not json", map[string]int{"client_name": 7}} {
		w := ts.do(http.MethodPost, "/api/status", body)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "body %v", body)
	}
	assert.Empty(t, ts.checks.checks)

	w := ts.do(http.MethodPost, "/api/status", map[string]string{})
	assert.JSONEq(t, `{"detail":[{"field":"client_name","message":"field required"}]}`, w.Body.String())
}

func TestCreateStatusCheck_StoreFailures(t *testing.T) {
	ts := newTestServer()

	ts.checks.saveErr = db.ErrNotAcknowledged
	w := ts.do(http.MethodPost, "/api/status", map[string]string{"client_name": "web"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"Failed to create status check"}`, w.Body.String())

	ts.checks.saveErr = errDB
	w = ts.do(http.MethodPost, "/api/status", map[string]string{"client_name": "web"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "deadline")
}

func TestListStatusChecks_EmptyAndIdempotent(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodGet, "/api/status", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	ts.do(http.MethodPost, "/api/status", map[string]string{"client_name": "a"})
	ts.do(http.MethodPost, "/api/status", map[string]string{"client_name": "b"})

	first := ts.do(http.MethodGet, "/api/status", nil).Body.String()
	second := ts.do(http.MethodGet, "/api/status", nil).Body.String()
	assert.Equal(t, first, second)
}

func TestListStatusChecks_Failure(t *testing.T) {
	ts := newTestServer()
	ts.checks.listErr = errDB

	w := ts.do(http.MethodGet, "/api/status", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"Failed to retrieve status checks"}`, w.Body.String())
}

func TestCreateStatusCheck_EmptyClientNameAccepted(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodPost, "/api/status", map[string]string{"client_name": ""})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created data.StatusCheck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "", created.ClientName)

	require.Len(t, ts.checks.checks, 1)
	assert.Equal(t, created.ID, ts.checks.checks[0].ID)
}
