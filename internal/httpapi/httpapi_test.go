package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/feedbacksim/internal/httpapi"
	"github.com/google/feedbacksim/internal/runstore"
)

func newTestServer(t *testing.T) *httpapi.Server {
	t.Helper()
	store, err := runstore.New(10)
	require.NoError(t, err)
	return &httpapi.Server{Store: store}
}

func TestHandleSimulateReturnsRunResponse(t *testing.T) {
	srv := newTestServer(t)
	router := srv.NewRouter()

	body := `{"workload":"1\t0\t5\n","q1":2,"q2":3,"alpha":0.5,"maxTime":100}`
	req := httptest.NewRequest(http.MethodPost, "/simulate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp httpapi.RunResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RunID)
	require.Len(t, resp.Processes, 1)
	assert.Equal(t, 5, resp.Processes[0].CompleteTime)
	assert.False(t, resp.HitSafetyBound)
}

func TestHandleSimulateRejectsBadWorkload(t *testing.T) {
	srv := newTestServer(t)
	router := srv.NewRouter()

	body := `{"workload":"not-a-workload","q1":2,"q2":3}`
	req := httptest.NewRequest(http.MethodPost, "/simulate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSimulateRejectsBadParams(t *testing.T) {
	srv := newTestServer(t)
	router := srv.NewRouter()

	body := `{"workload":"1\t0\t5\n","q1":0,"q2":3}`
	req := httptest.NewRequest(http.MethodPost, "/simulate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetRunRoundTrips(t *testing.T) {
	srv := newTestServer(t)
	router := srv.NewRouter()

	body := `{"workload":"1\t0\t5\n","q1":2,"q2":3,"alpha":0.5,"maxTime":100}`
	postReq := httptest.NewRequest(http.MethodPost, "/simulate", strings.NewReader(body))
	postRec := httptest.NewRecorder()
	router.ServeHTTP(postRec, postReq)

	var posted httpapi.RunResponse
	require.NoError(t, json.Unmarshal(postRec.Body.Bytes(), &posted))

	getReq := httptest.NewRequest(http.MethodGet, "/runs/"+posted.RunID, nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, getReq)

	require.Equal(t, http.StatusOK, getRec.Code)
	var got httpapi.RunResponse
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &got))
	assert.Equal(t, posted.RunID, got.RunID)
	assert.Equal(t, posted.Processes, got.Processes)
}

func TestHandleGetRunMissingReturns404(t *testing.T) {
	srv := newTestServer(t)
	router := srv.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/runs/does-not-exist", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
