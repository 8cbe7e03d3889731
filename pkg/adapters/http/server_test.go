package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/fibgen"
	"github.com/aretw0/fibgen/pkg/adapters/memory"
	"github.com/aretw0/fibgen/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestServer(t *testing.T, opts ...fibgen.Option) *Server {
	t.Helper()
	opts = append([]fibgen.Option{fibgen.WithStore(memory.NewStore())}, opts...)
	srv, err := NewServer(fibgen.New(opts...))
	require.NoError(t, err)
	return srv
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestGetSequence(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodGet, "/sequence/7")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"terms":7,"sequence":[0,1,1,2,3,5,8]}`, w.Body.String())

	w = do(t, srv, http.MethodGet, "/sequence/0")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"terms":0,"sequence":[]}`, w.Body.String())
}

func TestGetSequence_BigTerms(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodGet, "/sequence/101")
	require.Equal(t, http.StatusOK, w.Code)

	var res domain.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "354224848179261915075", res.Sequence[100].String())
}

func TestGetSequence_BadRequest(t *testing.T) {
	srv := newTestServer(t, fibgen.WithMaxTerms(100))

	for _, target := range []string{"/sequence/abc", "/sequence/-3", "/sequence/101", "/sequence/%20"} {
		w := do(t, srv, http.MethodGet, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), target)
		assert.NotEmpty(t, body["error"], target)
	}
}

func TestHistory(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodGet, "/history")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	do(t, srv, http.MethodGet, "/sequence/5")
	do(t, srv, http.MethodGet, "/sequence/abc") // rejected requests are not journaled

	w = do(t, srv, http.MethodGet, "/history")
	require.Equal(t, http.StatusOK, w.Code)
	var records []domain.Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, 5, records[0].Terms)
	assert.Equal(t, domain.SourceHTTP, records[0].Source)

	id := records[0].ID
	w = do(t, srv, http.MethodGet, "/history/"+id)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, srv, http.MethodDelete, "/history/"+id)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, srv, http.MethodGet, "/history/"+id)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

type brokenService struct{}

func (brokenService) Sequence(context.Context, int, domain.Source) (*domain.Result, error) {
	return nil, errors.New("boom")
}
func (brokenService) History(context.Context) ([]*domain.Record, error) {
	return nil, errors.New("boom")
}
func (brokenService) Record(context.Context, string) (*domain.Record, error) {
	return nil, errors.New("boom")
}
func (brokenService) Forget(context.Context, string) error { return errors.New("boom") }

func TestServiceErrors(t *testing.T) {
	h, err := NewHandler(brokenService{})
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, do(t, h, http.MethodGet, "/sequence/3").Code)
	assert.Equal(t, http.StatusInternalServerError, do(t, h, http.MethodGet, "/history").Code)
	assert.Equal(t, http.StatusInternalServerError, do(t, h, http.MethodGet, "/history/x").Code)
	assert.Equal(t, http.StatusInternalServerError, do(t, h, http.MethodDelete, "/history/x").Code)
}

func TestHealthInfoAndSpec(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodGet, "/health")
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(t, srv, http.MethodGet, "/info")
	var info map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "fibgen-http", info["app"])
	assert.Equal(t, "1.0.0", info["api_version"])
	assert.Equal(t, strings.TrimSpace(fibgen.Version), info["version"])

	w = do(t, srv, http.MethodGet, "/openapi.yaml")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/sequence/{n}")
}

func TestLoadSpec(t *testing.T) {
	doc, err := LoadSpec(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/sequence/{n}"))
	assert.NotNil(t, doc.Paths.Find("/history/{id}"))
}

func TestMetrics(t *testing.T) {
	srv := newTestServer(t)

	do(t, srv, http.MethodGet, "/sequence/10")
	do(t, srv, http.MethodGet, "/sequence/nope")

	w := do(t, srv, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `fibgen_http_requests_total{code="200",route="/sequence/{n}"} 1`)
	assert.Contains(t, body, `fibgen_http_requests_total{code="400",route="/sequence/{n}"} 1`)
	assert.Contains(t, body, "fibgen_sequence_terms_count 1")
}

func TestMetrics_CountsRecoveredPanics(t *testing.T) {
	srv := newTestServer(t)
	srv.router.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	w := do(t, srv, http.MethodGet, "/boom")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	w = do(t, srv, http.MethodGet, "/metrics")
	assert.Contains(t, w.Body.String(), `fibgen_http_requests_total{code="500",route="/boom"} 1`)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodOptions, "/sequence/3")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSubscribeEvents(t *testing.T) {
	srv := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		srv.ServeHTTP(w, req)
	}()

	require.Eventually(t, func() bool { return srv.Streams.Len() == 1 }, time.Second, 10*time.Millisecond)

	do(t, srv, http.MethodGet, "/sequence/4")

	// Give the stream a moment to flush the event before disconnecting.
	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	body := w.Body.String()
	assert.Contains(t, body, "event: ping")
	assert.Contains(t, body, `data: {"terms":4}`)
	assert.Equal(t, 0, srv.Streams.Len())
}
