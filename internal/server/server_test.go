package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junkd0g/kuposhan/internal/config"
	"github.com/junkd0g/kuposhan/internal/dataset"
	"github.com/junkd0g/kuposhan/internal/middleware"
	"github.com/junkd0g/kuposhan/internal/view"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(config.Default())
	require.NoError(t, err)
	return s
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var e ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/v1/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestIndex(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/?metric=wasting&theme=dark", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	page := rec.Body.String()
	assert.Contains(t, page, `<option value="wasting" selected>`)
	assert.Contains(t, page, "#1a1a2e")
	assert.Contains(t, page, `"reduceURL":"/api/v1/reduce"`)

	_, cached := s.cache.Get("html:wasting:dark")
	assert.True(t, cached)

	again := do(t, s, http.MethodGet, "/?metric=wasting&theme=dark", "")
	assert.Equal(t, page, again.Body.String())
}

func TestIndex_BadQuery(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/?metric=obesity", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error, "unknown metric")

	rec = do(t, s, http.MethodGet, "/?theme=sepia", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
}

func TestDataset(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/v1/dataset", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var snap dataset.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Len(t, snap.States, 8)
	assert.Len(t, snap.AgeGroups, 6)
	assert.Equal(t, "Bihar", snap.States[0].State)
}

func TestView(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/v1/view?metric=underweight", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var tree view.Tree
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tree))
	assert.Equal(t, "Underweight by Age Group", tree.AgePanel.ListTitle)
	assert.Len(t, tree.Cards, 3)
}

func TestReduce(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/v1/reduce",
		`{"state":{"selectedMetric":"stunting","selectedState":"National Average"},"event":{"type":"select_metric","value":"wasting"}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res ReduceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, dataset.MetricWasting, res.State.SelectedMetric)
	assert.Equal(t, "National Average", res.State.SelectedState)
	assert.Equal(t, "6-12 months", res.Panel.Insight.AgeGroup)
	assert.Len(t, res.Panel.Breakdown.Slices, 6)
}

func TestReduce_StateSelectedLeavesPanel(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/api/v1/reduce",
		`{"state":{"selectedMetric":"underweight"},"event":{"type":"select_state","value":"Kerala"}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res ReduceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "Kerala", res.State.SelectedState)
	assert.Equal(t, view.RenderAgePanel(view.State{SelectedMetric: dataset.MetricUnderweight}), res.Panel)
}

func TestReduce_NormalizesIncomingMetric(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/api/v1/reduce",
		`{"state":{"selectedMetric":" WASTING "},"event":{"type":"select_state","value":"Kerala"}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res ReduceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, dataset.MetricWasting, res.State.SelectedMetric)
	assert.Equal(t, "Kerala", res.State.SelectedState)
	assert.Equal(t, "Wasting by Age Group", res.Panel.ListTitle)
}

func TestReduce_BadInput(t *testing.T) {
	s := newTestServer(t)

	cases := map[string]string{
		"malformed":      `{"state":`,
		"unknown field":  `{"state":{},"event":{"type":"select_metric","value":"wasting"},"extra":1}`,
		"unknown metric": `{"state":{},"event":{"type":"select_metric","value":"obesity"}}`,
		"unknown event":  `{"state":{},"event":{"type":"zoom","value":"in"}}`,
		"bad state":      `{"state":{"selectedMetric":"obesity"},"event":{"type":"select_metric","value":"wasting"}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/api/v1/reduce", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
		})
	}
}

func TestReduce_WrongMethod(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/v1/reduce", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestNotFound(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decodeError(t, rec).Error)
}

func TestFactorMap(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/v1/factor-map.svg", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<svg")
}

func TestCORS(t *testing.T) {
	cfg := config.Default()
	cfg.Server.AllowedOrigins = []string{"https://dash.example"}
	s, err := New(cfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/reduce", nil)
	req.Header.Set("Origin", "https://dash.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "https://dash.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNew_BadTTL(t *testing.T) {
	cfg := config.Default()
	cfg.Server.CacheTTL = "later"
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	s := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/api/v1/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url) //nolint:noctx // test
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
