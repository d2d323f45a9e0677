package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/itqan-dev/quran-apps-edge/internal/catalog"
	"github.com/itqan-dev/quran-apps-edge/internal/detector"
	"github.com/itqan-dev/quran-apps-edge/internal/gateway"
	"github.com/itqan-dev/quran-apps-edge/internal/meta"
)

func newTestServer(t *testing.T) *Server {
	return newTestServerWithLogger(t, zap.NewNop())
}

func newTestServerWithLogger(t *testing.T, logger *zap.Logger) *Server {
	t.Helper()

	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, "<html><head></head><body>shell</body></html>")
	}))
	t.Cleanup(origin.Close)
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "{}", http.StatusNotFound)
	}))
	t.Cleanup(api.Close)

	gw := gateway.New(
		gateway.NewOriginClient(origin.URL, time.Second),
		catalog.New(catalog.Config{BaseURL: api.URL, Timeout: time.Second}, logger),
		detector.NewCrawler(nil),
		meta.NewSynthesizer(meta.Config{BaseURL: "https://quran-apps.itqan.dev", SiteName: "Quran Apps Directory"}),
		meta.RegexRewriter{},
		nil,
		logger,
	)
	return NewServer(gw, logger)
}

func TestServer_Healthz(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_Readyz(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ready"}`, rec.Body.String())
}

func TestServer_Metrics(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestServer_WildcardReachesGateway(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/en/app/wahy", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 Chrome/120")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "shell")
}

func TestServer_SetsRequestID(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, "fixed-id", rec.Header().Get("X-Request-ID"))
}

func TestServer_LogsRequestID(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	srv := newTestServerWithLogger(t, zap.New(core))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "trace-me")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "trace-me", fields["request_id"])
	require.Equal(t, "/healthz", fields["path"])
}
