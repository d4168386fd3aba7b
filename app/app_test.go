package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promisewatch-be/config"
	"promisewatch-be/middlewares"
	"promisewatch-be/models"
	authUtils "promisewatch-be/utils"
)

const adminKey = "open-sesame"

type countingLimiter struct {
	mu    sync.Mutex
	count map[string]int64
}

func (c *countingLimiter) Hit(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count[key]++
	return c.count[key], window, nil
}

func newTestServer(t *testing.T, reportLimit int) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sources := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	t.Cleanup(sources.Close)

	hash, err := authUtils.HashAdminKey(adminKey)
	require.NoError(t, err)

	cfg := &config.Config{
		DocStoreDriver:   config.DocStoreMemory,
		CacheDriver:      config.CacheMemory,
		SeedBatchSize:    7,
		HTTPTimeout:      time.Second,
		JWTSecret:        "test-secret",
		AdminKeyHash:     hash,
		WorldBankBaseURL: sources.URL,
		ExchangeURL:      sources.URL,
	}
	a, err := Build(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	// Build only wires the Redis counter; tests count in memory instead.
	if reportLimit > 0 {
		cfg.ReportRateLimit = reportLimit
		a.RateCounter = &countingLimiter{count: map[string]int64{}}
	}

	srv := httptest.NewServer(a.Router())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string, headers map[string]string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func admin() map[string]string { return map[string]string{middlewares.AdminKeyHeader: adminKey} }

func signIn(t *testing.T, base string) (string, map[string]string) {
	t.Helper()
	code, body := do(t, http.MethodPost, base+"/api/auth/anonymous", "", nil)
	require.Equal(t, http.StatusCreated, code)
	uid := body["uid"].(string)
	return uid, map[string]string{"Authorization": "Bearer " + body["token"].(string)}
}

func TestPing(t *testing.T) {
	srv := newTestServer(t, 0)
	code, body := do(t, http.MethodGet, srv.URL+"/ping", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "pong", body["message"])
}

func TestAnonymousSession(t *testing.T) {
	srv := newTestServer(t, 0)

	uid, auth := signIn(t, srv.URL)
	code, body := do(t, http.MethodGet, srv.URL+"/api/auth/me", "", auth)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, uid, body["uid"])
	assert.Equal(t, true, body["anonymous"])

	code, _ = do(t, http.MethodGet, srv.URL+"/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestAdminSeedAndPromiseReads(t *testing.T) {
	srv := newTestServer(t, 0)

	code, _ := do(t, http.MethodPost, srv.URL+"/api/admin/promises/seed", "", nil)
	require.Equal(t, http.StatusForbidden, code)

	code, body := do(t, http.MethodPost, srv.URL+"/api/admin/promises/seed", "", admin())
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 20, body["count"])

	code, body = do(t, http.MethodPost, srv.URL+"/api/admin/promises/seed", `{"party":"npp","year":2030}`, admin())
	assert.Equal(t, http.StatusNotFound, code)
	assert.EqualValues(t, 0, body["count"])

	code, body = do(t, http.MethodGet, srv.URL+"/api/promises?party=npp", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 4, body["count"])
	assert.NotContains(t, body, "error")

	code, body = do(t, http.MethodGet, srv.URL+"/api/promises/flagship", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 5, body["count"])

	code, _ = do(t, http.MethodGet, srv.URL+"/api/promises/search", "", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = do(t, http.MethodGet, srv.URL+"/api/promises/search?q=24-HOUR+Economy", "", nil)
	require.Equal(t, http.StatusOK, code)
	found := body["promises"].([]any)
	require.Len(t, found, 1)
	id := found[0].(map[string]any)["id"].(string)

	code, body = do(t, http.MethodGet, srv.URL+"/api/promises/"+id, "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, id, body["id"])

	code, _ = do(t, http.MethodGet, srv.URL+"/api/promises/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, body = do(t, http.MethodGet, srv.URL+"/api/promises/"+id+"/verification", "", nil)
	require.Equal(t, http.StatusOK, code)
	verification := body["verification"].(map[string]any)
	assert.Equal(t, string(models.GDPGrowth), verification["indicator"])
	assert.Equal(t, "off-track", verification["status"], "default GDP change is negative")

	code, body = do(t, http.MethodGet, srv.URL+"/api/stats", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 20, body["totalPromises"])

	code, body = do(t, http.MethodPost, srv.URL+"/api/admin/promises/reseed", "", admin())
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 20, body["count"])

	code, body = do(t, http.MethodPost, srv.URL+"/api/admin/promises/clear", "", admin())
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 20, body["count"])
}

func TestReportSubmission(t *testing.T) {
	srv := newTestServer(t, 2)
	uid, auth := signIn(t, srv.URL)

	code, _ := do(t, http.MethodPost, srv.URL+"/api/reports", `{"title":"x","details":"y"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body := do(t, http.MethodPost, srv.URL+"/api/reports", `{"title":"  ","details":"Road abandoned"}`, auth)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "title is required", body["error"])

	code, body = do(t, http.MethodPost, srv.URL+"/api/reports",
		`{"title":"Unfinished road","details":"Work stopped","promiseId":"p1","location":{"lat":5.6,"lng":-0.19}}`, auth)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["id"])

	code, _ = do(t, http.MethodPost, srv.URL+"/api/reports", `{"title":"again","details":"again"}`, auth)
	assert.Equal(t, http.StatusTooManyRequests, code)

	code, body = do(t, http.MethodGet, srv.URL+"/api/reports/recent", "", nil)
	require.Equal(t, http.StatusOK, code)
	require.EqualValues(t, 1, body["count"])
	report := body["reports"].([]any)[0].(map[string]any)
	assert.Equal(t, uid, report["uid"])
	assert.Equal(t, "pending", report["status"])

	code, body = do(t, http.MethodGet, srv.URL+"/api/promises/p1/reports", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, body["count"])
}

func TestIndicatorsFallBackToDefaults(t *testing.T) {
	srv := newTestServer(t, 0)

	code, body := do(t, http.MethodGet, srv.URL+"/api/indicators", "", nil)
	require.Equal(t, http.StatusOK, code)
	for _, key := range []string{"inflation", "gdp", "exchange", "unemployment", "debt"} {
		assert.Contains(t, body, key)
	}
	assert.EqualValues(t, 23.2, body["inflation"].(map[string]any)["value"])

	code, body = do(t, http.MethodGet, srv.URL+"/api/indicators/usd_ghs", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 15.85, body["value"])

	code, _ = do(t, http.MethodGet, srv.URL+"/api/indicators/housing", "", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, body = do(t, http.MethodPost, srv.URL+"/api/admin/indicators/snapshot", "", admin())
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 5, body["count"])

	code, body = do(t, http.MethodGet, srv.URL+"/api/indicators/inflation/history", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, body["count"])
}
