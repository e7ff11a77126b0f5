package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirequality/internal/domain/auth"
	"hirequality/internal/domain/hires"
	"hirequality/internal/platform/config"
	"hirequality/internal/platform/db"
)

func testConfig() config.Config {
	return config.Config{
		Environment:        "test",
		StoreBackend:       config.BackendMemory,
		CORSAllowedOrigins: []string{"*"},
		RateLimitRPS:       100,
		RateLimitBurst:     100,
		MaxBodyBytes:       1 << 20,
		ShutdownTimeout:    time.Second,
		MetricsEnabled:     true,
	}
}

func newTestRouter(cfg config.Config, store hires.Store) http.Handler {
	return NewRouter(Deps{
		Config: cfg,
		Store:  store,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func get(h http.Handler, path string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthAndReadiness(t *testing.T) {
	router := newTestRouter(testConfig(), hires.NewMemoryStore())

	rec := get(router, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	assert.Equal(t, http.StatusOK, get(router, "/readyz").Code)
}

type downStore struct{ hires.Store }

func (downStore) Ping(context.Context) error { return errors.New("down") }

func TestReadinessReportsStoreFailure(t *testing.T) {
	router := newTestRouter(testConfig(), downStore{})
	assert.Equal(t, http.StatusServiceUnavailable, get(router, "/readyz").Code)
}

func TestDashboardEndToEnd(t *testing.T) {
	store := hires.NewMemoryStore(db.SampleHires(42)...)
	router := newTestRouter(testConfig(), store)

	rec := get(router, "/api/v1/hire-quality")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var env struct {
		Data struct {
			Summary hires.Summary `json:"summary"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, len(db.SampleHires(42)), env.Data.Summary.TotalHires)

	page := get(router, "/hire-quality")
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Header().Get("Content-Security-Policy"), "cdn.jsdelivr.net")

	metricsRec := get(router, "/metrics")
	require.Equal(t, http.StatusOK, metricsRec.Code)
	assert.Contains(t, metricsRec.Body.String(), `"dashboardsTotal":2`)

	root := get(router, "/")
	assert.Equal(t, http.StatusFound, root.Code)
	assert.Equal(t, "/hire-quality", root.Header().Get("Location"))
}

func TestMetricsCanBeDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = false
	assert.Equal(t, http.StatusNotFound, get(newTestRouter(cfg, hires.NewMemoryStore()), "/metrics").Code)
}

func TestRoleGuardWhenSecretSet(t *testing.T) {
	cfg := testConfig()
	cfg.JWTSecret = "secret"
	router := newTestRouter(cfg, hires.NewMemoryStore())

	assert.Equal(t, http.StatusUnauthorized, get(router, "/api/v1/hire-quality").Code)
	assert.Equal(t, http.StatusOK, get(router, "/healthz").Code)

	employee, err := auth.GenerateToken("secret", auth.Claims{UserID: "e1", RoleName: "employee"}, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, get(router, "/api/v1/hire-quality", "Authorization", "Bearer "+employee).Code)

	manager, err := auth.GenerateToken("secret", auth.Claims{UserID: "m1", RoleName: auth.RoleManager}, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, get(router, "/api/v1/hire-quality", "Authorization", "Bearer "+manager).Code)
	assert.Equal(t, http.StatusOK, get(router, "/hire-quality", "Authorization", "Bearer "+manager).Code)
}

func TestRateLimitedAPI(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 1
	router := newTestRouter(cfg, hires.NewMemoryStore())

	assert.Equal(t, http.StatusOK, get(router, "/api/v1/hires").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(router, "/api/v1/hires").Code)
	assert.Equal(t, http.StatusOK, get(router, "/healthz").Code, "probes are not rate limited")
}

func TestBodyLimitApplies(t *testing.T) {
	cfg := testConfig()
	cfg.MaxBodyBytes = 1024
	router := newTestRouter(cfg, hires.NewMemoryStore())

	body := `{"hires":[` + strings.Repeat(`{"id":"x","hireDate":"2025-01-01"},`, 100) + `{"id":"y"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hire-quality/aggregate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestOpenStoreBackends(t *testing.T) {
	ctx := context.Background()

	cfg := testConfig()
	store, closeStore, err := openStore(ctx, cfg)
	require.NoError(t, err)
	closeStore()
	assert.IsType(t, &hires.MemoryStore{}, store)

	cfg.StoreBackend = config.BackendSQLite
	cfg.SQLitePath = filepath.Join(t.TempDir(), "hires.db")
	cfg.RunMigrations = true
	store, closeStore, err = openStore(ctx, cfg)
	require.NoError(t, err)
	defer closeStore()
	assert.IsType(t, &db.SQLiteStore{}, store)
	require.NoError(t, store.Ping(ctx))
}
