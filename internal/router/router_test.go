package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"personas/internal/config"
	"personas/internal/router"
	"personas/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:                  "test",
		CORSOrigin:           "http://localhost:3000",
		RateLimitWindowMS:    60_000,
		RateLimitMaxRequests: 100,
	}
}

func newEngine(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return router.New(cfg, testutil.NewSeededDB(t), nil)
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRootAndCatalogue(t *testing.T) {
	r := newEngine(t, testConfig())

	w := get(r, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"apiUrl":"/api"`)

	w = get(r, "/api")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "GET /api/personas/role/:role")
}

func TestHealth(t *testing.T) {
	r := newEngine(t, testConfig())

	w := get(r, "/api/health")
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Success bool `json:"success"`
		Data    struct {
			Status   string `json:"status"`
			Version  string `json:"version"`
			Database string `json:"database"`
			Redis    string `json:"redis"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "OK", env.Data.Status)
	assert.Equal(t, "1.0.0", env.Data.Version)
	assert.Equal(t, "connected", env.Data.Database)
	assert.Equal(t, "disabled", env.Data.Redis)
}

func TestUnknownRoute(t *testing.T) {
	r := newEngine(t, testConfig())

	w := get(r, "/api/nada")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Ruta GET /api/nada no encontrada")
}

func TestAuthRoutesMountedTwice(t *testing.T) {
	r := newEngine(t, testConfig())

	for _, path := range []string{"/api/auth/users", "/api/personas/users"} {
		w := get(r, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), `"total":5`, path)
	}
}

func TestRateLimitAppliesToAPIOnly(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitMaxRequests = 2
	r := newEngine(t, cfg)

	assert.Equal(t, http.StatusOK, get(r, "/api/roles").Code)
	w := get(r, "/api/roles")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("RateLimit-Remaining"))
	assert.Equal(t, http.StatusTooManyRequests, get(r, "/api/roles").Code)

	// the banner sits outside /api
	assert.Equal(t, http.StatusOK, get(r, "/").Code)
}

func TestCORSAndSecurityHeaders(t *testing.T) {
	r := newEngine(t, testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/personas", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestOversizedBody(t *testing.T) {
	r := newEngine(t, testConfig())

	body := `{"nombre":"` + strings.Repeat("a", 11<<20) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/roles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestSwaggerDocListsEveryRoute(t *testing.T) {
	r := newEngine(t, testConfig())

	w := get(r, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	want := map[string][]string{
		"/api/health":               {"get"},
		"/api/auth/register":        {"post"},
		"/api/auth/login":           {"post"},
		"/api/auth/verify":          {"post"},
		"/api/auth/users":           {"get"},
		"/api/personas":             {"get", "post"},
		"/api/personas/search":      {"get"},
		"/api/personas/stats":       {"get"},
		"/api/personas/role/{role}": {"get"},
		"/api/personas/{id}":        {"get", "put", "delete"},
		"/api/roles":                {"get", "post"},
		"/api/roles/stats":          {"get"},
		"/api/roles/{id}":           {"get", "put", "delete"},
	}
	for path, methods := range want {
		for _, m := range methods {
			assert.Contains(t, doc.Paths[path], m, path)
		}
	}
	assert.Contains(t, doc.Definitions, "dto.ActualizarRolRequest")
}
