package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"personas/internal/apierror"
	"personas/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() { gin.SetMode(gin.TestMode) }

func serve(r *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, body))
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) dto.Envelope {
	t.Helper()
	var env dto.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

// ── ErrorHandler ──────────────────────────────────────────────────────────────

func TestMapError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"app error", apierror.NotFound("Persona no encontrada"), http.StatusNotFound, "Persona no encontrada"},
		{"wrapped app error", fmt.Errorf("svc: %w", apierror.Conflict("dup")), http.StatusConflict, "dup"},
		{"validation", apierror.NewValidation(apierror.FieldError{Field: "nombre", Message: "x"}), http.StatusBadRequest, "Errores de validación"},
		{"malformed", &apierror.MalformedBodyError{Err: io.ErrUnexpectedEOF}, http.StatusBadRequest, "JSON inválido en el cuerpo de la petición"},
		{"too large", &apierror.MalformedBodyError{Err: &http.MaxBytesError{Limit: 10}}, http.StatusRequestEntityTooLarge, "El cuerpo de la petición excede el tamaño permitido"},
		{"gorm duplicate", gorm.ErrDuplicatedKey, http.StatusConflict, "Ya existe un registro con estos datos"},
		{"pg unique", &pgconn.PgError{Code: "23505"}, http.StatusConflict, "Ya existe un registro con estos datos"},
		{"gorm fk", gorm.ErrForeignKeyViolated, http.StatusBadRequest, "Referencia inválida en los datos"},
		{"pg fk", &pgconn.PgError{Code: "23503"}, http.StatusBadRequest, "Referencia inválida en los datos"},
		{"not found", gorm.ErrRecordNotFound, http.StatusNotFound, "Recurso no encontrado"},
		{"net", &net.OpError{Op: "dial", Err: errors.New("refused")}, http.StatusServiceUnavailable, "Error de conexión a la base de datos"},
		{"other", errors.New("boom"), http.StatusInternalServerError, "Error interno del servidor"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, env := mapError(tc.err, false)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.message, env.Message)
			assert.False(t, env.Success)
		})
	}
}

func TestMapError_InternalDetailOnlyInDevelopment(t *testing.T) {
	_, prod := mapError(errors.New("pq: secret detail"), false)
	assert.Equal(t, "Internal server error", prod.Error)

	_, dev := mapError(errors.New("pq: secret detail"), true)
	assert.Equal(t, "pq: secret detail", dev.Error)
}

func TestErrorHandler_WritesEnvelope(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(false))
	r.GET("/x", func(c *gin.Context) { _ = c.Error(apierror.Unauthorized("Credenciales inválidas")) })

	w := serve(r, http.MethodGet, "/x", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := decode(t, w)
	assert.Equal(t, "Credenciales inválidas", env.Message)
	assert.False(t, env.Success)
}

func TestNotFound(t *testing.T) {
	r := gin.New()
	r.NoRoute(NotFound())

	w := serve(r, http.MethodPost, "/api/nada", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decode(t, w)
	assert.Equal(t, "Ruta POST /api/nada no encontrada", env.Message)
	assert.Equal(t, "Route not found", env.Error)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	w := serve(r, http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "kaboom")
}

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(false), BodyLimit(16))
	r.POST("/echo", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			_ = c.Error(err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	w := serve(r, http.MethodPost, "/echo", strings.NewReader(strings.Repeat("a", 64)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = serve(r, http.MethodPost, "/echo", strings.NewReader("small"))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := serve(r, http.MethodGet, "/", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, w.Header().Get("X-Request-ID"), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())
}

// ── Rate limiter ──────────────────────────────────────────────────────────────

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimiter(NewMemoryStore(), 2, time.Minute))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := serve(r, http.MethodGet, "/", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("RateLimit-Limit"))
	}

	w := serve(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	env := decode(t, w)
	assert.Equal(t, "Demasiadas peticiones desde esta IP, inténtalo de nuevo más tarde", env.Message)
	assert.Equal(t, "Rate limit exceeded", env.Error)
}

func TestMemoryStore_WindowResetsAndSweeps(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.now = func() time.Time { return now }
	ctx := context.Background()

	n, _, _ := s.Hit(ctx, "1.1.1.1", time.Minute)
	assert.Equal(t, int64(1), n)
	n, reset, _ := s.Hit(ctx, "1.1.1.1", time.Minute)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, now.Add(time.Minute), reset)
	_, _, _ = s.Hit(ctx, "2.2.2.2", time.Minute)

	now = now.Add(2 * time.Minute)
	n, _, _ = s.Hit(ctx, "1.1.1.1", time.Minute)
	assert.Equal(t, int64(1), n, "new window")
	assert.Len(t, s.entries, 1, "expired 2.2.2.2 swept")
}

type failingStore struct{}

func (failingStore) Hit(context.Context, string, time.Duration) (int64, time.Time, error) {
	return 0, time.Time{}, errors.New("redis down")
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	r := gin.New()
	r.Use(RateLimiter(failingStore{}, 1, time.Minute))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", nil).Code)
	}
}
