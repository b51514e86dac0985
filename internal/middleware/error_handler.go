package middleware

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"time"

	"personas/internal/apierror"
	"personas/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const msgInternal = "Error interno del servidor"

// ErrorHandler turns the last error attached with c.Error into the JSON
// envelope. Handlers never write error responses themselves.
// Internal details are only echoed back when exposeDetails is true.
func ErrorHandler(exposeDetails bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, body := mapError(err, exposeDetails)

		ev := log.Warn()
		if status >= http.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("request_id", c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Err(err).
			Msg("request failed")

		c.AbortWithStatusJSON(status, body)
	}
}

func mapError(err error, exposeDetails bool) (int, dto.Envelope) {
	var (
		appErr    *apierror.AppError
		valErr    *apierror.ValidationError
		malformed *apierror.MalformedBodyError
		tooLarge  *http.MaxBytesError
		pgErr     *pgconn.PgError
	)

	switch {
	case errors.As(err, &appErr):
		return appErr.Status, dto.Envelope{Message: appErr.Message, Error: http.StatusText(appErr.Status)}

	case errors.As(err, &valErr):
		return http.StatusBadRequest, dto.Envelope{
			Message: "Errores de validación",
			Error:   "Validation failed",
			Data:    dto.ValidationErrorsData{Errors: valErr.Fields},
		}

	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, dto.Envelope{
			Message: "El cuerpo de la petición excede el tamaño permitido",
			Error:   "Payload too large",
		}

	case errors.As(err, &malformed):
		return http.StatusBadRequest, dto.Envelope{
			Message: "JSON inválido en el cuerpo de la petición",
			Error:   "Invalid JSON syntax",
		}

	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.As(err, &pgErr) && pgErr.Code == "23505":
		return http.StatusConflict, dto.Envelope{
			Message: "Ya existe un registro con estos datos",
			Error:   "Duplicate entry",
		}

	case errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.As(err, &pgErr) && pgErr.Code == "23503":
		return http.StatusBadRequest, dto.Envelope{
			Message: "Referencia inválida en los datos",
			Error:   "Invalid reference",
		}

	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, dto.Envelope{
			Message: "Recurso no encontrado",
			Error:   "Not found",
		}

	case isConnectionError(err):
		return http.StatusServiceUnavailable, dto.Envelope{
			Message: "Error de conexión a la base de datos",
			Error:   "Database connection failed",
		}
	}

	detail := "Internal server error"
	if exposeDetails {
		detail = err.Error()
	}
	return http.StatusInternalServerError, dto.Envelope{Message: msgInternal, Error: detail}
}

func isConnectionError(err error) bool {
	var (
		connErr *pgconn.ConnectError
		opErr   *net.OpError
	)
	return errors.As(err, &connErr) ||
		errors.As(err, &opErr) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, driver.ErrBadConn)
}

// NotFound answers unknown routes with the standard envelope.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound, dto.Envelope{
			Message: fmt.Sprintf("Ruta %s %s no encontrada", c.Request.Method, c.Request.URL.Path),
			Error:   "Route not found",
		})
	}
}

// Recovery handles panics and converts them into 500 responses.
// Stack traces go to the log, never to the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Interface("panic", r).
					Stack().
					Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Envelope{
					Message: msgInternal,
					Error:   "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// Logger logs each request with method, path, status, latency, and request_id.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := zerolog.InfoLevel
		switch {
		case status >= http.StatusInternalServerError:
			level = zerolog.ErrorLevel
		case status >= http.StatusBadRequest:
			level = zerolog.WarnLevel
		}
		log.WithLevel(level).
			Str("request_id", c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("ip", c.ClientIP()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
