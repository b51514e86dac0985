package handler

import (
	"context"
	"net/http"
	"time"

	"personas/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Version is reported by the banner, the catalogue and the health check.
const Version = "1.0.0"

type healthData struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Database    string `json:"database"`
	Redis       string `json:"redis"`
}

// Health pings the database and, when configured, Redis. Only the database
// decides the status code: Redis backs the rate limiter, which fails open.
//
// @Summary Estado del servicio
// @Tags health
// @Produce json
// @Success 200 {object} dto.Envelope
// @Failure 503 {object} dto.Envelope
// @Router /api/health [get]
func Health(db *gorm.DB, rdb *redis.Client, env string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		data := healthData{
			Status:      "OK",
			Timestamp:   time.Now().UTC().Format(time.RFC3339Nano),
			Version:     Version,
			Environment: env,
			Database:    "connected",
			Redis:       "disabled",
		}

		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			data.Status = "ERROR"
			data.Database = "error"
		}

		if rdb != nil {
			data.Redis = "connected"
			if rdb.Ping(ctx).Err() != nil {
				data.Redis = "error"
			}
		}

		if data.Database != "connected" {
			c.JSON(http.StatusServiceUnavailable, dto.Envelope{
				Message: "Error de conexión a la base de datos",
				Data:    data,
				Error:   "Database connection failed",
			})
			return
		}
		ok(c, http.StatusOK, "API funcionando correctamente", data)
	}
}

// Root is the service banner at GET /.
func Root(c *gin.Context) {
	ok(c, http.StatusOK, "API de Gestión de Personas - Servidor funcionando", gin.H{
		"version":     Version,
		"timestamp":   time.Now().UTC().Format(time.RFC3339Nano),
		"apiUrl":      "/api",
		"healthCheck": "/api/health",
	})
}

// Catalogue lists the endpoints at GET /api.
func Catalogue(c *gin.Context) {
	ok(c, http.StatusOK, "API de Gestión de Personas con Roles", gin.H{
		"version":     Version,
		"description": "API RESTful para gestión de personas con autenticación básica y sistema de roles",
		"endpoints": gin.H{
			"auth":     "/api/auth",
			"personas": "/api/personas",
			"roles":    "/api/roles",
			"health":   "/api/health",
		},
		"authEndpoints": gin.H{
			"register": "POST /api/auth/register",
			"login":    "POST /api/auth/login",
			"verify":   "POST /api/auth/verify",
			"users":    "GET /api/auth/users",
		},
		"personasEndpoints": gin.H{
			"register": "POST /api/personas/register",
			"login":    "POST /api/personas/login",
			"verify":   "POST /api/personas/verify",
			"users":    "GET /api/personas/users",
			"create":   "POST /api/personas",
			"getAll":   "GET /api/personas",
			"getById":  "GET /api/personas/:id",
			"update":   "PUT /api/personas/:id",
			"delete":   "DELETE /api/personas/:id",
			"search":   "GET /api/personas/search?term=",
			"stats":    "GET /api/personas/stats",
			"byRole":   "GET /api/personas/role/:role",
		},
		"rolesEndpoints": gin.H{
			"create":  "POST /api/roles",
			"getAll":  "GET /api/roles",
			"getById": "GET /api/roles/:id",
			"update":  "PUT /api/roles/:id",
			"delete":  "DELETE /api/roles/:id",
			"stats":   "GET /api/roles/stats",
		},
	})
}
