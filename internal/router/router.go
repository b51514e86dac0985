package router

import (
	_ "personas/docs"
	"personas/internal/config"
	"personas/internal/handler"
	"personas/internal/middleware"
	"personas/internal/repository"
	"personas/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const maxBodyBytes = 10 << 20 // 10 MiB

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
// rdb may be nil; the rate limiter then keeps its counters in memory.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.CORSOrigins()))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.ErrorHandler(cfg.IsDevelopment()))
	r.Use(middleware.BodyLimit(maxBodyBytes))
	r.NoRoute(middleware.NotFound())

	var store middleware.RateStore = middleware.NewMemoryStore()
	if rdb != nil {
		store = middleware.NewRedisStore(rdb)
	}

	// ── Repositories ─────────────────────────────────────────────────────────
	personaRepo := repository.NewPersonaRepository(db)
	rolRepo := repository.NewRolRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	personaSvc := service.NewPersonaService(personaRepo, rolRepo)
	rolSvc := service.NewRolService(rolRepo)
	authSvc := service.NewAuthService(personaRepo, rolRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	personasH := handler.NewPersonasHandler(personaSvc)
	rolesH := handler.NewRolesHandler(rolSvc)
	authH := handler.NewAuthHandler(authSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/", handler.Root)

	api := r.Group("/api", middleware.RateLimiter(store, cfg.RateLimitMaxRequests, cfg.RateLimitWindow()))
	{
		api.GET("", handler.Catalogue)
		api.GET("/health", handler.Health(db, rdb, cfg.Env))

		auth := api.Group("/auth")
		authRoutes(auth, authH)

		personas := api.Group("/personas")
		{
			authRoutes(personas, authH)

			personas.POST("", personasH.Crear)
			personas.GET("", personasH.Listar)
			personas.GET("/search", personasH.Buscar)
			personas.GET("/stats", personasH.Estadisticas)
			personas.GET("/role/:role", personasH.ListarPorRol)
			personas.GET("/:id", personasH.ObtenerPorID)
			personas.PUT("/:id", personasH.Actualizar)
			personas.DELETE("/:id", personasH.Eliminar)
		}

		roles := api.Group("/roles")
		{
			roles.POST("", rolesH.Crear)
			roles.GET("", rolesH.Listar)
			roles.GET("/stats", rolesH.Estadisticas)
			roles.GET("/:id", rolesH.ObtenerPorID)
			roles.PUT("/:id", rolesH.Actualizar)
			roles.DELETE("/:id", rolesH.Eliminar)
		}
	}

	// Swagger UI, only outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

// authRoutes mounts the demo auth endpoints; they live under both /auth and /personas.
func authRoutes(g *gin.RouterGroup, h *handler.AuthHandler) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/verify", h.Verify)
	g.GET("/users", h.Usuarios)
}
