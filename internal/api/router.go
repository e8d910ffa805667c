package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/ecommercekit/auth-api/docs"
	"github.com/ecommercekit/auth-api/internal/api/handler"
	"github.com/ecommercekit/auth-api/internal/api/middleware"
	"github.com/ecommercekit/auth-api/internal/core/domain"
	"github.com/ecommercekit/auth-api/internal/core/hash"
	"github.com/ecommercekit/auth-api/internal/core/ports"
	"github.com/ecommercekit/auth-api/internal/core/service"
	"github.com/ecommercekit/auth-api/internal/core/token"
	mongodb "github.com/ecommercekit/auth-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/ecommercekit/auth-api/internal/infrastructure/db/redis"
	"github.com/ecommercekit/auth-api/internal/infrastructure/http/handlers"
	"github.com/ecommercekit/auth-api/internal/pkg/config"
)

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, recorder ports.EventRecorder, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("auth_http"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	hasher := hash.NewBcryptHasher(0)
	tokenManager := token.NewManager(cfg.JWTSecret, log)
	userService := service.NewUserService(userRepo, hasher, tokenManager, recorder, cfg.TokenTTL, log)
	userHandler := handler.NewUserHandler(userService)

	limiter := redisinfra.NewRateLimiter(rdb, cfg.RateLimitMax, cfg.RateLimitWindow)

	// --- Auth routes (rate limited, no token gate) ---
	auth := e.Group("/auth", middleware.RateLimit(limiter, log))
	auth.POST("/register", userHandler.Register)
	auth.POST("/login", userHandler.Login)

	// --- Protected routes ---
	users := e.Group("/users", middleware.Auth(tokenManager))
	users.GET("/profile", userHandler.Profile)
	users.PUT("/profile", userHandler.UpdateProfile)
	users.DELETE("/:id", userHandler.Delete, middleware.RBAC(domain.RoleAdmin))

	// --- Operational endpoints ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
