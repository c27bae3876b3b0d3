package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lavex/account-service/internal/api/handler"
	"github.com/lavex/account-service/internal/api/middleware"
	"github.com/lavex/account-service/internal/app"
	"github.com/lavex/account-service/internal/infrastructure/config"
	redisdb "github.com/lavex/account-service/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The resolver is the only path from handlers to use cases; the mongo/redis
// handles are needed solely by the readiness probe and the dedup checker.
func NewRouter(resolver *app.Resolver, db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	// Subsystem name, not the service name: prometheus identifiers cannot
	// carry hyphens.
	e.Use(echoprometheus.NewMiddleware("account"))

	// --- Dependencies ---
	accountHandler := handler.NewAccountHandler(resolver, redisdb.NewDedupChecker(rdb), log)
	authGate := middleware.Auth(resolver)

	// --- Account routes ---
	e.POST("/login", accountHandler.Login)
	if cfg.Auth.RegisterRequiresAuth {
		e.POST("/register-account", accountHandler.Register, authGate)
	} else {
		e.POST("/register-account", accountHandler.Register)
	}
	e.GET("/retrieve-user", accountHandler.RetrieveUser, authGate)
	e.PATCH("/update-address", accountHandler.UpdateAddress, authGate)
	e.PATCH("/update-cpf", accountHandler.UpdateCpf, authGate)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
