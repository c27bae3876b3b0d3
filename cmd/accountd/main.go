package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lavex/account-service/docs"
	"github.com/lavex/account-service/internal/api"
	"github.com/lavex/account-service/internal/app"
	authinfra "github.com/lavex/account-service/internal/infrastructure/auth"
	"github.com/lavex/account-service/internal/infrastructure/config"
	mongodb "github.com/lavex/account-service/internal/infrastructure/db/mongo"
	redisdb "github.com/lavex/account-service/internal/infrastructure/db/redis"
	"github.com/lavex/account-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Account Service API
// @version      1.0
// @description  Account management backend: registration, login, profile retrieval, address and cpf updates.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  cfg.ServiceName,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")

	repo := mongodb.NewAccountRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure indexes")
	}

	verifier := authinfra.NewJWTVerifier(cfg.Auth.Secret)
	resolver := app.NewResolver(repo, verifier, log)

	e := api.NewRouter(resolver, db, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Bool("register_requires_auth", cfg.Auth.RegisterRequiresAuth).Msg("starting HTTP server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
