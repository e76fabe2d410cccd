package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/todoexpert/todo-system/docs"
	"github.com/todoexpert/todo-system/internal/api"
	"github.com/todoexpert/todo-system/internal/api/handler"
	"github.com/todoexpert/todo-system/internal/core/domain"
	"github.com/todoexpert/todo-system/internal/core/service"
	"github.com/todoexpert/todo-system/internal/infrastructure/auth"
	mongodb "github.com/todoexpert/todo-system/internal/infrastructure/db/mongo"
	redisdb "github.com/todoexpert/todo-system/internal/infrastructure/db/redis"
	"github.com/todoexpert/todo-system/internal/infrastructure/queue"
	"github.com/todoexpert/todo-system/internal/infrastructure/weather"
	"github.com/todoexpert/todo-system/internal/pkg/config"
	"github.com/todoexpert/todo-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title                       Todo System API
// @version                     1.0
// @description                 Todo items with managers, comments and weather stamps.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "todo-system",
		Env:     cfg.Env,
	})

	policy, err := domain.ParseCommentPolicy(cfg.CommentPolicy)
	if err != nil {
		log.Fatal().Err(err).Str("comment_policy", cfg.CommentPolicy).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb unavailable")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	users := mongodb.NewUserRepository(db)
	todos := mongodb.NewTodoRepository(db)
	managers := mongodb.NewManagerRepository(db)
	comments := mongodb.NewCommentRepository(db)

	if err := mongodb.EnsureIndexes(ctx, users, todos, managers, comments); err != nil {
		log.Fatal().Err(err).Msg("mongodb index setup failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis unavailable")
	}
	defer rdb.Close()

	// --- Admin access audit ---
	accessLog := redisdb.NewAccessLog(rdb)
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, accessLog, logger.Component("audit"))
	dispatcher.Start(ctx)

	// --- Services ---
	tokens := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	weatherClient := weather.NewClient(
		weather.Config{URL: cfg.Weather.URL, Timeout: cfg.Weather.Timeout},
		logger.Component("weather"),
	)

	e := api.NewRouter(api.Deps{
		Auth:     service.NewAuthService(users, hasher, tokens, logger.Component("auth")),
		Users:    service.NewUserService(users, hasher, logger.Component("users")),
		Todos:    service.NewTodoService(todos, weatherClient, logger.Component("todos")),
		Managers: service.NewManagerService(managers, users, todos, tokens, logger.Component("managers")),
		Comments: service.NewCommentService(comments, todos, managers, policy, logger.Component("comments")),
		Access:   service.NewAdminAccessService(dispatcher, accessLog, logger.Component("audit")),
		Tokens:   tokens,
		HealthChecks: map[string]handler.Check{
			"mongodb": mongodb.Ping(client),
			"redis":   redisdb.Ping(rdb),
		},
		Log: log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("comment_policy", string(policy)).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
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
