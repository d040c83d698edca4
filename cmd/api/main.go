// @title          Tamriel Lore API
// @version        1.0
// @description    Forum and encyclopedia backend for an Elder Scrolls fan site.
// @BasePath       /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the session token.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tamriel-archive/lore-api/internal/api"
	"github.com/tamriel-archive/lore-api/internal/api/handler"
	"github.com/tamriel-archive/lore-api/internal/core/service"
	mongostore "github.com/tamriel-archive/lore-api/internal/infrastructure/db/mongo"
	redisstore "github.com/tamriel-archive/lore-api/internal/infrastructure/db/redis"
	"github.com/tamriel-archive/lore-api/internal/infrastructure/queue"
	"github.com/tamriel-archive/lore-api/internal/infrastructure/token"
	"github.com/tamriel-archive/lore-api/internal/pkg/config"
	"github.com/tamriel-archive/lore-api/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "lore-api",
		Env:     cfg.Env,
	})

	// --- Storage ---
	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo unavailable")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis unavailable")
	}
	defer rdb.Close()

	users := mongostore.NewUserRepository(db)
	posts := mongostore.NewPostRepository(db)
	comments := mongostore.NewCommentRepository(db)
	categories := mongostore.NewCategoryRepository(db)
	lore := mongostore.NewLoreRepository(db)
	audits := mongostore.NewAuditRepository(db)

	if err := mongostore.EnsureIndexes(ctx, users, posts, comments, categories, lore, audits); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	// --- Tokens & audit trail ---
	tokens, err := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, token.WithIssuer(cfg.Auth.Issuer))
	if err != nil {
		log.Fatal().Err(err).Msg("token manager")
	}

	dispatcherCtx, stopDispatcher := context.WithCancel(context.Background())
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, service.NewAuditService(audits, log), log)
	dispatcher.Start(dispatcherCtx)

	// --- Services ---
	authService := service.NewAuthService(users, tokens, log)
	created, err := authService.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("seed admin account")
	}
	if created {
		log.Info().Str("email", cfg.Admin.Email).Msg("admin account created")
	}

	router := api.NewRouter(api.Dependencies{
		Auth:       authService,
		Users:      service.NewUserService(users, dispatcher, log),
		Posts:      service.NewPostService(posts, comments, categories, dispatcher, log),
		Comments:   service.NewCommentService(comments, posts, dispatcher, log),
		Categories: service.NewCategoryService(categories, posts, log),
		Lore:       service.NewLoreService(lore, log),
		Verifier:   tokens,
		Limiter:    redisstore.NewRateLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window),
		Pingers: map[string]handler.Pinger{
			"mongo": handler.PingFunc(func(ctx context.Context) error { return mongostore.Ping(ctx, db) }),
			"redis": handler.PingFunc(func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }),
		},
		Cookie:     handler.CookieConfig{Name: cfg.Auth.CookieName, Secure: cfg.Auth.CookieSecure},
		Log:        log,
		Production: cfg.IsProduction(),
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("lore api listening")
		if err := router.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := router.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown")
	}

	// In-flight requests are done; flush buffered audit events.
	stopDispatcher()
	dispatcher.Wait()
}
