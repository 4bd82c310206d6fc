// @title Profile Votes API
// @version 1.0
// @description Personality profiles, users, and comment/vote feeds.
// @host localhost:8080
// @BasePath /

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.uber.org/zap"

	_ "profile-votes/docs"
	"profile-votes/internal/config"
	"profile-votes/internal/db"
	"profile-votes/internal/domain"
	apihttp "profile-votes/internal/http"
	"profile-votes/internal/repository"
	"profile-votes/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	catalog := domain.NewCatalog()
	if err := apihttp.RegisterVoteValidators(catalog); err != nil {
		logger.Fatal("register validators", zap.Error(err))
	}

	commentLimiter := service.NewMemoryRateLimiter(cfg.CommentRateWindow, cfg.CommentRateLimit)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()

		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory rate limiter", zap.Error(err))
		} else {
			commentLimiter = service.NewRedisRateLimiter(redisClient, "comments:rl:", cfg.CommentRateWindow, cfg.CommentRateLimit)
		}
		cancel()
	}

	profileRepo := repository.NewPgProfileRepository(pool)
	userRepo := repository.NewPgUserRepository(pool)
	commentRepo := repository.NewPgCommentRepository(pool)

	profileSvc := service.NewProfileService(logger, profileRepo, catalog, service.ProfileOptions{
		DefaultImage: cfg.DefaultImageURL,
		SeedDefault:  cfg.SeedDefaultProfile,
	})
	userSvc := service.NewUserService(logger, userRepo)
	commentSvc := service.NewCommentService(logger, commentRepo, catalog, commentLimiter)

	router := apihttp.NewRouter(logger, apihttp.Handlers{
		Profiles:      apihttp.NewProfileHandler(logger, profileSvc),
		Users:         apihttp.NewUserHandler(logger, userSvc),
		Comments:      apihttp.NewCommentHandler(logger, commentSvc),
		Personalities: apihttp.NewPersonalityHandler(catalog),
		Health:        apihttp.NewHealthHandler(pool),
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           corsHandler.Handler(router),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("port", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
}
