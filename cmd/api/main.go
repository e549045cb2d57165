package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/dataset"
	"career-compass/internal/db"
	apihttp "career-compass/internal/http"
	"career-compass/internal/repository"
	"career-compass/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

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

	questionRepo := repository.NewPgQuestionRepository(pool)
	profileRepo := repository.NewPgProfileRepository(pool)
	industryRepo := repository.NewPgIndustryRepository(pool)

	loader := dataset.NewLoader(questionRepo, profileRepo, industryRepo, logger)
	snap, err := loader.Load(ctx)
	if err != nil {
		logger.Fatal("dataset load", zap.Error(err))
	}
	store := dataset.NewStore(snap)

	var limiter service.SubmitRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			window := time.Duration(cfg.SubmitRateWindowMinutes) * time.Minute
			limiter = service.NewRedisSubmitRateLimiter(redisClient, window, cfg.SubmitRateMax)
		}
		cancel()
	}

	surveySvc := service.NewSurveyService(store, logger)
	surveyHandler := apihttp.NewSurveyHandler(logger, surveySvc, limiter)
	assetHandler := apihttp.NewAssetHandler(logger, cfg.StaticDir)
	adminHandler := apihttp.NewAdminHandler(logger, loader, store, cfg.AdminToken)
	router := apihttp.NewRouter(logger, surveyHandler, assetHandler, adminHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
