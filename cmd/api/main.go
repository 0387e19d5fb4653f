package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"scl90-api/internal/config"
	"scl90-api/internal/db"
	"scl90-api/internal/domain"
	apihttp "scl90-api/internal/http"
	"scl90-api/internal/knowledge"
	"scl90-api/internal/repository"
	"scl90-api/internal/scoring"
	"scl90-api/internal/service"

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

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
			redisClient = nil
		}
		cancel()
	}

	// Store de códigos: Postgres si hay DATABASE_URL, si no Redis, y en
	// último término memoria (solo apto para desarrollo).
	var codeStore service.SingleUseStore
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		pgStore := repository.NewPgCodeStore(pool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			logger.Fatal("db schema", zap.Error(err))
		}
		codeStore = pgStore
	} else if redisClient != nil {
		codeStore = service.NewRedisSingleUseStore(redisClient, "gate:code:")
	} else {
		logger.Warn("using in-memory code store; issued codes will not survive restarts")
		codeStore = service.NewMemorySingleUseStore()
	}

	var tokenStore service.SingleUseStore
	if redisClient != nil {
		tokenStore = service.NewRedisSingleUseStore(redisClient, "gate:jti:")
	} else {
		tokenStore = service.NewMemorySingleUseStore()
	}

	tokenSvc := service.NewTokenService(
		cfg.JWTSecret,
		time.Duration(cfg.SubmitTokenTTLMinutes)*time.Minute,
		tokenStore,
	)
	gateSvc := service.NewGateService(
		logger,
		codeStore,
		tokenSvc,
		time.Duration(cfg.CodeTTLHours)*time.Hour,
	)
	if cfg.AdminKeyHash == "" {
		logger.Warn("admin key not configured; code issuance disabled")
	}

	engine := scoring.NewEngine(domain.Factors(), knowledge.NewBase(), logger)
	reportHandler := apihttp.NewReportHandler(logger, engine)
	gateHandler := apihttp.NewGateHandler(logger, gateSvc)
	router := apihttp.NewRouter(logger, reportHandler, gateHandler, tokenSvc, cfg.AdminKeyHash, cfg.CORSAllowedOrigin)

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
