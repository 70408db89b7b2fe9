package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"autoquiz/internal/adapter"
	"autoquiz/internal/adapter/llm"
	"autoquiz/internal/cache"
	"autoquiz/internal/config"
	"autoquiz/internal/database"
	"autoquiz/internal/logger"
	"autoquiz/internal/repository"
	"autoquiz/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Warming is pointless without somewhere to keep the results.
	if cfg.Redis.Address == "" {
		l.Fatal("Redis is not configured; nothing to warm")
	}
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		l.Fatal("Failed to initialize Redis client", zap.Error(err))
	}
	defer redisClient.Close()

	db, err := database.NewSQLXDB(ctx, cfg.DB)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	documentRepository := repository.NewDocumentDatabaseAdapter(db)
	quizCache := service.NewQuizCacheService(adapter.NewRedisCacheAdapter(redisClient), cfg)
	quizService := service.NewQuizService(llm.NewGeneratorFromConfig(cfg.LLM), documentRepository, quizCache)
	batchService := service.NewBatchService(documentRepository, quizService, cfg, l)

	summary, err := batchService.WarmQuizCache(ctx)
	if err != nil {
		l.Fatal("Batch quiz generation failed", zap.Error(err))
	}
	if summary.Failed > 0 {
		l.Warn("Some documents could not be processed", zap.Int("failed", summary.Failed))
	}
	if summary.Fallback > 0 {
		l.Warn("Some documents were not warmed because the model was unavailable",
			zap.Int("fallback", summary.Fallback))
	}
}
