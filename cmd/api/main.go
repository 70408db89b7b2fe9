// @title AutoQuiz API
// @version 1.0
// @description Generates multiple-choice quizzes from text and uploaded PDF documents.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:5000
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "autoquiz/cmd/api/docs"
	"autoquiz/internal/adapter"
	"autoquiz/internal/adapter/llm"
	"autoquiz/internal/adapter/pdf"
	"autoquiz/internal/cache"
	"autoquiz/internal/config"
	"autoquiz/internal/database"
	"autoquiz/internal/domain"
	"autoquiz/internal/handler"
	"autoquiz/internal/logger"
	"autoquiz/internal/metrics"
	"autoquiz/internal/middleware"
	"autoquiz/internal/repository"
	"autoquiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// multipartOverhead is headroom above the upload limit for multipart framing.
const multipartOverhead = 1 << 20

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	db, err := database.NewSQLXDB(startupCtx, cfg.DB)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to database", zap.String("driver", cfg.DB.Driver))

	if err := database.Migrate(startupCtx, db.DB, cfg.DB.Driver); err != nil {
		appLogger.Fatal("Failed to migrate database", zap.Error(err))
	}

	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(startupCtx, cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, running without quiz cache", zap.Error(err))
		} else {
			defer redisClient.Close()
			cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
			appLogger.Info("Successfully connected to Redis")
		}
	} else {
		appLogger.Info("Redis is not configured, running without quiz cache")
	}

	documentRepository := repository.NewDocumentDatabaseAdapter(db)
	generator := llm.NewGeneratorFromConfig(cfg.LLM)

	quizCache := service.NewQuizCacheService(cacheAdapter, cfg)
	quizService := service.NewQuizService(generator, documentRepository, quizCache)
	documentService := service.NewDocumentService(documentRepository, pdf.NewExtractor(), cfg)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Upload.MaxBytes + multipartOverhead,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(metrics.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", metrics.Handler())
	handler.SetupRoutes(app,
		handler.NewHealthHandler(cacheAdapter),
		handler.NewQuizHandler(quizService),
		handler.NewDocumentHandler(documentService))

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
