// @title Quiz Coach API
// @version 1.0
// @description Question generation, answer evaluation and ranking for classroom quizzes.
// @host localhost:8090
// @BasePath /
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

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "quiz-coach/cmd/api/docs"
	"quiz-coach/internal/app"
	"quiz-coach/internal/config"
	"quiz-coach/internal/handler"
	"quiz-coach/internal/logger"
	"quiz-coach/internal/middleware"
	"quiz-coach/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	storage, err := app.OpenStorage(ctx, cfg.DB)
	if err != nil {
		appLogger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer storage.Close()
	appLogger.Info("Storage ready", zap.String("driver", cfg.DB.Driver))

	redisClient, cacheAdapter, err := app.OpenCache(ctx, cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	pipeline, err := app.NewPipeline(ctx, cfg)
	if err != nil {
		appLogger.Fatal("Failed to build question pipeline", zap.Error(err))
	}

	hints := service.NewHintTracker(cacheAdapter, cfg.Quiz.HintTTL)
	questionService := service.NewQuestionService(pipeline, storage.Questions, storage.Shared, storage.TM, hints, cfg.Quiz)
	answerService := service.NewAnswerService(storage.Questions, storage.Answers, hints)
	rankingService := service.NewRankingService(storage.Answers, storage.Questions, storage.Roster, cfg.Quiz.LeaderboardSize)

	var cachePinger handler.Pinger
	if cacheAdapter != nil {
		cachePinger = cacheAdapter
	}

	server := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.WriteTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	server.Use(middleware.RequestLogger())
	server.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	server.Use(recover.New())

	server.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(server, handler.Handlers{
		Question: handler.NewQuestionHandler(questionService),
		Answer:   handler.NewAnswerHandler(answerService),
		Ranking:  handler.NewRankingHandler(rankingService),
		Health:   handler.NewHealthHandler(storage, cachePinger),
	})

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := server.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
