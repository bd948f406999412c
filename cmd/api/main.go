package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"mathrush/internal/adapter"
	"mathrush/internal/cache"
	"mathrush/internal/config"
	"mathrush/internal/domain"
	"mathrush/internal/handler"
	"mathrush/internal/logger"
	"mathrush/internal/middleware"
	"mathrush/internal/questionbank"
	"mathrush/internal/repository"
	"mathrush/internal/service"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

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

	// In-memory store and repositories
	store := repository.NewMemoryStore()
	txm := repository.NewMemoryTransactionManager(store)
	userRepository := repository.NewMemoryUserRepository(store)
	profileRepository := repository.NewMemoryProfileRepository(store)
	questionRepository := repository.NewMemoryQuestionRepository(store)
	sessionRepository := repository.NewMemoryGameSessionRepository(store)
	rankingRepository := repository.NewMemoryRankingRepository(store)
	logRepository := repository.NewMemoryLogRepository(store)

	// Session tokens live in Redis when configured, in memory otherwise.
	var tokenStore domain.TokenStore
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		tokenStore = adapter.NewRedisTokenStore(redisClient, cfg.Game.SessionTokenTTL)
		appLogger.Info("Redis token store initialized", zap.String("address", cfg.Redis.Address))
	} else {
		tokenStore = repository.NewMemoryTokenStore()
		appLogger.Info("In-memory token store initialized")
	}

	// Seed the question bank
	ctx := context.Background()
	seeded := 0
	err = txm.WithTransaction(ctx, func(ctx context.Context) error {
		for _, question := range questionbank.Generate(cfg.Questions) {
			if err := questionRepository.Save(ctx, question); err != nil {
				return err
			}
			seeded++
		}
		return nil
	})
	if err != nil {
		appLogger.Fatal("Failed to seed question bank", zap.Error(err))
	}
	appLogger.Info("Question bank seeded",
		zap.Int("questions", seeded),
		zap.Int("max_level", cfg.Questions.MaxLevel),
	)

	// Initialize services
	authService := service.NewAuthService(userRepository, profileRepository, tokenStore, txm, cfg)
	profileService := service.NewProfileService(profileRepository, txm, cfg)
	progressService := service.NewProgressService(profileRepository, txm)
	questionService := service.NewQuestionService(questionRepository, txm)
	gameService := service.NewGameService(profileRepository, questionRepository, sessionRepository, rankingRepository, txm, cfg)
	rankingService := service.NewRankingService(profileRepository, rankingRepository, txm)
	logService := service.NewLogService(logRepository, txm)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(profileService)
	gameHandler := handler.NewGameHandler(gameService)
	questionHandler := handler.NewQuestionHandler(questionService)
	progressHandler := handler.NewProgressHandler(progressService)
	rankingHandler := handler.NewRankingHandler(rankingService)
	logHandler := handler.NewLogHandler(logService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/google", authHandler.LoginGoogle)
	authGroup.Post("/logout", middleware.Protected(authService), authHandler.Logout)
	authGroup.Get("/session", authHandler.Session)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	userGroup := app.Group("/users")
	userGroup.Post("/:id", userHandler.CreateProfile)
	userGroup.Get("/:id", userHandler.GetProfile)
	userGroup.Patch("/:id", userHandler.UpdateProfile)
	userGroup.Get("/:id/stats", userHandler.GetStats)

	gameGroup := app.Group("/game")
	gameGroup.Post("/start", gameHandler.Start)
	gameGroup.Post("/answer", gameHandler.Answer)
	gameGroup.Post("/finish", gameHandler.Finish)

	progressGroup := app.Group("/progress")
	progressGroup.Post("/update", progressHandler.Update)
	progressGroup.Get("/:id", progressHandler.Get)

	rankingGroup := app.Group("/ranking")
	rankingGroup.Post("/update", rankingHandler.Update)
	rankingGroup.Get("/global", rankingHandler.Global)
	rankingGroup.Get("/me", middleware.Protected(authService), rankingHandler.Me)

	app.Get("/questions", questionHandler.List)
	app.Get("/questions/:id", questionHandler.Get)

	logGroup := app.Group("/logs")
	logGroup.Post("/error", logHandler.LogError)
	logGroup.Post("/game-session", logHandler.LogGameSession)

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		appLogger.Info("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			appLogger.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	address := fmt.Sprintf(":%d", cfg.Server.Port)
	appLogger.Info("Starting server", zap.String("address", address))
	if err := app.Listen(address); err != nil {
		appLogger.Fatal("Server stopped unexpectedly", zap.Error(err))
	}

	appLogger.Info("Server exited")
}
