package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog/log"

	"alfredoptarigan/career-assistant/internal/config"
	"alfredoptarigan/career-assistant/internal/handlers"
	"alfredoptarigan/career-assistant/internal/repositories"
	"alfredoptarigan/career-assistant/internal/services"
)

// multipart overhead on top of the resume itself
const formFieldAllowance = 1 << 20

func main() {
	// Load configuration
	cfg := config.Load()
	config.InitLogger(cfg)
	log.Info().Str("env", cfg.Server.Env).Msg("✅ Config loaded successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize inference provider
	inference, err := services.NewInferenceFromConfig(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to initialize inference provider")
	}
	log.Info().
		Str("provider", inference.Provider()).
		Str("model", inference.Model()).
		Msg("✅ Inference provider initialized")

	// Optional generation history
	recorder := services.NewNoopRecorder()
	var historyHandler *handlers.HistoryHandler
	if cfg.History.Enabled {
		db, err := config.InitDatabase(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("❌ Failed to initialize database")
		}

		genRepo := repositories.NewGenerationRepository(db)
		recorder = services.NewHistoryRecorder(genRepo, cfg.History.Workers, cfg.History.QueueSize)
		historyHandler = handlers.NewHistoryHandler(genRepo)
	} else {
		log.Info().Msg("History disabled, generations will not be recorded")
	}
	recorder.Start(ctx)

	careerService := services.NewCareerService(inference, services.NewTextExtractor(), recorder)
	careerHandler := handlers.NewCareerHandler(careerService, cfg.Storage.MaxFileSize)
	log.Info().Msg("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Career Assistant API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.LLM.Timeout + 30*time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + formFieldAllowance,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	handlers.RegisterRoutes(app, careerHandler, historyHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info().Msg("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("❌ Server forced to shutdown")
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("🚀 Server starting")
	log.Info().Msgf("📖 API Documentation: http://localhost%s", addr)

	if err := app.Listen(addr); err != nil {
		log.Error().Err(err).Msg("❌ Failed to start server")
	}

	recorder.Stop()
}
