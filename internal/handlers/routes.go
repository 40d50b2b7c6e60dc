package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/career-assistant/internal/models"
)

// RegisterRoutes mounts every endpoint. history may be nil when generation
// history is disabled.
func RegisterRoutes(app *fiber.App, career *CareerHandler, history *HistoryHandler) {
	app.Get("/health", HandleHealth)

	endpoints := []string{
		"GET /health",
		"POST /api/career/cover-letter",
		"POST /api/career/rewrite-summary-upload",
		"POST /api/career/smart-resume-upload",
	}

	api := app.Group("/api/career")
	api.Post("/cover-letter", career.HandleCoverLetter)
	api.Post("/rewrite-summary-upload", career.HandleRewriteSummary)
	api.Post("/smart-resume-upload", career.HandleSmartResume)

	if history != nil {
		api.Get("/generations", history.HandleListGenerations)
		api.Get("/generations/:id", history.HandleGetGeneration)
		endpoints = append(endpoints,
			"GET /api/career/generations",
			"GET /api/career/generations/:id",
		)
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "AI Career Assistant API",
			"version":   "1.0.0",
			"endpoints": endpoints,
		})
	})
}

func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{Status: "ok"})
}

// ErrorHandler renders errors that escape handlers as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
