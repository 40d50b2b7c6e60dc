package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/career-assistant/internal/models"
	"alfredoptarigan/career-assistant/internal/repositories"
)

const defaultHistoryLimit = 20

type HistoryHandler struct {
	genRepo repositories.GenerationRepository
}

func NewHistoryHandler(genRepo repositories.GenerationRepository) *HistoryHandler {
	return &HistoryHandler{
		genRepo: genRepo,
	}
}

// HandleListGenerations handles GET /api/career/generations
func (h *HistoryHandler) HandleListGenerations(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultHistoryLimit)
	if limit <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "limit must be a positive integer",
		})
	}

	gens, err := h.genRepo.FindRecent(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load generation history",
		})
	}

	return c.JSON(models.GenerationListResponse{
		Generations: gens,
		Count:       len(gens),
	})
}

// HandleGetGeneration handles GET /api/career/generations/:id
func (h *HistoryHandler) HandleGetGeneration(c *fiber.Ctx) error {
	genID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid generation ID format",
		})
	}

	gen, err := h.genRepo.FindByID(genID)
	if err != nil {
		if errors.Is(err, repositories.ErrGenerationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Generation not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load generation",
		})
	}

	return c.JSON(gen)
}
