package http

import (
	"errors"
	"time"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SavePortfolio validates the submitted document against the portfolio schema
// and upserts it for the authenticated user.
func (h *Handler) SavePortfolio(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uuid.UUID)

	var doc map[string]interface{}
	if err := c.BodyParser(&doc); err != nil || len(doc) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "portfolio document missing"})
	}

	if h.schemaPath != "" {
		if err := model.ValidatePortfolio(h.schemaPath, doc); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "portfolio document invalid", "details": err.Error(),
			})
		}
	}

	now := time.Now()
	p := &domain.Portfolio{
		ID:        uuid.New(),
		UserID:    userID,
		Document:  doc,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.portfolios.Save(c.Context(), p); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save portfolio", "details": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "saved"})
}

func (h *Handler) GetPortfolio(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uuid.UUID)

	p, err := h.portfolios.FindByUser(c.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "portfolio not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load portfolio", "details": err.Error(),
		})
	}
	return c.JSON(p)
}

func (h *Handler) DeletePortfolio(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uuid.UUID)

	if err := h.portfolios.DeleteByUser(c.Context(), userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "portfolio not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to delete portfolio", "details": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}
