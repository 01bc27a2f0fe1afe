package http

import (
	"context"
	"errors"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ResumeExporter runs the export pipeline for one request.
type ResumeExporter interface {
	Export(ctx context.Context, form model.ResumeForm, summary string) (*usecase.RenderedDocument, error)
}

// Summarizer generates summary text from a free-form prompt.
type Summarizer interface {
	GenerateSummary(ctx context.Context, prompt string) (string, error)
}

type UsersStore interface {
	Create(ctx context.Context, u *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateSession(ctx context.Context, s *domain.Session) error
	ResolveSession(ctx context.Context, token uuid.UUID) (uuid.UUID, error)
}

type PortfolioStore interface {
	Save(ctx context.Context, p *domain.Portfolio) error
	FindByUser(ctx context.Context, userID uuid.UUID) (*domain.Portfolio, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

type Handler struct {
	exporter   ResumeExporter
	summarizer Summarizer
	users      UsersStore
	portfolios PortfolioStore
	schemaPath string
}

func NewHandler(e ResumeExporter, s Summarizer, u UsersStore, p PortfolioStore, schemaPath string) *Handler {
	return &Handler{exporter: e, summarizer: s, users: u, portfolios: p, schemaPath: schemaPath}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/auth/register", h.Register)
	app.Post("/auth/login", h.Login)
	app.Post("/ai/summary", h.RequireAuth, h.Summary)
	app.Put("/portfolio", h.RequireAuth, h.SavePortfolio)
	app.Get("/portfolio", h.RequireAuth, h.GetPortfolio)
	app.Delete("/portfolio", h.RequireAuth, h.DeletePortfolio)
	app.Post("/pdf/export", h.ExportPDF)
}

type exportReq struct {
	Form       *model.ResumeForm `json:"form"`
	GenSummary string            `json:"gensummary"`
}

// ExportPDF streams the rasterized résumé back as an attachment. The form is
// checked before anything touches it; all failures come back as the JSON
// error envelope.
func (h *Handler) ExportPDF(c *fiber.Ctx) error {
	var req exportReq
	if err := c.BodyParser(&req); err != nil || req.Form == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Form data missing"})
	}

	doc, err := h.exporter.Export(c.Context(), *req.Form, req.GenSummary)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEngineUnavailable):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "render engine unavailable", "details": err.Error(),
			})
		case errors.Is(err, usecase.ErrEmptyDocument):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "generated document is empty",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to generate PDF", "details": err.Error(),
			})
		}
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.FileName+`"`)
	return c.Send(doc.Data)
}

type summaryReq struct {
	Prompt string `json:"prompt"`
}

func (h *Handler) Summary(c *fiber.Ctx) error {
	var req summaryReq
	if err := c.BodyParser(&req); err != nil || req.Prompt == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "prompt is required"})
	}

	text, err := h.summarizer.GenerateSummary(c.Context(), req.Prompt)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "summary generation failed", "details": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"summary": text})
}
