package main

import (
	"context"
	"errors"
	"log"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}
	appConfig := config.LoadAppConfig()

	// infra setup
	pool, err := infra.NewPool(ctx)
	if err != nil {
		log.Fatalf("database not available: %v", err)
	}
	defer pool.Close()

	if err := migration.RunMigrations(ctx, pool); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	renderer := infra.NewChromedpRenderer(appConfig)
	exporter := usecase.NewExporter(renderer)
	summarizer := ai.NewClient(config.LoadAIConfig())

	usersRepo := repo.NewUsersRepo(pool)
	portfoliosRepo := repo.NewPortfoliosRepo(pool)

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: "*"}))

	h := httpadapter.NewHandler(exporter, summarizer, usersRepo, portfoliosRepo, appConfig.SchemaPath)
	h.RegisterRoutes(app)

	log.Printf("server listening on :%s", appConfig.Port)
	if err := app.Listen(":" + appConfig.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
