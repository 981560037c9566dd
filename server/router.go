package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/yousemazhar/crashboard/dataset"
)

// ============================================================================
// ROUTER — HTTP presentation interface over the engine
// ============================================================================
// The presentation layer is glue: it wires request bodies to the engine's
// report/search/defaults calls and returns their output verbatim. All
// computation happens in the engine.
// ============================================================================

// NewApp builds the fiber application serving the dashboard API.
// The table is shared read-only across requests; overlapping calls are safe
// because nothing mutates it after load.
func NewApp(table *dataset.Table) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "crashboard v1.0",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	SetupRoutes(app, NewHandler(table))
	return app
}

// SetupRoutes configures all HTTP routes.
func SetupRoutes(app *fiber.App, handler *Handler) {
	app.Get("/health", handler.HealthCheck)

	api := app.Group("/api/v1")
	{
		api.Post("/report", handler.GenerateReport)
		api.Post("/search", handler.Search)
		api.Get("/defaults", handler.Defaults)
		api.Get("/fields", handler.Fields)
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}
