package agent

import (
	"errors"

	"github.com/gabacode/AInteract/internal/middleware"
	"github.com/gabacode/AInteract/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// NewControlApp builds the small HTTP surface for operating a worker:
// POST /start, POST /stop, GET /status.
func NewControlApp(a *Agent) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "AInteract Worker"})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())
	app.Use(middleware.StructuredLogger())

	app.Post("/start", func(c *fiber.Ctx) error {
		if err := a.Start(); err != nil {
			if errors.Is(err, ErrAlreadyRunning) {
				return models.RespondWithError(c, fiber.StatusBadRequest,
					models.NewValidationError("Agent is already running"))
			}
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		return c.JSON(fiber.Map{"message": "Agent started."})
	})

	app.Post("/stop", func(c *fiber.Ctx) error {
		if err := a.Stop(); err != nil {
			if errors.Is(err, ErrNotRunning) {
				return models.RespondWithError(c, fiber.StatusBadRequest,
					models.NewValidationError("Agent is not running"))
			}
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		return c.JSON(fiber.Map{"message": "Agent stopped."})
	})

	app.Get("/status", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"running": a.Running()})
	})

	return app
}
