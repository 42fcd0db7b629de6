package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the fiber application with every route registered.
func NewApp(handler *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "mooncyc",
		DisableStartupMessage: true,
		ErrorHandler:          handler.handleError,
	})
	app.Use(recover.New())
	app.Use(handler.logRequests)
	RegisterRoutes(app, handler)
	return app
}

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Get("/today", handler.GetToday)
	api.Get("/schedule", handler.GetSchedule)
	api.Get("/patterns", handler.GetPatterns)
	api.Get("/tasks", handler.GetTasks)
	api.Get("/symptoms", handler.GetSymptoms)
	api.Post("/meditation", handler.PostMeditation)
	api.Post("/meals", handler.PostMealPlan)
	api.Get("/remedies", handler.GetRemedies)
	api.Post("/remedies/:symptom", handler.PostRemedy)
}

func (handler *Handler) logRequests(c *fiber.Ctx) error {
	startedAt := time.Now()
	err := c.Next()
	status := c.Response().StatusCode()
	if err != nil {
		status = statusFor(err)
	}
	handler.logger.InfoContext(c.UserContext(), "http_request",
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"duration_ms", time.Since(startedAt).Milliseconds(),
	)
	return err
}
