package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumeparser/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
// adminMW guards destructive endpoints.
func Register(app *fiber.App, health *handlers.HealthHandler, resumes *handlers.ResumesHandler, adminMW fiber.Handler) {
	// Browser form and the legacy paths it posts to
	app.Get("/", handlers.Index)
	app.Post("/upload", resumes.Upload)
	app.Get("/search", resumes.Search)
	app.Get("/api/stats", resumes.Stats)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	v1.Get("/stats", resumes.Stats)

	rg := v1.Group("/resumes")
	rg.Post("/", resumes.Upload)
	rg.Get("/", resumes.Search)
	rg.Get("/:id", resumes.Get)
	rg.Delete("/:id", adminMW, resumes.Delete)
}
