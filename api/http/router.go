package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/qagen/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, knowledge *handlers.KnowledgeHandler, testCases *handlers.TestCaseHandler, health *handlers.HealthHandler) {
	// Paths used by the browser UI
	app.Post("/upload-domain-knowledge", knowledge.Upload)
	app.Post("/upload-domain-knowledge/file", knowledge.UploadFile)
	app.Post("/generate-test-cases", testCases.Generate)

	// Health and readiness endpoints for probes/monitoring
	v1 := app.Group("/api").Group("/v1")
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)
}
