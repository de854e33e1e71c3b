package routes

import (
	"salesdash/handlers"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	app.Get("/api/health", handlers.HandleHealth)

	api := app.Group("/api/v1")

	// --- Dashboard Routes ---
	dashboard := api.Group("/dashboard")
	dashboard.Get("/summary", handlers.HandleGetDashboardSummary)
	dashboard.Get("/ranking", handlers.HandleGetRanking)
	dashboard.Get("/seasonality", handlers.HandleGetSeasonality)
	dashboard.Get("/stock", handlers.HandleGetStock)
	dashboard.Post("/refresh", handlers.HandleRefresh)
}
