package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"salesdash/config"
	"salesdash/database"
	"salesdash/routes"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Missing credentials are a fatal configuration error, not retryable.
	if err := config.Load(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// A failed connect is only reported: every query treats a missing
	// connection as "no data available" and the views render empty.
	database.Connect()
	defer database.Close()

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
