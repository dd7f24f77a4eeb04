// main.go - API del Club de Fútbol San Agustín
package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"clubsanagustin/database"
	"clubsanagustin/handlers"
	"clubsanagustin/middleware"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Initialize database; a failure here does not abort startup
	database.InitDB()
	handlers.InitServices()

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	app.Use(middleware.RateLimit())

	// Root banner
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API del Club de Fútbol San Agustín")
	})

	api := app.Group("/api")

	// Health check endpoint, reachable even without database
	api.Get("/status", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":      "online",
			"mensaje":     "API funcionando correctamente",
			"environment": getEnv("APP_ENV", "development"),
			"timestamp":   time.Now().Format(time.RFC3339),
		})
	})

	// Every data route answers 500 while the database is unreachable
	api.Use(middleware.RequireDatabase())
	handlers.RegisterRoutes(api)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// customErrorHandler shapes uncaught errors into the API's {mensaje, error}
// contract, hiding 500 detail outside development.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	mensaje := "Error interno del servidor"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		mensaje = e.Message
	}

	detalle := err.Error()
	if os.Getenv("APP_ENV") == "production" && code == fiber.StatusInternalServerError {
		detalle = "Detalles ocultos en producción"
	}

	return c.Status(code).JSON(fiber.Map{
		"mensaje": mensaje,
		"error":   detalle,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
