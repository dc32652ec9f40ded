package main

import (
	"ImageInsight/config/environment"
	"ImageInsight/middleware"
	v1 "ImageInsight/routes/v1"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// Load environment variables
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using environment values")
	}

	// Build the process configuration once; refuse to start without the key
	cfg, err := environment.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Setup Gin router
	r := gin.Default()

	// Pasang middleware error handler
	r.Use(middleware.ErrorHandlerMiddleware())

	// CORS Middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Allow all origins
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Register all routes
	v1.RegisterRoutes(r, cfg)

	log.Println("🚀 Server running on http://localhost:" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
