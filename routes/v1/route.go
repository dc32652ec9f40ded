package route

import (
	"ImageInsight/config/environment"
	"ImageInsight/controllers"
	"ImageInsight/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine, cfg *environment.Config) {
	analyzeController := controllers.NewAnalyzeController(cfg)
	miscController := controllers.NewMiscController()

	// Analysis routes live at the root; /v1 aliases them for API clients.
	rootRoutes := router.Group("/")
	{
		handlers.RegisterMiscRoutes(rootRoutes, miscController)
		handlers.RegisterAnalyzeRoutes(rootRoutes, analyzeController)
	}

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterAnalyzeRoutes(v1Routes, analyzeController)
	}
}
