package handlers

import (
	"ImageInsight/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterMiscRoutes sets up the banner, health and model listing routes
func RegisterMiscRoutes(router *gin.RouterGroup, miscController *controllers.MiscController) {
	router.GET("/", miscController.Banner)
	router.GET("/health", miscController.Health)
	router.GET("/models", miscController.Models)
}
