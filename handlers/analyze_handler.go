package handlers

import (
	"ImageInsight/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterAnalyzeRoutes sets up the analysis-related routes
func RegisterAnalyzeRoutes(router *gin.RouterGroup, analyzeController *controllers.AnalyzeController) {
	router.POST("/analyze", analyzeController.AnalyzeText)
	router.POST("/analyze-image", analyzeController.AnalyzeImage)
	router.POST("/analyze-file", analyzeController.AnalyzeFile)
	router.POST("/analyze-batch", analyzeController.AnalyzeBatch)
}
