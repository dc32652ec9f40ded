package controllers

import (
	"net/http"

	"ImageInsight/models"
	"ImageInsight/utils"

	"github.com/gin-gonic/gin"
)

// MiscController serves the banner, health and model listing routes.
type MiscController struct{}

// NewMiscController initializes MiscController
func NewMiscController() *MiscController {
	return &MiscController{}
}

// Banner handles GET /
func (c *MiscController) Banner(ctx *gin.Context) {
	utils.SuccessResponse(ctx, http.StatusOK, "ImageInsight API is running", gin.H{
		"service": "ImageInsight API",
		"message": "LLM prompt and image analysis gateway",
	})
}

// Health handles GET /health
func (c *MiscController) Health(ctx *gin.Context) {
	utils.SuccessResponse(ctx, http.StatusOK, "service is healthy", gin.H{
		"status": "ok",
	})
}

// Models handles GET /models
func (c *MiscController) Models(ctx *gin.Context) {
	utils.SuccessResponse(ctx, http.StatusOK, "supported models", gin.H{
		"models": models.SupportedModels(),
	})
}
