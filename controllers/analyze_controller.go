package controllers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"ImageInsight/config/environment"
	"ImageInsight/models"
	"ImageInsight/services"
	"ImageInsight/utils"

	"github.com/gin-gonic/gin"
)

// AnalyzeController struct
type AnalyzeController struct {
	AnalyzeService *services.AnalyzeService
}

// NewAnalyzeController initializes AnalyzeController with the service layer
func NewAnalyzeController(cfg *environment.Config) *AnalyzeController {
	return &AnalyzeController{
		AnalyzeService: services.NewAnalyzeService(cfg),
	}
}

// AnalyzeTextResponse is the success body of the text-only route.
type AnalyzeTextResponse struct {
	Response   string `json:"response"`
	Latency    string `json:"latency"`
	Model      string `json:"model"`
	TokensUsed *int   `json:"tokens_used"`
}

// AnalyzeText handles POST /analyze
func (c *AnalyzeController) AnalyzeText(ctx *gin.Context) {
	var payload models.PromptPayload

	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.Error(invalidBodyError()) // Middleware akan menangani error ini
		return
	}
	if fieldErrs := payload.Validate(); len(fieldErrs) > 0 {
		ctx.Error(utils.NewValidationError(fieldErrs))
		return
	}

	result, err := c.AnalyzeService.AnalyzeText(ctx.Request.Context(), &payload)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, AnalyzeTextResponse{
		Response:   result.Content,
		Latency:    fmt.Sprintf("%.2fs", result.Latency.Seconds()),
		Model:      result.Model,
		TokensUsed: result.TokensUsed,
	})
}

// AnalyzeImage handles POST /analyze-image
func (c *AnalyzeController) AnalyzeImage(ctx *gin.Context) {
	var payload models.ImageUrlPayload

	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.Error(invalidBodyError())
		return
	}
	if fieldErrs := payload.Validate(); len(fieldErrs) > 0 {
		ctx.Error(utils.NewValidationError(fieldErrs))
		return
	}

	insight, err := c.AnalyzeService.AnalyzeImageURL(ctx.Request.Context(), &payload)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, insight)
}

// AnalyzeFile handles POST /analyze-file (multipart form)
func (c *AnalyzeController) AnalyzeFile(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.Error(utils.NewValidationError([]utils.FieldError{
			{Field: "file", Reason: "is required"},
		}))
		return
	}

	payload, fieldErrs := bindImageFilePayload(ctx)
	if len(fieldErrs) > 0 {
		ctx.Error(utils.NewValidationError(fieldErrs))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.Error(utils.NewCustomError(http.StatusInternalServerError, "failed to open uploaded file"))
		return
	}
	defer file.Close()

	// Read at most one byte past the ceiling; the ingestion size check turns
	// a truncated oversize read into a 413 without buffering the whole body.
	data, err := io.ReadAll(io.LimitReader(file, services.MaxImageSize+1))
	if err != nil {
		ctx.Error(utils.NewCustomError(http.StatusInternalServerError, "failed to read uploaded file"))
		return
	}

	insight, err := c.AnalyzeService.AnalyzeImageFile(
		ctx.Request.Context(),
		payload,
		data,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, insight)
}

// AnalyzeBatch handles POST /analyze-batch
func (c *AnalyzeController) AnalyzeBatch(ctx *gin.Context) {
	var request models.AnalyzeBatchRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.Error(invalidBodyError())
		return
	}
	if fieldErrs := request.Validate(); len(fieldErrs) > 0 {
		ctx.Error(utils.NewValidationError(fieldErrs))
		return
	}

	ctx.JSON(http.StatusOK, c.AnalyzeService.AnalyzeBatch(ctx.Request.Context(), &request))
}

// bindImageFilePayload collects the multipart form fields alongside the file.
// GetPostForm distinguishes an omitted prompt (default applies) from an empty
// one (rejected).
func bindImageFilePayload(ctx *gin.Context) (*models.ImageFilePayload, []utils.FieldError) {
	var payload models.ImageFilePayload

	if prompt, ok := ctx.GetPostForm("prompt"); ok {
		payload.Prompt = &prompt
	}
	payload.Model = ctx.PostForm("model")
	if raw, ok := ctx.GetPostForm("temperature"); ok {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, []utils.FieldError{{Field: "temperature", Reason: "must be a number"}}
		}
		payload.Temperature = &value
	}

	if fieldErrs := payload.Validate(); len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	return &payload, nil
}

func invalidBodyError() *utils.CustomError {
	return utils.NewValidationError([]utils.FieldError{
		{Field: "body", Reason: "invalid JSON payload"},
	})
}
