package services

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"ImageInsight/config/environment"
	"ImageInsight/models"
	"ImageInsight/utils"
)

// maxBatchConcurrency bounds the upstream fan-out of one batch request.
const maxBatchConcurrency = 4

// AnalyzeService ties image ingestion and the OpenAI call together
type AnalyzeService struct {
	OpenAIService *OpenAIService
	ImageService  *ImageService
}

// NewAnalyzeService initializes AnalyzeService with OpenAIService and ImageService
func NewAnalyzeService(cfg *environment.Config) *AnalyzeService {
	return &AnalyzeService{
		OpenAIService: NewOpenAIService(cfg),
		ImageService:  NewImageService(),
	}
}

// AnalyzeText relays a validated text prompt upstream.
func (s *AnalyzeService) AnalyzeText(ctx context.Context, payload *models.PromptPayload) (*CompletionResult, error) {
	return s.OpenAIService.AnalyzeText(ctx, payload.Prompt, payload.Model, *payload.Temperature)
}

// AnalyzeImageURL relays an image-by-URL request upstream and normalizes the
// result into the insight contract.
func (s *AnalyzeService) AnalyzeImageURL(ctx context.Context, payload *models.ImageUrlPayload) (*models.ImageInsightResponse, error) {
	result, err := s.OpenAIService.AnalyzeImage(ctx, *payload.Prompt, payload.ImageURL, payload.Model, *payload.Temperature)
	if err != nil {
		return nil, err
	}
	return insightFromResult(result)
}

// AnalyzeImageFile ingests uploaded bytes, then relays the resulting data URL
// upstream. Ingestion failures (413/415) never reach the provider.
func (s *AnalyzeService) AnalyzeImageFile(ctx context.Context, payload *models.ImageFilePayload, data []byte, declaredType string) (*models.ImageInsightResponse, error) {
	img, err := s.ImageService.Ingest(data, declaredType)
	if err != nil {
		return nil, err
	}
	log.Printf("ingested %s image: %d bytes, %dx%d", img.Format, img.Size, img.Width, img.Height)

	result, err := s.OpenAIService.AnalyzeImage(ctx, *payload.Prompt, img.DataURL, payload.Model, *payload.Temperature)
	if err != nil {
		return nil, err
	}
	return insightFromResult(result)
}

// AnalyzeBatch fans the items out concurrently. Results are slotted by input
// index so order is preserved, and a failing item records its error in place
// instead of aborting its siblings.
func (s *AnalyzeService) AnalyzeBatch(ctx context.Context, request *models.AnalyzeBatchRequest) *models.AnalyzeBatchResponse {
	results := make([]models.BatchItemResult, len(request.Items))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxBatchConcurrency)
	for i := range request.Items {
		i := i
		group.Go(func() error {
			results[i] = s.analyzeBatchItem(groupCtx, &request.Items[i])
			return nil
		})
	}
	// Item failures live in their own slots, the group itself never errors.
	_ = group.Wait()

	return &models.AnalyzeBatchResponse{Results: results}
}

func (s *AnalyzeService) analyzeBatchItem(ctx context.Context, item *models.AnalyzeItem) models.BatchItemResult {
	temperature := models.DefaultTemperature
	if item.Temperature != nil {
		temperature = *item.Temperature
	}

	var result *CompletionResult
	var err error
	if item.ImageURL != nil && *item.ImageURL != "" {
		model := item.Model
		if model == "" {
			model = models.DefaultVisionModel
		}
		result, err = s.OpenAIService.AnalyzeImage(ctx, item.Prompt, *item.ImageURL, model, temperature)
	} else {
		model := item.Model
		if model == "" {
			model = models.DefaultTextModel
		}
		result, err = s.OpenAIService.AnalyzeText(ctx, item.Prompt, model, temperature)
	}

	if err != nil {
		return models.BatchItemResult{
			Status: models.BatchStatusError,
			Error:  err.Error(),
		}
	}
	return models.BatchItemResult{
		Status:     models.BatchStatusSuccess,
		Response:   result.Content,
		Model:      result.Model,
		TokensUsed: result.TokensUsed,
	}
}

// insightFromResult maps a normalized completion into the insight contract.
// No entity extraction or OCR model is wired up, so entities stay empty and
// text_in_image stays null.
func insightFromResult(result *CompletionResult) (*models.ImageInsightResponse, error) {
	insight, err := models.NewImageInsightResponse(result.Content, nil, result.Model, result.TokensUsed)
	if err != nil {
		return nil, utils.NewUpstreamError(err)
	}
	return insight, nil
}
