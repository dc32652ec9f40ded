package models

import (
	"errors"
	"strings"
)

// DetectedEntity is a lightweight tag or extracted item, e.g. "person" or
// "total_amount". Confidence is optional and lives in [0,1].
type DetectedEntity struct {
	Label      string   `json:"label"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// ImageInsightResponse is the standard response for the image analysis routes.
type ImageInsightResponse struct {
	Summary     string           `json:"summary"`
	Entities    []DetectedEntity `json:"entities"`
	TextInImage *string          `json:"text_in_image"`
	ModelUsed   string           `json:"model_used"`
	TokensUsed  *int             `json:"tokens_used"`
}

// NewImageInsightResponse guards against returning an empty insight when the
// upstream produced nothing: either summary or text_in_image must carry
// content.
func NewImageInsightResponse(summary string, textInImage *string, modelUsed string, tokensUsed *int) (*ImageInsightResponse, error) {
	hasSummary := strings.TrimSpace(summary) != ""
	hasText := textInImage != nil && strings.TrimSpace(*textInImage) != ""
	if !hasSummary && !hasText {
		return nil, errors.New("response must contain a non-empty summary or text_in_image")
	}

	return &ImageInsightResponse{
		Summary:     summary,
		Entities:    []DetectedEntity{},
		TextInImage: textInImage,
		ModelUsed:   modelUsed,
		TokensUsed:  tokensUsed,
	}, nil
}

// ModelInfo describes one relayed model identifier.
type ModelInfo struct {
	Name   string `json:"name"`
	Vision bool   `json:"vision"`
}

// SupportedModels is the union of the model enums across all routes.
func SupportedModels() []ModelInfo {
	return []ModelInfo{
		{Name: "gpt-4o", Vision: true},
		{Name: "gpt-4o-mini", Vision: true},
		{Name: "gpt-4-turbo", Vision: false},
	}
}

// BatchItemResult is the positional outcome of one batch item. A failed item
// keeps its slot with status "error" instead of aborting its siblings.
type BatchItemResult struct {
	Status     string `json:"status"`
	Response   string `json:"response,omitempty"`
	Model      string `json:"model,omitempty"`
	TokensUsed *int   `json:"tokens_used,omitempty"`
	Error      string `json:"error,omitempty"`
}

// AnalyzeBatchResponse lists one result per input item, in input order.
type AnalyzeBatchResponse struct {
	Results []BatchItemResult `json:"results"`
}

const (
	BatchStatusSuccess = "success"
	BatchStatusError   = "error"
)
