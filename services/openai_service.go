package services

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"ImageInsight/config/environment"
	"ImageInsight/utils"

	openai "github.com/sashabaranov/go-openai"
)

// visionSystemPrompt is the fixed instruction prepended to every image request.
const visionSystemPrompt = "You are an image analysis assistant."

// OpenAIService handles prompt and image analysis through the OpenAI API
type OpenAIService struct {
	client     *openai.Client
	timeout    time.Duration
	maxRetries int
}

// NewOpenAIService creates a new instance of OpenAIService
func NewOpenAIService(cfg *environment.Config) *OpenAIService {
	clientConfig := openai.DefaultConfig(cfg.OpenAIKey)
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}

	return &OpenAIService{
		client:     openai.NewClientWithConfig(clientConfig),
		timeout:    cfg.UpstreamTimeout,
		maxRetries: cfg.UpstreamRetries,
	}
}

// CompletionResult is the normalized outcome of one upstream call.
type CompletionResult struct {
	Content    string
	Model      string
	TokensUsed *int
	Latency    time.Duration
}

// AnalyzeText runs a single-message completion for a plain prompt.
func (s *OpenAIService) AnalyzeText(ctx context.Context, prompt, model string, temperature float64) (*CompletionResult, error) {
	request := openai.ChatCompletionRequest{
		Model:       model,
		Temperature: float32(temperature),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	return s.complete(ctx, request)
}

// AnalyzeImage runs a vision completion: the fixed system instruction followed
// by a user message pairing the prompt with the image URL or data URL.
func (s *OpenAIService) AnalyzeImage(ctx context.Context, prompt, imageURL, model string, temperature float64) (*CompletionResult, error) {
	request := openai.ChatCompletionRequest{
		Model:       model,
		Temperature: float32(temperature),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: visionSystemPrompt},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompt},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: imageURL},
					},
				},
			},
		},
	}
	return s.complete(ctx, request)
}

// complete performs the remote call with a bounded timeout and retry budget
// and normalizes the result. Any failure comes back as an upstream error with
// the underlying message intact.
func (s *OpenAIService) complete(ctx context.Context, request openai.ChatCompletionRequest) (*CompletionResult, error) {
	start := time.Now()

	var response openai.ChatCompletionResponse
	var err error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		response, err = s.client.CreateChatCompletion(callCtx, request)
		cancel()
		if err == nil {
			break
		}
		if ctx.Err() != nil || !isRetryable(err) {
			break
		}
		if attempt < s.maxRetries {
			log.Println("OpenAI call failed, retrying:", err)
		}
	}
	if err != nil {
		return nil, utils.NewUpstreamError(err)
	}

	if len(response.Choices) == 0 {
		return nil, utils.NewUpstreamError(errors.New("upstream response contained no choices"))
	}

	result := &CompletionResult{
		Content: response.Choices[0].Message.Content,
		Model:   request.Model,
		Latency: time.Since(start),
	}
	if response.Usage.TotalTokens > 0 {
		tokens := response.Usage.TotalTokens
		result.TokensUsed = &tokens
	}
	return result, nil
}

// isRetryable reports whether a failed call is worth another attempt. Provider
// rejections of the request itself (4xx) are final; transport failures and
// server-side errors are transient.
func isRetryable(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode >= http.StatusInternalServerError ||
			apiErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	return true
}
