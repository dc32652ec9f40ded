package models

import (
	"net/url"
	"strings"

	"ImageInsight/utils"
)

// Defaults recovered from the upstream request shapes.
const (
	DefaultImagePrompt = "Describe the image and extract entities."
	DefaultTemperature = 0.2
	DefaultTextModel   = "gpt-4o-mini"
	DefaultVisionModel = "gpt-4o"
)

// PromptPayload is the JSON body of the text-only /analyze route.
type PromptPayload struct {
	Prompt      string   `json:"prompt" validate:"required"`
	Model       string   `json:"model" validate:"required,oneof=gpt-4o-mini gpt-4-turbo"`
	Temperature *float64 `json:"temperature" validate:"required,gte=0,lte=1"`
}

// Validate normalizes the payload in place and returns every offending field.
func (p *PromptPayload) Validate() []utils.FieldError {
	p.Prompt = strings.TrimSpace(p.Prompt)
	if p.Model == "" {
		p.Model = DefaultTextModel
	}
	if p.Temperature == nil {
		t := DefaultTemperature
		p.Temperature = &t
	}
	return checkStruct(p)
}

// ImageUrlPayload is the JSON body of /analyze-image: a public image URL plus
// an instruction for what to extract or describe.
type ImageUrlPayload struct {
	ImageURL    string   `json:"image_url" validate:"required"`
	Prompt      *string  `json:"prompt"`
	Model       string   `json:"model" validate:"required,oneof=gpt-4o gpt-4o-mini"`
	Temperature *float64 `json:"temperature" validate:"required,gte=0,lte=1"`
}

func (p *ImageUrlPayload) Validate() []utils.FieldError {
	fieldErrs := normalizeVisionFields(&p.Prompt, &p.Model, &p.Temperature)
	fieldErrs = append(fieldErrs, checkStruct(p)...)
	if p.ImageURL != "" && !isHTTPSURL(p.ImageURL) {
		fieldErrs = append(fieldErrs, utils.FieldError{
			Field:  "image_url",
			Reason: "must be a well-formed https URL",
		})
	}
	return fieldErrs
}

// ImageFilePayload carries the form fields of /analyze-file. The binary file
// itself arrives out-of-band as the multipart "file" part.
type ImageFilePayload struct {
	Prompt      *string  `form:"prompt"`
	Model       string   `form:"model" validate:"required,oneof=gpt-4o gpt-4o-mini"`
	Temperature *float64 `form:"temperature" validate:"required,gte=0,lte=1"`
}

func (p *ImageFilePayload) Validate() []utils.FieldError {
	fieldErrs := normalizeVisionFields(&p.Prompt, &p.Model, &p.Temperature)
	return append(fieldErrs, checkStruct(p)...)
}

// AnalyzeItem is a single batch entry, either text-only or image analysis
// depending on whether image_url is present.
type AnalyzeItem struct {
	Prompt      string   `json:"prompt" validate:"required"`
	ImageURL    *string  `json:"image_url"`
	Model       string   `json:"model" validate:"omitempty,oneof=gpt-4o gpt-4o-mini gpt-4-turbo"`
	Temperature *float64 `json:"temperature" validate:"omitempty,gte=0,lte=1"`
}

// AnalyzeBatchRequest is the JSON body of /analyze-batch.
type AnalyzeBatchRequest struct {
	Items []AnalyzeItem `json:"items" validate:"required,min=1,max=10,dive"`
}

func (r *AnalyzeBatchRequest) Validate() []utils.FieldError {
	for i := range r.Items {
		r.Items[i].Prompt = strings.TrimSpace(r.Items[i].Prompt)
	}
	fieldErrs := checkStruct(r)
	for i := range r.Items {
		item := &r.Items[i]
		if item.ImageURL != nil && *item.ImageURL != "" && !isHTTPSURL(*item.ImageURL) {
			fieldErrs = append(fieldErrs, utils.FieldError{
				Field:  fieldAt("items", i, "image_url"),
				Reason: "must be a well-formed https URL",
			})
		}
	}
	return fieldErrs
}

// normalizeVisionFields applies the shared defaults of the two image payloads
// and rejects prompts that are empty once trimmed. A nil prompt means the
// field was omitted, which falls back to the default instruction.
func normalizeVisionFields(prompt **string, model *string, temperature **float64) []utils.FieldError {
	var fieldErrs []utils.FieldError
	if *prompt == nil {
		s := DefaultImagePrompt
		*prompt = &s
	} else {
		trimmed := strings.TrimSpace(**prompt)
		*prompt = &trimmed
		if trimmed == "" {
			fieldErrs = append(fieldErrs, utils.FieldError{
				Field:  "prompt",
				Reason: "cannot be empty after trimming",
			})
		}
	}
	if *model == "" {
		*model = DefaultVisionModel
	}
	if *temperature == nil {
		t := DefaultTemperature
		*temperature = &t
	}
	return fieldErrs
}

func isHTTPSURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme == "https" && u.Host != ""
}
