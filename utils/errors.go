package utils

import (
	"fmt"
	"net/http"
)

// Error kinds surfaced in the "error" field of every failure body.
const (
	KindValidation           = "validation_error"
	KindPayloadTooLarge      = "payload_too_large"
	KindUnsupportedMediaType = "unsupported_media_type"
	KindUpstreamFailure      = "upstream_failure"
)

// FieldError describes a single offending request field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// CustomError digunakan untuk error dengan status code yang spesifik
type CustomError struct {
	StatusCode int          `json:"-"`
	Kind       string       `json:"error"`
	Message    string       `json:"message"`
	Details    []FieldError `json:"details,omitempty"`
}

func (e *CustomError) Error() string {
	return e.Message
}

// NewCustomError Fungsi helper untuk membuat CustomError
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Kind: KindUpstreamFailure, Message: message}
}

// NewValidationError aggregates every offending field into one 422 error.
func NewValidationError(details []FieldError) *CustomError {
	return &CustomError{
		StatusCode: http.StatusUnprocessableEntity,
		Kind:       KindValidation,
		Message:    "request validation failed",
		Details:    details,
	}
}

func NewPayloadTooLargeError(size int, limit int) *CustomError {
	return &CustomError{
		StatusCode: http.StatusRequestEntityTooLarge,
		Kind:       KindPayloadTooLarge,
		Message:    fmt.Sprintf("image payload of %d bytes exceeds the %d byte limit", size, limit),
	}
}

func NewUnsupportedMediaTypeError(declaredType string) *CustomError {
	message := "image format not recognized, supported formats are jpeg, png and webp"
	if declaredType != "" {
		message = fmt.Sprintf("unsupported media type %q, supported formats are jpeg, png and webp", declaredType)
	}
	return &CustomError{
		StatusCode: http.StatusUnsupportedMediaType,
		Kind:       KindUnsupportedMediaType,
		Message:    message,
	}
}

// NewUpstreamError wraps a remote-call failure without rewording it.
func NewUpstreamError(err error) *CustomError {
	return &CustomError{
		StatusCode: http.StatusInternalServerError,
		Kind:       KindUpstreamFailure,
		Message:    err.Error(),
	}
}
