package utils

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorTaxonomyStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        *CustomError
		wantStatus int
		wantKind   string
	}{
		{"validation", NewValidationError([]FieldError{{Field: "prompt", Reason: "is required"}}), 422, KindValidation},
		{"too large", NewPayloadTooLargeError(6*1024*1024, 5*1024*1024), 413, KindPayloadTooLarge},
		{"unsupported type", NewUnsupportedMediaTypeError("text/plain"), 415, KindUnsupportedMediaType},
		{"upstream", NewUpstreamError(errors.New("connection refused")), 500, KindUpstreamFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", tt.err.StatusCode, tt.wantStatus)
			}
			if tt.err.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", tt.err.Kind, tt.wantKind)
			}
		})
	}
}

func TestUpstreamErrorKeepsUnderlyingMessage(t *testing.T) {
	err := NewUpstreamError(errors.New("status 503: service unavailable"))
	if !strings.Contains(err.Error(), "service unavailable") {
		t.Errorf("message %q should pass the upstream detail through", err.Error())
	}
}
