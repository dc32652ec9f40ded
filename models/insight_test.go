package models

import "testing"

func TestNewImageInsightResponse(t *testing.T) {
	tokens := 12

	tests := []struct {
		name        string
		summary     string
		textInImage *string
		wantErr     bool
	}{
		{name: "summary only", summary: "ok"},
		{name: "text only", summary: "", textInImage: strPtr("SPEED LIMIT 40")},
		{name: "both empty", summary: "", textInImage: nil, wantErr: true},
		{name: "whitespace everywhere", summary: "   ", textInImage: strPtr(" \t"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insight, err := NewImageInsightResponse(tt.summary, tt.textInImage, "gpt-4o", &tokens)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected construction to fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if insight.Entities == nil || len(insight.Entities) != 0 {
				t.Errorf("entities should be an empty list, got %v", insight.Entities)
			}
			if insight.ModelUsed != "gpt-4o" {
				t.Errorf("model_used = %q, want gpt-4o", insight.ModelUsed)
			}
			if insight.TokensUsed == nil || *insight.TokensUsed != 12 {
				t.Errorf("tokens_used = %v, want 12", insight.TokensUsed)
			}
		})
	}
}
