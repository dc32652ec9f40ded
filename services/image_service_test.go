package services

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"strings"
	"testing"

	"ImageInsight/utils"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func customErr(t *testing.T, err error) *utils.CustomError {
	t.Helper()
	cerr, ok := err.(*utils.CustomError)
	if !ok {
		t.Fatalf("error %v is not a CustomError", err)
	}
	return cerr
}

func TestDetectImageFormat(t *testing.T) {
	webpHeader := append([]byte("RIFF"), 0x24, 0x00, 0x00, 0x00)
	webpHeader = append(webpHeader, []byte("WEBP")...)

	tests := []struct {
		name         string
		data         []byte
		declaredType string
		want         string
		wantErr      bool
	}{
		{name: "jpeg magic", data: []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}, want: "jpeg"},
		{name: "png magic", data: []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00}, want: "png"},
		{name: "webp riff header", data: webpHeader, want: "webp"},
		{name: "signature beats declared type", data: []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, declaredType: "image/jpeg", want: "png"},
		{name: "declared type fallback", data: []byte("no signature here"), declaredType: "image/png", want: "png"},
		{name: "declared type is case-insensitive", data: []byte("no signature here"), declaredType: "IMAGE/WEBP", want: "webp"},
		{name: "declared type not an image", data: []byte("no signature here"), declaredType: "text/plain", wantErr: true},
		{name: "no signature and no declared type", data: []byte("no signature here"), wantErr: true},
		{name: "riff without webp marker", data: []byte("RIFF1234WAVE"), declaredType: "", wantErr: true},
		{name: "truncated riff header", data: []byte("RIFF"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectImageFormat(tt.data, tt.declaredType)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DetectImageFormat() = %q, want error", got)
				}
				if customErr(t, err).StatusCode != 415 {
					t.Errorf("status = %d, want 415", customErr(t, err).StatusCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectImageFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIngestSizeCeiling(t *testing.T) {
	service := NewImageService()

	// One byte over the limit, with a declared type that would otherwise be
	// rejected: the size check must win because it runs before sniffing.
	oversized := make([]byte, MaxImageSize+1)
	_, err := service.Ingest(oversized, "text/plain")
	if err == nil {
		t.Fatal("expected oversized payload to fail")
	}
	if customErr(t, err).StatusCode != 413 {
		t.Errorf("status = %d, want 413", customErr(t, err).StatusCode)
	}
}

func TestIngestAtCeiling(t *testing.T) {
	service := NewImageService()

	data := make([]byte, MaxImageSize)
	copy(data, []byte{0xFF, 0xD8, 0xFF})
	img, err := service.Ingest(data, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Format != "jpeg" {
		t.Errorf("format = %q, want jpeg", img.Format)
	}
}

func TestIngestDataURLRoundTrip(t *testing.T) {
	service := NewImageService()

	data := encodePNG(t, 3, 2)
	img, err := service.Ingest(data, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prefix := "data:image/png;base64,"
	if !strings.HasPrefix(img.DataURL, prefix) {
		t.Fatalf("data URL %q does not start with %q", img.DataURL[:30], prefix)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(img.DataURL, prefix))
	if err != nil {
		t.Fatalf("decode base64: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Error("round-tripped bytes differ from the original buffer")
	}
}

func TestIngestDimensionProbe(t *testing.T) {
	service := NewImageService()

	img, err := service.Ingest(encodePNG(t, 3, 2), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Width != 3 || img.Height != 2 {
		t.Errorf("dimensions = %dx%d, want 3x2", img.Width, img.Height)
	}

	// A buffer accepted via declared type but undecodable keeps zero
	// dimensions instead of failing.
	img, err = service.Ingest([]byte("not really a png"), "image/png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Width != 0 || img.Height != 0 {
		t.Errorf("dimensions = %dx%d, want 0x0", img.Width, img.Height)
	}
}
