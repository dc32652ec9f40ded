package services

import (
	"bytes"
	"encoding/base64"
	"image"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"ImageInsight/utils"
)

// MaxImageSize caps uploaded image payloads at 5 MiB.
const MaxImageSize = 5 * 1024 * 1024

var (
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	pngMagic  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	riffMagic = []byte("RIFF")
	webpMagic = []byte("WEBP")
)

// ImageService classifies raw image bytes and prepares them for upstream
// submission.
type ImageService struct{}

// NewImageService creates a new instance of ImageService
func NewImageService() *ImageService {
	return &ImageService{}
}

// IngestedImage is an accepted image in its inline data-URL form.
type IngestedImage struct {
	Format  string
	DataURL string
	Size    int
	Width   int
	Height  int
}

// Ingest checks the size ceiling, sniffs the true format and encodes the
// bytes into a data URL. The size check runs before any sniffing.
func (s *ImageService) Ingest(data []byte, declaredType string) (*IngestedImage, error) {
	if len(data) > MaxImageSize {
		return nil, utils.NewPayloadTooLargeError(len(data), MaxImageSize)
	}

	format, err := DetectImageFormat(data, declaredType)
	if err != nil {
		return nil, err
	}

	img := &IngestedImage{
		Format:  format,
		Size:    len(data),
		DataURL: "data:image/" + format + ";base64," + base64.StdEncoding.EncodeToString(data),
	}

	// Dimension probe is best effort; a body the decoders reject still goes
	// upstream as long as its signature or declared type was accepted.
	if cfg, _, decodeErr := image.DecodeConfig(bytes.NewReader(data)); decodeErr == nil {
		img.Width = cfg.Width
		img.Height = cfg.Height
	}

	return img, nil
}

// DetectImageFormat resolves the image format from magic bytes first and only
// falls back to the client-declared media type when no signature matches.
// Declared content types are spoofable, byte signatures win when present.
func DetectImageFormat(data []byte, declaredType string) (string, error) {
	switch {
	case bytes.HasPrefix(data, jpegMagic):
		return "jpeg", nil
	case bytes.HasPrefix(data, pngMagic):
		return "png", nil
	case len(data) >= 12 && bytes.Equal(data[0:4], riffMagic) && bytes.Equal(data[8:12], webpMagic):
		return "webp", nil
	}

	switch strings.ToLower(declaredType) {
	case "image/jpeg":
		return "jpeg", nil
	case "image/png":
		return "png", nil
	case "image/webp":
		return "webp", nil
	}

	return "", utils.NewUnsupportedMediaTypeError(declaredType)
}
