package service

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// ErrInvalidImage marks client-side image problems (empty payload,
// unsupported type). Handlers map it to 400.
var ErrInvalidImage = errors.New("invalid image")

var supportedImageMIMETypes = map[string]bool{
	"image/png": true, "image/jpeg": true, "image/webp": true,
	"image/gif": true, "image/heic": true, "image/heif": true,
}

// SolveService answers image-based problems: the image plus an optional
// question go to the vision model as one inline payload.
type SolveService interface {
	SolveFromImage(ctx context.Context, image []byte, mimeType string, question string) (string, error)
	SolveFromURL(ctx context.Context, imageURL string, question string) (string, error)
}

type solveService struct {
	genai GenAIClient
	http  *resty.Client
}

func NewSolveService(genai GenAIClient) SolveService {
	client := resty.New().SetTimeout(30 * time.Second)
	return &solveService{genai: genai, http: client}
}

func (s *solveService) SolveFromImage(ctx context.Context, image []byte, mimeType string, question string) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("%w: image payload is empty", ErrInvalidImage)
	}
	if !supportedImageMIMETypes[mimeType] {
		return "", fmt.Errorf("%w: unsupported MIME type %q", ErrInvalidImage, mimeType)
	}
	log.Info().Str("mimeType", mimeType).Int("bytes", len(image)).Msg("Solving problem from uploaded image")
	return s.genai.GenerateVision(ctx, SolvePrompt(question), mimeType, image)
}

func (s *solveService) SolveFromURL(ctx context.Context, imageURL string, question string) (string, error) {
	image, mimeType, err := s.fetchImageData(ctx, imageURL)
	if err != nil {
		return "", err
	}
	return s.SolveFromImage(ctx, image, mimeType, question)
}

// fetchImageData downloads the image and resolves its MIME type from the
// Content-Type header, falling back to the URL's file extension.
func (s *solveService) fetchImageData(ctx context.Context, imageURL string) ([]byte, string, error) {
	if imageURL == "" {
		return nil, "", fmt.Errorf("%w: image URL is empty", ErrInvalidImage)
	}

	resp, err := s.http.R().SetContext(ctx).Get(imageURL)
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to fetch image from URL %s: %v", ErrInvalidImage, imageURL, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, "", fmt.Errorf("%w: failed to fetch image (status %d) from URL %s", ErrInvalidImage, resp.StatusCode(), imageURL)
	}

	imageData := resp.Body()

	var mimeType string
	if contentType := resp.Header().Get("Content-Type"); contentType != "" {
		if parsed, _, parseErr := mime.ParseMediaType(contentType); parseErr == nil && strings.HasPrefix(parsed, "image/") {
			mimeType = parsed
		}
	}
	if mimeType == "" {
		ext := filepath.Ext(pathFromURL(imageURL))
		mimeType = mime.TypeByExtension(ext)
		if mimeType == "" || !strings.HasPrefix(mimeType, "image/") {
			log.Warn().Str("url", imageURL).Str("ext", ext).Msg("Could not determine a valid image MIME type")
			return nil, "", fmt.Errorf("%w: could not determine a supported image MIME type for %s", ErrInvalidImage, imageURL)
		}
	}
	return imageData, mimeType, nil
}

func pathFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Path
}
