package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/StudyForge/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	geminiModelName     = "gemini-1.5-flash"
	maxGenerateAttempts = 3
	retryBackoffUnit    = 2 * time.Second
)

// ErrOverloaded marks a generation failure caused by upstream overload after
// all retries were spent. Controllers map it to 503; everything else is 500.
var ErrOverloaded = errors.New("generation service overloaded")

// GenAIClient is the single entry point for all model calls. Retry on
// transient overload lives here and nowhere else.
type GenAIClient interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateVision(ctx context.Context, prompt string, mimeType string, image []byte) (string, error)
}

// contentGenerator is the slice of *genai.GenerativeModel the client needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type genAIClient struct {
	model contentGenerator
	cfg   *config.Config
	sleep func(time.Duration)
}

func NewGenAIClient(cfg *config.Config) (GenAIClient, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GenAIClient will be non-functional.")
		return &genAIClient{cfg: cfg, model: nil, sleep: time.Sleep}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel(geminiModelName)
	return &genAIClient{model: model, cfg: cfg, sleep: time.Sleep}, nil
}

func (c *genAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, genai.Text(prompt))
}

func (c *genAIClient) GenerateVision(ctx context.Context, prompt string, mimeType string, image []byte) (string, error) {
	return c.generate(ctx, genai.ImageData(mimeType, image), genai.Text(prompt))
}

// generate runs one model call with bounded retry. Only overload failures are
// retried; the backoff grows linearly with the attempt number and is never
// applied after the final attempt. The sleep blocks only this call's
// goroutine.
func (c *genAIClient) generate(ctx context.Context, parts ...genai.Part) (string, error) {
	if c.model == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}

	var lastErr error
	for attempt := 1; attempt <= maxGenerateAttempts; attempt++ {
		resp, err := c.model.GenerateContent(ctx, parts...)
		if err == nil {
			return textFromResponse(resp)
		}
		lastErr = err

		if !isOverloadError(err) {
			log.Error().Err(err).Int("attempt", attempt).Msg("Gemini call failed with non-retryable error")
			return "", err
		}

		if attempt < maxGenerateAttempts {
			backoff := time.Duration(attempt) * retryBackoffUnit
			log.Warn().Err(err).Int("attempt", attempt).Dur("backoff", backoff).Msg("Gemini overloaded, retrying")
			c.sleep(backoff)
		}
	}

	log.Error().Err(lastErr).Int("attempts", maxGenerateAttempts).Msg("Gemini overloaded, retries exhausted")
	return "", fmt.Errorf("%w after %d attempts: %v", ErrOverloaded, maxGenerateAttempts, lastErr)
}

// isOverloadError reports whether a failure indicates transient upstream
// overload: HTTP 503 from the transport, or an error message containing the
// literal "overloaded" (case-sensitive, as the service emits it).
func isOverloadError(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusServiceUnavailable {
		return true
	}
	return strings.Contains(err.Error(), "overloaded")
}

func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no content")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return sb.String(), nil
}
