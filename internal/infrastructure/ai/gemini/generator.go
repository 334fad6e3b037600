package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Tomas-vilte/MateLink/internal/config"
	"github.com/Tomas-vilte/MateLink/internal/domain/ports"
	appErrors "github.com/Tomas-vilte/MateLink/internal/errors"
	"github.com/Tomas-vilte/MateLink/internal/i18n"
	"google.golang.org/genai"
)

var _ ports.TextGenerator = (*GeminiGenerator)(nil)

// GeminiGenerator implementa el gateway de generación de texto sobre la API
// de Gemini.
type GeminiGenerator struct {
	client *genai.Client
	model  string
	trans  *i18n.Translations
}

func NewGeminiGenerator(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (*GeminiGenerator, error) {
	providerCfg, exists := cfg.AIProviders[string(config.AIGemini)]
	if !exists || providerCfg.APIKey == "" {
		msg := trans.GetMessage("error_missing_api_key", 0, map[string]interface{}{"Provider": "gemini"})
		return nil, appErrors.ErrAPIKeyMissing.WithError(errors.New(msg))
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  providerCfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.TypeConfiguration, "error creando el cliente de Gemini", err)
	}

	return &GeminiGenerator{
		client: client,
		model:  string(cfg.ActiveModel()),
		trans:  trans,
	}, nil
}

// Generate implements ports.TextGenerator.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), generateConfig(g.model))
	if err != nil {
		return "", g.mapError(err)
	}

	text := formatResponse(resp)
	if text == "" {
		return "", appErrors.ErrEmptyAIResponse
	}

	return text, nil
}

func (g *GeminiGenerator) mapError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			msg := g.trans.GetMessage("error_auth_provider", 0, map[string]interface{}{"Status": apiErr.Code})
			return appErrors.ErrAuthFailed.WithError(fmt.Errorf("%s: %w", msg, err))
		default:
			return appErrors.NewAppError(appErrors.TypeAI,
				fmt.Sprintf("gemini respondió con estado %d", apiErr.Code), err).
				WithContext("body", truncate(apiErr.Message, 512))
		}
	}

	return appErrors.ErrHostUnreachable.WithError(err)
}

// generateConfig returns the generation settings for the model.
func generateConfig(modelName string) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:     float32Ptr(0.3),
		MaxOutputTokens: int32(10000),
	}

	if strings.HasPrefix(modelName, "gemini-3") {
		cfg.ThinkingConfig = &genai.ThinkingConfig{
			IncludeThoughts: false,
		}
	}

	return cfg
}

func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var formattedContent strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if part.Text != "" {
					formattedContent.WriteString(part.Text)
				}
			}
		}
	}
	return formattedContent.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func float32Ptr(f float32) *float32 {
	return &f
}
