package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Tomas-vilte/MateLink/internal/config"
	"github.com/Tomas-vilte/MateLink/internal/domain/ports"
	appErrors "github.com/Tomas-vilte/MateLink/internal/errors"
	"github.com/Tomas-vilte/MateLink/internal/i18n"
	"github.com/Tomas-vilte/MateLink/internal/infrastructure/httpclient"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	// maxErrorBody acota cuánto cuerpo de error se arrastra en el mensaje.
	maxErrorBody = 512
)

var _ ports.TextGenerator = (*OpenAIGenerator)(nil)

// OpenAIGenerator implementa el gateway de generación de texto contra la API
// de chat completions de OpenAI. No hay SDK de por medio: es una llamada REST
// como la del servicio de Jira.
type OpenAIGenerator struct {
	httpClient httpclient.HTTPClient
	apiKey     string
	model      string
	baseURL    string
	trans      *i18n.Translations
}

type Option func(*OpenAIGenerator)

// WithHTTPClient inyecta un cliente HTTP (para tests).
func WithHTTPClient(client httpclient.HTTPClient) Option {
	return func(g *OpenAIGenerator) {
		g.httpClient = client
	}
}

// WithBaseURL overrides the API endpoint (for tests and proxies).
func WithBaseURL(baseURL string) Option {
	return func(g *OpenAIGenerator) {
		g.baseURL = baseURL
	}
}

func NewOpenAIGenerator(cfg *config.Config, trans *i18n.Translations, opts ...Option) (*OpenAIGenerator, error) {
	providerCfg, exists := cfg.AIProviders[string(config.AIOpenAI)]
	if !exists || providerCfg.APIKey == "" {
		msg := trans.GetMessage("error_missing_api_key", 0, map[string]interface{}{"Provider": "openai"})
		return nil, appErrors.ErrAPIKeyMissing.WithError(errors.New(msg))
	}

	g := &OpenAIGenerator{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		apiKey:     providerCfg.APIKey,
		model:      string(cfg.ActiveModel()),
		baseURL:    defaultBaseURL,
		trans:      trans,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

type (
	chatRequest struct {
		Model       string        `json:"model"`
		Messages    []chatMessage `json:"messages"`
		Temperature float64       `json:"temperature"`
	}

	chatMessage struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	chatResponse struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
)

// Generate implements ports.TextGenerator.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	body, err := json.Marshal(chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", appErrors.NewAppError(appErrors.TypeInternal, "error codificando el request de OpenAI", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", appErrors.NewAppError(appErrors.TypeInternal, "error armando el request de OpenAI", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", g.mapTransportError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		msg := g.trans.GetMessage("error_auth_provider", 0, map[string]interface{}{"Status": resp.StatusCode})
		return "", appErrors.ErrAuthFailed.WithError(errors.New(msg))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", appErrors.NewAppError(appErrors.TypeAI,
			fmt.Sprintf("openai respondió con estado %d", resp.StatusCode), nil).
			WithContext("body", string(raw))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", appErrors.ErrEmptyAIResponse.WithError(err)
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", appErrors.ErrEmptyAIResponse
	}

	return parsed.Choices[0].Message.Content, nil
}

func (g *OpenAIGenerator) mapTransportError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Err == context.Canceled || urlErr.Err == context.DeadlineExceeded {
			return urlErr.Err
		}
		msg := g.trans.GetMessage("error_network", 0, map[string]interface{}{"Host": urlErr.URL})
		return appErrors.ErrHostUnreachable.WithError(errors.New(msg))
	}

	return appErrors.ErrHostUnreachable.WithError(err)
}
