package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateLink/internal/domain/models"
	"github.com/Tomas-vilte/MateLink/internal/domain/ports"
	"github.com/Tomas-vilte/MateLink/internal/logger"
)

// defaultConfidence se usa cuando el backend omite el campo confidence.
const defaultConfidence = 0.5

var _ ports.ChangeClassifier = (*Classifier)(nil)

// Classifier clasifica un diff en {type, labels, confidence} usando el
// backend de texto activo. La salida del backend se trata como entrada
// adversarial: cualquier cosa que no valide cae al fallback, nunca a un error.
type Classifier struct {
	gen  ports.TextGenerator
	lang string
}

func NewClassifier(gen ports.TextGenerator, lang string) *Classifier {
	return &Classifier{
		gen:  gen,
		lang: lang,
	}
}

// Classify returns the classification for diff. Only gateway errors are
// returned; malformed backend output degrades to the fallback triple.
func (c *Classifier) Classify(ctx context.Context, diff string) (models.Classification, error) {
	prompt := fmt.Sprintf(GetClassifyPromptTemplate(c.lang), diff)

	raw, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		return models.Classification{}, err
	}

	return c.parseClassification(ctx, raw), nil
}

func (c *Classifier) parseClassification(ctx context.Context, raw string) models.Classification {
	content := ExtractJSON(raw)

	var parsed struct {
		Type       string   `json:"type"`
		Labels     []string `json:"labels"`
		Confidence *float64 `json:"confidence"`
	}

	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		logger.Debug(ctx, "classification output was not valid JSON, using fallback", "raw", raw)
		return models.FallbackClassification()
	}

	changeType := models.ChangeType(strings.ToLower(strings.TrimSpace(parsed.Type)))
	if !models.ValidChangeType(changeType) {
		logger.Debug(ctx, "classification type missing or unknown, using fallback", "raw", raw)
		return models.FallbackClassification()
	}

	if parsed.Labels == nil {
		logger.Debug(ctx, "classification labels missing, using fallback", "raw", raw)
		return models.FallbackClassification()
	}

	confidence := defaultConfidence
	if parsed.Confidence != nil {
		confidence = *parsed.Confidence
		if confidence < 0 {
			confidence = 0
		}
		if confidence > 1 {
			confidence = 1
		}
	}

	return models.Classification{
		Type:       changeType,
		Labels:     cleanLabels(parsed.Labels, string(changeType)),
		Confidence: confidence,
	}
}

// cleanLabels trims and dedupes labels, making sure the change type itself
// is always present as a label.
func cleanLabels(labels []string, changeType string) []string {
	cleaned := make([]string, 0, len(labels)+1)
	seen := make(map[string]bool)

	for _, label := range labels {
		trimmed := strings.TrimSpace(strings.ToLower(label))
		if trimmed != "" && !seen[trimmed] {
			cleaned = append(cleaned, trimmed)
			seen[trimmed] = true
		}
	}

	if !seen[changeType] {
		cleaned = append(cleaned, changeType)
	}

	return cleaned
}
