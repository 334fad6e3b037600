package ports

import (
	"context"

	"github.com/Tomas-vilte/MateLink/internal/domain/models"
)

// ChangeClassifier turns a diff into a {type, labels, confidence} triple.
// Implementations must never fail on malformed AI output: they fall back to
// models.FallbackClassification instead.
type ChangeClassifier interface {
	Classify(ctx context.Context, diff string) (models.Classification, error)
}
