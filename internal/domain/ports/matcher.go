package ports

import (
	"context"

	"github.com/Tomas-vilte/MateLink/internal/domain/models"
)

// RelevanceMatcher decides whether exactly one of the candidate issues is
// necessarily addressed by the diff. It returns nil when there is no match.
// The returned issue is always one of the candidates passed in, never an
// identifier invented by the backend.
type RelevanceMatcher interface {
	Match(ctx context.Context, diff string, candidates []models.Issue) (*models.Issue, error)
}
