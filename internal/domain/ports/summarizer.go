package ports

import (
	"context"

	"github.com/Tomas-vilte/MateLink/internal/domain/models"
)

// ChangeSummarizer genera el texto descriptivo final para un cambio. Si hay
// una issue vinculada recibe exactamente esa, nunca la lista de candidatas:
// la decisión de vinculación ya está tomada cuando se llama.
type ChangeSummarizer interface {
	Summarize(ctx context.Context, diff string, linked *models.Issue) (string, error)
}
