package ports

import (
	"context"

	"github.com/Tomas-vilte/MateLink/internal/domain/models"
)

// DescribeService es el orquestador de punta a punta: captura el cambio,
// correlaciona con una issue abierta y genera el mensaje final.
type DescribeService interface {
	Describe(ctx context.Context) (models.DescribeResult, error)
}
