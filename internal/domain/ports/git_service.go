package ports

import (
	"context"

	"github.com/Tomas-vilte/MateLink/internal/domain/models"
)

type GitService interface {
	// GetChange captures the pending change: staged diff takes precedence
	// over the working tree diff.
	GetChange(ctx context.Context) (models.Change, error)
	GetChangedFiles(ctx context.Context) ([]models.GitChange, error)
	// GetRepoInfo extracts (owner, repo) from the origin remote URL.
	GetRepoInfo(ctx context.Context) (string, string, error)
	CreateCommit(ctx context.Context, message string) error
}
