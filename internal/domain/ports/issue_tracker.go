package ports

import (
	"context"

	"github.com/Tomas-vilte/MateLink/internal/domain/models"
)

// IssueTracker define los métodos contra el tracker de issues configurado.
type IssueTracker interface {
	// ListOpenIssues returns the open issues of the repository, excluding
	// pull requests. Listing failures degrade to an empty slice after a
	// warning log; they never abort the caller.
	ListOpenIssues(ctx context.Context) ([]models.Issue, error)
	// CreateIssue creates a new issue and returns the tracker-assigned
	// record. It returns (nil, nil) on any failure: a missing credential,
	// a non-success status or a transport error.
	CreateIssue(ctx context.Context, title, body string, labels []string, assignee string) (*models.Issue, error)
	// CurrentUser returns the authenticated username, or "" when it cannot
	// be determined. Used only to auto-assign created issues.
	CurrentUser(ctx context.Context) string
	// GetIssue fetches a single issue by number. Failures are contained to
	// this call.
	GetIssue(ctx context.Context, number int) (*models.Issue, error)
}
