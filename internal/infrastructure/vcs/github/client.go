package github

import (
	"context"
	"net/http"

	"github.com/Tomas-vilte/MateLink/internal/domain/models"
	"github.com/Tomas-vilte/MateLink/internal/domain/ports"
	appErrors "github.com/Tomas-vilte/MateLink/internal/errors"
	"github.com/Tomas-vilte/MateLink/internal/i18n"
	"github.com/Tomas-vilte/MateLink/internal/logger"
	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

var _ ports.IssueTracker = (*GitHubTracker)(nil)

// IssuesService es el subconjunto de la API de issues que usamos, acotado
// para poder mockearlo en los tests.
type IssuesService interface {
	ListByRepo(ctx context.Context, owner, repo string, opts *github.IssueListByRepoOptions) ([]*github.Issue, *github.Response, error)
	Create(ctx context.Context, owner, repo string, issue *github.IssueRequest) (*github.Issue, *github.Response, error)
	Get(ctx context.Context, owner, repo string, number int) (*github.Issue, *github.Response, error)
}

// UsersService expone el usuario autenticado.
type UsersService interface {
	Get(ctx context.Context, user string) (*github.User, *github.Response, error)
}

// GitHubTracker implementa ports.IssueTracker contra la API REST de GitHub.
// Las lecturas sin credencial están permitidas (con rate limit reducido);
// las escrituras sin credencial fallan blando.
type GitHubTracker struct {
	issuesService IssuesService
	usersService  UsersService
	owner         string
	repo          string
	token         string
	trans         *i18n.Translations
}

func NewGitHubTracker(owner, repo, token string, trans *i18n.Translations) *GitHubTracker {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &GitHubTracker{
		issuesService: client.Issues,
		usersService:  client.Users,
		owner:         owner,
		repo:          repo,
		token:         token,
		trans:         trans,
	}
}

// NewGitHubTrackerWithServices permite inyectar los servicios en los tests.
func NewGitHubTrackerWithServices(
	issuesService IssuesService,
	usersService UsersService,
	owner string,
	repo string,
	token string,
	trans *i18n.Translations,
) *GitHubTracker {
	return &GitHubTracker{
		issuesService: issuesService,
		usersService:  usersService,
		owner:         owner,
		repo:          repo,
		token:         token,
		trans:         trans,
	}
}

// ListOpenIssues devuelve las issues abiertas del repo, excluyendo pull
// requests. Cualquier falla degrada a una lista vacía después de loguear un
// warning: un listado caído nunca aborta el pipeline.
func (t *GitHubTracker) ListOpenIssues(ctx context.Context) ([]models.Issue, error) {
	opts := &github.IssueListByRepoOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var all []models.Issue
	for {
		issues, resp, err := t.issuesService.ListByRepo(ctx, t.owner, t.repo, opts)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Warn(ctx, "no se pudieron listar las issues abiertas",
				"owner", t.owner, "repo", t.repo, "err", err)
			return []models.Issue{}, nil
		}

		for _, issue := range issues {
			// Las PRs llegan por el mismo endpoint; las salteamos.
			if issue.PullRequestLinks != nil {
				continue
			}
			all = append(all, toModelIssue(issue))
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.ListOptions.Page = resp.NextPage
	}

	if all == nil {
		all = []models.Issue{}
	}
	return all, nil
}

// CreateIssue crea una issue y devuelve el registro asignado por GitHub.
// Devuelve (nil, nil) ante credencial ausente, estado no exitoso o falla de
// transporte: el que llama decide seguir sin issue vinculada.
func (t *GitHubTracker) CreateIssue(ctx context.Context, title, body string, labels []string, assignee string) (*models.Issue, error) {
	if t.token == "" {
		logger.Warn(ctx, "no hay credencial configurada, no se puede crear la issue")
		return nil, nil
	}

	req := &github.IssueRequest{
		Title: github.Ptr(title),
		Body:  github.Ptr(body),
	}
	if len(labels) > 0 {
		req.Labels = &labels
	}
	if assignee != "" {
		req.Assignees = &[]string{assignee}
	}

	issue, resp, err := t.issuesService.Create(ctx, t.owner, t.repo, req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if resp != nil && (resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusUnauthorized) {
			logger.Warn(ctx, "el token no tiene permisos para crear issues",
				"status", resp.StatusCode,
				"suggestion", appErrors.ErrGitHubInsufficientPerms.Suggestion)
		} else {
			logger.Warn(ctx, "no se pudo crear la issue", "err", err)
		}
		return nil, nil
	}

	created := toModelIssue(issue)
	return &created, nil
}

// CurrentUser devuelve el usuario autenticado o "" si no se puede determinar.
func (t *GitHubTracker) CurrentUser(ctx context.Context) string {
	if t.token == "" {
		return ""
	}

	user, _, err := t.usersService.Get(ctx, "")
	if err != nil {
		logger.Debug(ctx, "no se pudo obtener el usuario autenticado", "err", err)
		return ""
	}
	return user.GetLogin()
}

// GetIssue obtiene una issue por número. A diferencia del listado, acá la
// falla sí se devuelve, pero queda contenida en esta operación.
func (t *GitHubTracker) GetIssue(ctx context.Context, number int) (*models.Issue, error) {
	issue, _, err := t.issuesService.Get(ctx, t.owner, t.repo, number)
	if err != nil {
		return nil, appErrors.ErrIssueOperation.WithError(err).WithContext("issue", number)
	}

	found := toModelIssue(issue)
	return &found, nil
}

func toModelIssue(issue *github.Issue) models.Issue {
	labels := make([]string, 0, len(issue.Labels))
	for _, l := range issue.Labels {
		labels = append(labels, l.GetName())
	}

	state := models.IssueState(issue.GetState())
	if state == "" {
		state = models.IssueStateOpen
	}

	return models.Issue{
		Number: issue.GetNumber(),
		Title:  issue.GetTitle(),
		Body:   issue.GetBody(),
		State:  state,
		Labels: labels,
		Author: issue.GetUser().GetLogin(),
		URL:    issue.GetHTMLURL(),
	}
}
