package services

import (
	"context"

	"github.com/Tomas-vilte/MateLink/internal/config"
	"github.com/Tomas-vilte/MateLink/internal/domain/models"
	"github.com/Tomas-vilte/MateLink/internal/domain/ports"
	appErrors "github.com/Tomas-vilte/MateLink/internal/errors"
)

// IssueService expone las operaciones explícitas sobre el tracker que no
// pasan por el orquestador: listar issues abiertas y crear una issue a
// partir del cambio pendiente.
type IssueService struct {
	git        ports.GitService
	classifier ports.ChangeClassifier
	tracker    ports.IssueTracker
	cfg        *config.Config
}

func NewIssueService(
	git ports.GitService,
	classifier ports.ChangeClassifier,
	tracker ports.IssueTracker,
	cfg *config.Config,
) *IssueService {
	return &IssueService{
		git:        git,
		classifier: classifier,
		tracker:    tracker,
		cfg:        cfg,
	}
}

// ListOpen devuelve las issues abiertas del repositorio configurado.
func (s *IssueService) ListOpen(ctx context.Context) ([]models.Issue, error) {
	if s.tracker == nil {
		return nil, appErrors.ErrTrackerNotSupported
	}
	return s.tracker.ListOpenIssues(ctx)
}

// CreateFromChange clasifica el cambio pendiente y crea una issue con el
// resultado. A diferencia de la rama automática del orquestador, acá la
// creación fue pedida explícitamente, así que la falla sí se devuelve.
func (s *IssueService) CreateFromChange(ctx context.Context) (*models.Issue, error) {
	if s.tracker == nil {
		return nil, appErrors.ErrTrackerNotSupported
	}

	change, err := s.git.GetChange(ctx)
	if err != nil {
		return nil, err
	}
	if change.IsEmpty() {
		return nil, appErrors.ErrNoChanges
	}

	classification, err := s.classifier.Classify(ctx, change.Diff)
	if err != nil {
		return nil, err
	}

	title := buildIssueTitle(classification, change)
	body := buildIssueBody(classification, change)
	labels := mergeLabels(classification.Labels, s.cfg.DefaultLabels)
	assignee := s.tracker.CurrentUser(ctx)

	created, err := s.tracker.CreateIssue(ctx, title, body, labels, assignee)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, appErrors.ErrIssueOperation
	}

	return created, nil
}
