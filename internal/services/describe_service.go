package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/Tomas-vilte/MateLink/internal/config"
	"github.com/Tomas-vilte/MateLink/internal/domain/models"
	"github.com/Tomas-vilte/MateLink/internal/domain/ports"
	appErrors "github.com/Tomas-vilte/MateLink/internal/errors"
	"github.com/Tomas-vilte/MateLink/internal/i18n"
	"github.com/Tomas-vilte/MateLink/internal/logger"
)

var _ ports.DescribeService = (*DescribeService)(nil)

// runState es el estado mutable de una corrida. Vive solo durante Describe
// y nunca se comparte entre corridas concurrentes.
type runState struct {
	change       models.Change
	candidates   []models.Issue
	linkedIssue  *models.Issue
	issueCreated bool
	warnings     []string
}

// DescribeService orquesta la corrida completa: captura el diff, lo
// correlaciona con una issue abierta, opcionalmente crea una issue nueva y
// genera el mensaje final. Los pasos son secuenciales; nunca hay más de una
// llamada de red en vuelo y la cancelación se observa antes de cada una.
type DescribeService struct {
	git         ports.GitService
	summarizer  ports.ChangeSummarizer
	classifier  ports.ChangeClassifier
	matcher     ports.RelevanceMatcher
	tracker     ports.IssueTracker
	credentials ports.CredentialResolver
	cfg         *config.Config
	trans       *i18n.Translations

	// busy es el indicador visible para el caller. Se toma al entrar y se
	// libera en TODOS los caminos de salida, incluyendo cancelación y falla.
	busy atomic.Bool
}

func NewDescribeService(
	git ports.GitService,
	summarizer ports.ChangeSummarizer,
	classifier ports.ChangeClassifier,
	matcher ports.RelevanceMatcher,
	tracker ports.IssueTracker,
	credentials ports.CredentialResolver,
	cfg *config.Config,
	trans *i18n.Translations,
) *DescribeService {
	return &DescribeService{
		git:         git,
		summarizer:  summarizer,
		classifier:  classifier,
		matcher:     matcher,
		tracker:     tracker,
		credentials: credentials,
		cfg:         cfg,
		trans:       trans,
	}
}

// IsBusy reports whether a run is in progress on this instance.
func (s *DescribeService) IsBusy() bool {
	return s.busy.Load()
}

// Describe ejecuta la corrida completa. La cancelación del contexto termina
// la corrida con OutcomeCancelled sin mensaje parcial y sin error.
func (s *DescribeService) Describe(ctx context.Context) (models.DescribeResult, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return models.DescribeResult{}, appErrors.NewAppError(appErrors.TypeInternal, "ya hay una corrida en curso", nil)
	}
	defer s.busy.Store(false)

	run := &runState{}

	// CollectingDiff
	if cancelled(ctx.Err()) {
		return s.cancelledResult(ctx), nil
	}

	logger.Debug(ctx, "run state", "state", "CollectingDiff")
	change, err := s.git.GetChange(ctx)
	if err != nil {
		if cancelled(err) {
			return s.cancelledResult(ctx), nil
		}
		return models.DescribeResult{}, err
	}

	if change.IsEmpty() {
		logger.Debug(ctx, "empty diff, nothing to do")
		return models.DescribeResult{Outcome: models.OutcomeNothingToDo}, nil
	}
	run.change = change

	// La correlación con issues solo corre con el tracker habilitado y con
	// include_issue_in_commit activo (la política estricta).
	if s.tracker != nil && s.cfg.TrackerEnabled() && s.cfg.IncludeIssueInCommit {
		if done, result := s.linkIssue(ctx, run); done {
			return result, nil
		}
	}

	// GeneratingMessage
	if cancelled(ctx.Err()) {
		return s.cancelledResult(ctx), nil
	}

	logger.Debug(ctx, "run state", "state", "GeneratingMessage")
	message, err := s.generateMessage(ctx, run)
	if err != nil {
		if cancelled(err) {
			return s.cancelledResult(ctx), nil
		}
		// La falla de la generación final sí es fatal para la corrida.
		return models.DescribeResult{}, err
	}

	logger.Debug(ctx, "run state", "state", "Done")
	return models.DescribeResult{
		Outcome:      models.OutcomeDone,
		Message:      message,
		LinkedIssue:  run.linkedIssue,
		IssueCreated: run.issueCreated,
		Warnings:     run.warnings,
	}, nil
}

// linkIssue cubre FetchingIssues, MatchingRelevance y ClassifyingAndCreating.
// Devuelve (true, result) solo cuando la corrida tiene que terminar ya
// (cancelación); toda otra falla degrada a "sin issue vinculada".
func (s *DescribeService) linkIssue(ctx context.Context, run *runState) (bool, models.DescribeResult) {
	// FetchingIssues
	if cancelled(ctx.Err()) {
		return true, s.cancelledResult(ctx)
	}

	logger.Debug(ctx, "run state", "state", "FetchingIssues")
	candidates, err := s.tracker.ListOpenIssues(ctx)
	if err != nil {
		if cancelled(err) {
			return true, s.cancelledResult(ctx)
		}
		// ListOpenIssues degrada solo; un error acá es inesperado pero
		// tampoco aborta la corrida.
		run.warnings = append(run.warnings, s.trans.GetMessage("warning_issue_listing_failed", 0, nil))
		candidates = nil
	}
	run.candidates = candidates

	// MatchingRelevance
	if len(candidates) > 0 {
		if cancelled(ctx.Err()) {
			return true, s.cancelledResult(ctx)
		}

		logger.Debug(ctx, "run state", "state", "MatchingRelevance", "candidates", len(candidates))
		matched, err := s.matcher.Match(ctx, run.change.Diff, candidates)
		if err != nil {
			if cancelled(err) {
				return true, s.cancelledResult(ctx)
			}
			// La correlación queda deshabilitada para esta corrida; el
			// mensaje se genera igual.
			logger.Warn(ctx, "la correlación de issues falló, se continúa sin vincular", "err", err)
		}
		run.linkedIssue = matched
	}

	// ClassifyingAndCreating
	if run.linkedIssue == nil && s.cfg.AutoCreateIssues {
		token, _ := s.credentials.Resolve(ctx)
		if token == "" {
			logger.Debug(ctx, "sin credencial de escritura, se omite la creación automática")
			return false, models.DescribeResult{}
		}

		if cancelled(ctx.Err()) {
			return true, s.cancelledResult(ctx)
		}

		logger.Debug(ctx, "run state", "state", "ClassifyingAndCreating")
		if err := s.classifyAndCreate(ctx, run); err != nil {
			if cancelled(err) {
				return true, s.cancelledResult(ctx)
			}
			// Cualquier falla en esta rama es no-fatal: warning y se sigue
			// sin issue vinculada.
			logger.Warn(ctx, "la creación automática de issue falló", "err", err)
			run.warnings = append(run.warnings, s.trans.GetMessage("warning_issue_creation_failed", 0, nil))
		}
	}

	return false, models.DescribeResult{}
}

func (s *DescribeService) classifyAndCreate(ctx context.Context, run *runState) error {
	classification, err := s.classifier.Classify(ctx, run.change.Diff)
	if err != nil {
		return err
	}

	title := buildIssueTitle(classification, run.change)
	body := buildIssueBody(classification, run.change)
	labels := mergeLabels(classification.Labels, s.cfg.DefaultLabels)
	assignee := s.tracker.CurrentUser(ctx)

	created, err := s.tracker.CreateIssue(ctx, title, body, labels, assignee)
	if err != nil {
		return err
	}
	if created == nil {
		run.warnings = append(run.warnings, s.trans.GetMessage("warning_issue_creation_failed", 0, nil))
		return nil
	}

	logger.Info(ctx, "issue creada y vinculada", "issue", created.Number)
	run.linkedIssue = created
	run.issueCreated = true
	return nil
}

func (s *DescribeService) generateMessage(ctx context.Context, run *runState) (string, error) {
	message, err := s.summarizer.Summarize(ctx, run.change.Diff, run.linkedIssue)
	if err != nil {
		return "", err
	}

	if run.linkedIssue != nil {
		// La referencia se agrega acá, determinísticamente, no se le pide
		// al backend.
		message = fmt.Sprintf("%s\n\nRefs #%d", message, run.linkedIssue.Number)
	}

	return message, nil
}

func (s *DescribeService) cancelledResult(ctx context.Context) models.DescribeResult {
	logger.Debug(ctx, "run state", "state", "Cancelled")
	return models.DescribeResult{Outcome: models.OutcomeCancelled}
}

func cancelled(err error) bool {
	return err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded))
}

func buildIssueTitle(classification models.Classification, change models.Change) string {
	paths := change.Paths()
	if len(paths) == 0 {
		return fmt.Sprintf("%s: pending changes", classification.Type)
	}

	shown := paths
	if len(shown) > 3 {
		shown = shown[:3]
	}
	title := fmt.Sprintf("%s: changes in %s", classification.Type, strings.Join(shown, ", "))
	if len(paths) > 3 {
		title += fmt.Sprintf(" (+%d more)", len(paths)-3)
	}
	return title
}

func buildIssueBody(classification models.Classification, change models.Change) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Auto-created from a pending change classified as **%s** (confidence %.2f).\n\n",
		classification.Type, classification.Confidence))

	if len(change.Files) > 0 {
		sb.WriteString("Changed files:\n")
		for _, f := range change.Files {
			sb.WriteString(fmt.Sprintf("- %s\n", f.Path))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("```diff\n")
	sb.WriteString(change.Diff)
	sb.WriteString("\n```\n")
	return sb.String()
}

func mergeLabels(labels, defaults []string) []string {
	merged := make([]string, 0, len(labels)+len(defaults))
	seen := make(map[string]bool)

	for _, group := range [][]string{labels, defaults} {
		for _, label := range group {
			trimmed := strings.TrimSpace(strings.ToLower(label))
			if trimmed != "" && !seen[trimmed] {
				merged = append(merged, trimmed)
				seen[trimmed] = true
			}
		}
	}
	return merged
}
