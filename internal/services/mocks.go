package services

import (
	"context"

	"github.com/Tomas-vilte/MateLink/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type (
	MockGitService struct {
		mock.Mock
	}

	MockSummarizer struct {
		mock.Mock
	}

	MockClassifier struct {
		mock.Mock
	}

	MockMatcher struct {
		mock.Mock
	}

	MockIssueTracker struct {
		mock.Mock
	}

	MockCredentialResolver struct {
		mock.Mock
	}
)

func (m *MockGitService) GetChange(ctx context.Context) (models.Change, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Change), args.Error(1)
}

func (m *MockGitService) GetChangedFiles(ctx context.Context) ([]models.GitChange, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.GitChange), args.Error(1)
}

func (m *MockGitService) GetRepoInfo(ctx context.Context) (string, string, error) {
	args := m.Called(ctx)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockGitService) CreateCommit(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockSummarizer) Summarize(ctx context.Context, diff string, linked *models.Issue) (string, error) {
	args := m.Called(ctx, diff, linked)
	return args.String(0), args.Error(1)
}

func (m *MockClassifier) Classify(ctx context.Context, diff string) (models.Classification, error) {
	args := m.Called(ctx, diff)
	return args.Get(0).(models.Classification), args.Error(1)
}

func (m *MockMatcher) Match(ctx context.Context, diff string, candidates []models.Issue) (*models.Issue, error) {
	args := m.Called(ctx, diff, candidates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Issue), args.Error(1)
}

func (m *MockIssueTracker) ListOpenIssues(ctx context.Context) ([]models.Issue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Issue), args.Error(1)
}

func (m *MockIssueTracker) CreateIssue(ctx context.Context, title, body string, labels []string, assignee string) (*models.Issue, error) {
	args := m.Called(ctx, title, body, labels, assignee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Issue), args.Error(1)
}

func (m *MockIssueTracker) CurrentUser(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}

func (m *MockIssueTracker) GetIssue(ctx context.Context, number int) (*models.Issue, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Issue), args.Error(1)
}

func (m *MockCredentialResolver) Resolve(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
