package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Tomas-vilte/MateLink/internal/config"
	"github.com/Tomas-vilte/MateLink/internal/domain/models"
	"github.com/Tomas-vilte/MateLink/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) (*MockGitService, *MockSummarizer, *MockClassifier, *MockMatcher, *MockIssueTracker, *MockCredentialResolver, *config.Config, *i18n.Translations) {
	mockGit := new(MockGitService)
	mockSummarizer := new(MockSummarizer)
	mockClassifier := new(MockClassifier)
	mockMatcher := new(MockMatcher)
	mockTracker := new(MockIssueTracker)
	mockCreds := new(MockCredentialResolver)

	cfgApp := &config.Config{
		Language:             "en",
		IssueTracker:         config.TrackerGitHub,
		IncludeIssueInCommit: true,
	}
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	return mockGit, mockSummarizer, mockClassifier, mockMatcher, mockTracker, mockCreds, cfgApp, trans
}

func newService(git *MockGitService, sum *MockSummarizer, cls *MockClassifier, match *MockMatcher, tracker *MockIssueTracker, creds *MockCredentialResolver, cfg *config.Config, trans *i18n.Translations) *DescribeService {
	return NewDescribeService(git, sum, cls, match, tracker, creds, cfg, trans)
}

func TestDescribeService_Describe(t *testing.T) {
	sampleChange := models.Change{
		Diff: "diff --git a/auth.go b/auth.go\n+func Login() {}",
		Files: []models.GitChange{
			{Path: "auth.go", Status: "M"},
		},
	}

	t.Run("empty diff finishes without touching backend or tracker", func(t *testing.T) {
		mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans := setupTest(t)

		mockGit.On("GetChange", mock.Anything).Return(models.Change{Diff: "  \n\t"}, nil)

		service := newService(mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans)
		result, err := service.Describe(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeNothingToDo, result.Outcome)
		assert.Empty(t, result.Message)
		mockSum.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything, mock.Anything)
		mockTracker.AssertNotCalled(t, "ListOpenIssues", mock.Anything)
		assert.False(t, service.IsBusy())
	})

	t.Run("matched issue gets referenced deterministically", func(t *testing.T) {
		mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans := setupTest(t)

		issue := models.Issue{Number: 7, Title: "Login broken"}
		mockGit.On("GetChange", mock.Anything).Return(sampleChange, nil)
		mockTracker.On("ListOpenIssues", mock.Anything).Return([]models.Issue{issue}, nil)
		mockMatch.On("Match", mock.Anything, sampleChange.Diff, []models.Issue{issue}).Return(&issue, nil)
		mockSum.On("Summarize", mock.Anything, sampleChange.Diff, &issue).Return("Fix the login flow", nil)

		service := newService(mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans)
		result, err := service.Describe(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeDone, result.Outcome)
		assert.Equal(t, "Fix the login flow\n\nRefs #7", result.Message)
		require.NotNil(t, result.LinkedIssue)
		assert.Equal(t, 7, result.LinkedIssue.Number)
		assert.False(t, result.IssueCreated)
		mockCls.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
		mockTracker.AssertNotCalled(t, "CreateIssue", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no match and auto-create disabled leaves the message unlinked", func(t *testing.T) {
		mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans := setupTest(t)
		cfg.AutoCreateIssues = false

		candidates := []models.Issue{{Number: 3, Title: "Unrelated"}}
		mockGit.On("GetChange", mock.Anything).Return(sampleChange, nil)
		mockTracker.On("ListOpenIssues", mock.Anything).Return(candidates, nil)
		mockMatch.On("Match", mock.Anything, sampleChange.Diff, candidates).Return(nil, nil)
		mockSum.On("Summarize", mock.Anything, sampleChange.Diff, (*models.Issue)(nil)).Return("Refactor auth", nil)

		service := newService(mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans)
		result, err := service.Describe(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeDone, result.Outcome)
		assert.Equal(t, "Refactor auth", result.Message)
		assert.Nil(t, result.LinkedIssue)
		assert.NotContains(t, result.Message, "Refs #")
		mockTracker.AssertNotCalled(t, "CreateIssue", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockCreds.AssertNotCalled(t, "Resolve", mock.Anything)
	})

	t.Run("auto-created issue ends up referenced in the message", func(t *testing.T) {
		mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans := setupTest(t)
		cfg.AutoCreateIssues = true

		created := models.Issue{Number: 42, Title: "enhancement: changes in auth.go"}
		mockGit.On("GetChange", mock.Anything).Return(sampleChange, nil)
		mockTracker.On("ListOpenIssues", mock.Anything).Return([]models.Issue{{Number: 3, Title: "Unrelated"}}, nil)
		mockMatch.On("Match", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
		mockCreds.On("Resolve", mock.Anything).Return("ghp_token", nil)
		mockCls.On("Classify", mock.Anything, sampleChange.Diff).Return(models.Classification{
			Type:       models.ChangeTypeEnhancement,
			Labels:     []string{"enhancement"},
			Confidence: 0.9,
		}, nil)
		mockTracker.On("CurrentUser", mock.Anything).Return("tomas")
		mockTracker.On("CreateIssue", mock.Anything, mock.Anything, mock.Anything, mock.Anything, "tomas").Return(&created, nil)
		mockSum.On("Summarize", mock.Anything, sampleChange.Diff, &created).Return("Add login endpoint", nil)

		service := newService(mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans)
		result, err := service.Describe(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeDone, result.Outcome)
		assert.True(t, strings.HasSuffix(result.Message, "Refs #42"))
		require.NotNil(t, result.LinkedIssue)
		assert.True(t, result.IssueCreated)
		mockTracker.AssertExpectations(t)
	})

	t.Run("issue creation failure degrades to an unlinked message", func(t *testing.T) {
		mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans := setupTest(t)
		cfg.AutoCreateIssues = true

		mockGit.On("GetChange", mock.Anything).Return(sampleChange, nil)
		mockTracker.On("ListOpenIssues", mock.Anything).Return([]models.Issue{}, nil)
		mockCreds.On("Resolve", mock.Anything).Return("ghp_token", nil)
		mockCls.On("Classify", mock.Anything, sampleChange.Diff).Return(models.FallbackClassification(), nil)
		mockTracker.On("CurrentUser", mock.Anything).Return("")
		mockTracker.On("CreateIssue", mock.Anything, mock.Anything, mock.Anything, mock.Anything, "").Return(nil, nil)
		mockSum.On("Summarize", mock.Anything, sampleChange.Diff, (*models.Issue)(nil)).Return("Tidy up auth", nil)

		service := newService(mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans)
		result, err := service.Describe(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeDone, result.Outcome)
		assert.Equal(t, "Tidy up auth", result.Message)
		assert.Nil(t, result.LinkedIssue)
		assert.NotEmpty(t, result.Warnings)
		assert.False(t, service.IsBusy())
	})

	t.Run("missing credential skips auto-creation entirely", func(t *testing.T) {
		mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans := setupTest(t)
		cfg.AutoCreateIssues = true

		mockGit.On("GetChange", mock.Anything).Return(sampleChange, nil)
		mockTracker.On("ListOpenIssues", mock.Anything).Return([]models.Issue{}, nil)
		mockCreds.On("Resolve", mock.Anything).Return("", nil)
		mockSum.On("Summarize", mock.Anything, sampleChange.Diff, (*models.Issue)(nil)).Return("Tidy up auth", nil)

		service := newService(mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans)
		result, err := service.Describe(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeDone, result.Outcome)
		mockCls.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
		mockTracker.AssertNotCalled(t, "CreateIssue", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("listing failure surfaces a warning and keeps going", func(t *testing.T) {
		mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans := setupTest(t)

		mockGit.On("GetChange", mock.Anything).Return(sampleChange, nil)
		mockTracker.On("ListOpenIssues", mock.Anything).Return(nil, errors.New("boom"))
		mockSum.On("Summarize", mock.Anything, sampleChange.Diff, (*models.Issue)(nil)).Return("Update auth", nil)

		service := newService(mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans)
		result, err := service.Describe(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeDone, result.Outcome)
		assert.NotEmpty(t, result.Warnings)
		mockMatch.AssertNotCalled(t, "Match", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("matcher failure continues without a linked issue", func(t *testing.T) {
		mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans := setupTest(t)

		candidates := []models.Issue{{Number: 1, Title: "Something"}}
		mockGit.On("GetChange", mock.Anything).Return(sampleChange, nil)
		mockTracker.On("ListOpenIssues", mock.Anything).Return(candidates, nil)
		mockMatch.On("Match", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("backend down"))
		mockSum.On("Summarize", mock.Anything, sampleChange.Diff, (*models.Issue)(nil)).Return("Update auth", nil)

		service := newService(mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans)
		result, err := service.Describe(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeDone, result.Outcome)
		assert.Nil(t, result.LinkedIssue)
	})

	t.Run("tracker disabled skips correlation altogether", func(t *testing.T) {
		mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans := setupTest(t)
		cfg.IssueTracker = config.TrackerNone

		mockGit.On("GetChange", mock.Anything).Return(sampleChange, nil)
		mockSum.On("Summarize", mock.Anything, sampleChange.Diff, (*models.Issue)(nil)).Return("Update auth", nil)

		service := newService(mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans)
		result, err := service.Describe(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeDone, result.Outcome)
		mockTracker.AssertNotCalled(t, "ListOpenIssues", mock.Anything)
	})

	t.Run("include issue in commit disabled skips correlation", func(t *testing.T) {
		mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans := setupTest(t)
		cfg.IncludeIssueInCommit = false

		mockGit.On("GetChange", mock.Anything).Return(sampleChange, nil)
		mockSum.On("Summarize", mock.Anything, sampleChange.Diff, (*models.Issue)(nil)).Return("Update auth", nil)

		service := newService(mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans)
		result, err := service.Describe(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeDone, result.Outcome)
		mockTracker.AssertNotCalled(t, "ListOpenIssues", mock.Anything)
	})

	t.Run("generation failure is fatal for the run", func(t *testing.T) {
		mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans := setupTest(t)
		cfg.IssueTracker = config.TrackerNone

		mockGit.On("GetChange", mock.Anything).Return(sampleChange, nil)
		mockSum.On("Summarize", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("model overloaded"))

		service := newService(mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans)
		result, err := service.Describe(context.Background())

		assert.Error(t, err)
		assert.Empty(t, result.Message)
		assert.False(t, service.IsBusy())
	})
}

func TestDescribeService_Cancellation(t *testing.T) {
	sampleChange := models.Change{
		Diff:  "diff --git a/x.go b/x.go\n+x",
		Files: []models.GitChange{{Path: "x.go", Status: "M"}},
	}

	t.Run("already cancelled context produces zero calls", func(t *testing.T) {
		mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans := setupTest(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		service := newService(mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans)
		result, err := service.Describe(ctx)

		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeCancelled, result.Outcome)
		assert.Empty(t, result.Message)
		mockGit.AssertNotCalled(t, "GetChange", mock.Anything)
		mockSum.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything, mock.Anything)
		assert.False(t, service.IsBusy())
	})

	t.Run("cancellation during diff capture reports a cancelled run", func(t *testing.T) {
		mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans := setupTest(t)

		mockGit.On("GetChange", mock.Anything).Return(models.Change{}, context.Canceled)

		service := newService(mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans)
		result, err := service.Describe(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeCancelled, result.Outcome)
		assert.False(t, service.IsBusy())
	})

	t.Run("cancellation before generation leaves no partial message", func(t *testing.T) {
		mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans := setupTest(t)

		ctx, cancel := context.WithCancel(context.Background())

		mockGit.On("GetChange", mock.Anything).Return(sampleChange, nil)
		mockTracker.On("ListOpenIssues", mock.Anything).Run(func(args mock.Arguments) {
			cancel()
		}).Return([]models.Issue{}, nil)

		service := newService(mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans)
		result, err := service.Describe(ctx)

		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeCancelled, result.Outcome)
		assert.Empty(t, result.Message)
		mockSum.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDescribeService_Busy(t *testing.T) {
	t.Run("a second run while busy is rejected", func(t *testing.T) {
		mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans := setupTest(t)
		cfg.IssueTracker = config.TrackerNone

		service := newService(mockGit, mockSum, mockCls, mockMatch, mockTracker, mockCreds, cfg, trans)

		change := models.Change{Diff: "+x", Files: []models.GitChange{{Path: "x.go", Status: "M"}}}
		mockGit.On("GetChange", mock.Anything).Return(change, nil)
		mockSum.On("Summarize", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			assert.True(t, service.IsBusy())
			_, err := service.Describe(context.Background())
			assert.Error(t, err)
		}).Return("msg", nil)

		result, err := service.Describe(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeDone, result.Outcome)
		assert.False(t, service.IsBusy())
	})
}

func TestBuildIssueTitle(t *testing.T) {
	classification := models.Classification{Type: models.ChangeTypeBug}

	t.Run("no paths", func(t *testing.T) {
		title := buildIssueTitle(classification, models.Change{})
		assert.Equal(t, "bug: pending changes", title)
	})

	t.Run("few paths listed in full", func(t *testing.T) {
		change := models.Change{Files: []models.GitChange{
			{Path: "a.go"}, {Path: "b.go"},
		}}
		title := buildIssueTitle(classification, change)
		assert.Equal(t, "bug: changes in a.go, b.go", title)
	})

	t.Run("long path lists are truncated", func(t *testing.T) {
		change := models.Change{Files: []models.GitChange{
			{Path: "a.go"}, {Path: "b.go"}, {Path: "c.go"}, {Path: "d.go"}, {Path: "e.go"},
		}}
		title := buildIssueTitle(classification, change)
		assert.Equal(t, "bug: changes in a.go, b.go, c.go (+2 more)", title)
	})
}

func TestMergeLabels(t *testing.T) {
	t.Run("deduplicates case-insensitively preserving order", func(t *testing.T) {
		merged := mergeLabels([]string{"Bug", "auth"}, []string{"bug", "triage"})
		assert.Equal(t, []string{"bug", "auth", "triage"}, merged)
	})

	t.Run("skips empty labels", func(t *testing.T) {
		merged := mergeLabels([]string{"", "  "}, []string{"chore"})
		assert.Equal(t, []string{"chore"}, merged)
	})
}
