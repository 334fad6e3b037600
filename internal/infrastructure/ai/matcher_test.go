package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/Tomas-vilte/MateLink/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMatcher_Match(t *testing.T) {
	diff := "diff --git a/login.go b/login.go\n+retry on 401"
	candidates := []models.Issue{
		{Number: 12, Title: "Login retries missing"},
		{Number: 34, Title: "Docs out of date"},
	}

	t.Run("empty candidate list never calls the backend", func(t *testing.T) {
		mockGen := new(MockTextGenerator)

		matcher := NewMatcher(mockGen, "en")
		matched, err := matcher.Match(context.Background(), diff, nil)

		assert.NoError(t, err)
		assert.Nil(t, matched)
		mockGen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("the no-match token yields nil", func(t *testing.T) {
		for _, answer := range []string{"NONE", "none", " None \n"} {
			mockGen := new(MockTextGenerator)
			mockGen.On("Generate", mock.Anything, mock.Anything).Return(answer, nil)

			matcher := NewMatcher(mockGen, "en")
			matched, err := matcher.Match(context.Background(), diff, candidates)

			assert.NoError(t, err)
			assert.Nil(t, matched, "answer %q should be treated as no match", answer)
		}
	})

	t.Run("a candidate number links that candidate", func(t *testing.T) {
		for _, answer := range []string{"12", "#12", "Issue 12.", "The answer is #12\n"} {
			mockGen := new(MockTextGenerator)
			mockGen.On("Generate", mock.Anything, mock.Anything).Return(answer, nil)

			matcher := NewMatcher(mockGen, "en")
			matched, err := matcher.Match(context.Background(), diff, candidates)

			assert.NoError(t, err)
			require.NotNil(t, matched, "answer %q should match issue 12", answer)
			assert.Equal(t, 12, matched.Number)
		}
	})

	t.Run("a number outside the candidate list is treated as no match", func(t *testing.T) {
		mockGen := new(MockTextGenerator)
		mockGen.On("Generate", mock.Anything, mock.Anything).Return("999", nil)

		matcher := NewMatcher(mockGen, "en")
		matched, err := matcher.Match(context.Background(), diff, candidates)

		assert.NoError(t, err)
		assert.Nil(t, matched)
	})

	t.Run("any answer resolves to a candidate or nil, never an error", func(t *testing.T) {
		answers := []string{
			"", "   ", "maybe?", "NONE but also #12", "0", "-", "issue", "¯\\_(ツ)_/¯",
			"{\"number\": 12}", "12 and 34", "nonexistent #5",
		}
		for _, answer := range answers {
			mockGen := new(MockTextGenerator)
			mockGen.On("Generate", mock.Anything, mock.Anything).Return(answer, nil)

			matcher := NewMatcher(mockGen, "en")
			matched, err := matcher.Match(context.Background(), diff, candidates)

			assert.NoError(t, err, "answer %q", answer)
			if matched != nil {
				found := false
				for _, c := range candidates {
					if c.Number == matched.Number {
						found = true
					}
				}
				assert.True(t, found, "answer %q linked an issue outside the candidates", answer)
			}
		}
	})

	t.Run("gateway errors propagate untouched", func(t *testing.T) {
		mockGen := new(MockTextGenerator)
		backendErr := errors.New("timeout")
		mockGen.On("Generate", mock.Anything, mock.Anything).Return("", backendErr)

		matcher := NewMatcher(mockGen, "en")
		_, err := matcher.Match(context.Background(), diff, candidates)

		assert.ErrorIs(t, err, backendErr)
	})
}

func TestKeepDigits(t *testing.T) {
	assert.Equal(t, "12", keepDigits("#12"))
	assert.Equal(t, "12", keepDigits("Issue 12."))
	assert.Equal(t, "", keepDigits("none"))
	assert.Equal(t, "1234", keepDigits("12 and 34"))
}
