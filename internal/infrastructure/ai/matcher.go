package ai

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Tomas-vilte/MateLink/internal/domain/models"
	"github.com/Tomas-vilte/MateLink/internal/domain/ports"
	"github.com/Tomas-vilte/MateLink/internal/logger"
)

// noMatchToken es la palabra que el backend tiene que devolver cuando el
// cambio no resuelve ninguna issue de la lista.
const noMatchToken = "NONE"

// maxBodyInPrompt limits how much of each issue body goes into the prompt.
const maxBodyInPrompt = 200

var _ ports.RelevanceMatcher = (*Matcher)(nil)

// Matcher decide cuál de las issues candidatas (como máximo una) resuelve el
// diff. El número que devuelve el backend solo se acepta si pertenece a la
// lista de candidatas: un número bien formado pero ajeno a la lista se trata
// igual que "sin coincidencia".
type Matcher struct {
	gen  ports.TextGenerator
	lang string
}

func NewMatcher(gen ports.TextGenerator, lang string) *Matcher {
	return &Matcher{
		gen:  gen,
		lang: lang,
	}
}

// Match returns the matched candidate or nil. Only gateway errors are
// returned; unparseable or hallucinated backend output degrades to nil.
func (m *Matcher) Match(ctx context.Context, diff string, candidates []models.Issue) (*models.Issue, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	prompt := fmt.Sprintf(GetMatchPromptTemplate(m.lang),
		noMatchToken,
		formatCandidates(candidates),
		diff,
	)

	raw, err := m.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return m.resolveAnswer(ctx, raw, candidates), nil
}

func (m *Matcher) resolveAnswer(ctx context.Context, raw string, candidates []models.Issue) *models.Issue {
	answer := strings.TrimSpace(raw)

	if strings.EqualFold(answer, noMatchToken) {
		return nil
	}

	digits := keepDigits(answer)
	if digits == "" {
		logger.Debug(ctx, "matcher answer had no issue number, treating as no match", "raw", raw)
		return nil
	}

	number, err := strconv.Atoi(digits)
	if err != nil {
		logger.Debug(ctx, "matcher answer did not parse as a number, treating as no match", "raw", raw)
		return nil
	}

	for i := range candidates {
		if candidates[i].Number == number {
			return &candidates[i]
		}
	}

	logger.Warn(ctx, "matcher returned an issue number outside the candidate list, ignoring it", "number", number)
	return nil
}

func formatCandidates(candidates []models.Issue) string {
	var sb strings.Builder
	for _, issue := range candidates {
		sb.WriteString(fmt.Sprintf("- #%d: %s", issue.Number, issue.Title))
		if body := TruncateBody(issue.Body, maxBodyInPrompt); body != "" {
			sb.WriteString(fmt.Sprintf(" | %s", body))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func keepDigits(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
