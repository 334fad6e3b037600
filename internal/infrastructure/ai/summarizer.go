package ai

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateLink/internal/domain/models"
	"github.com/Tomas-vilte/MateLink/internal/domain/ports"
)

var _ ports.ChangeSummarizer = (*Summarizer)(nil)

// Summarizer genera el mensaje descriptivo final a través del backend
// activo. La normalización de salida es la misma sin importar qué backend
// produjo el texto.
type Summarizer struct {
	gen  ports.TextGenerator
	lang string
}

func NewSummarizer(gen ports.TextGenerator, lang string) *Summarizer {
	return &Summarizer{
		gen:  gen,
		lang: lang,
	}
}

// Summarize implements ports.ChangeSummarizer.
func (s *Summarizer) Summarize(ctx context.Context, diff string, linked *models.Issue) (string, error) {
	var issueContext string
	if linked != nil {
		issueContext = fmt.Sprintf(GetSummaryIssueContext(s.lang), linked.Number, linked.Title)
	}

	prompt := fmt.Sprintf(GetSummaryPromptTemplate(s.lang), issueContext, diff)

	raw, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	return CleanGeneratedText(raw), nil
}
