package ports

import "context"

// TextGenerator es el contrato uniforme sobre los backends de generación de
// texto. Cada implementación hace una única llamada de red por invocación.
type TextGenerator interface {
	// Generate sends the prompt to the backend and returns the raw text of
	// the response. Cancellation is observed through ctx.
	Generate(ctx context.Context, prompt string) (string, error)
}
