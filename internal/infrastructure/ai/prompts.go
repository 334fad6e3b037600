package ai

// Templates para clasificación de cambios
const (
	classifyPromptTemplateEN = `Analyze the following git diff and classify the change.

Respond with a single JSON object and NOTHING else. No markdown fences, no commentary.
The object must have exactly these fields:
- "type": one of "bug", "enhancement", "chore", "refactor", "docs", "test"
- "labels": an array of short lowercase label strings
- "confidence": a number between 0 and 1

Git diff:
%s`

	classifyPromptTemplateES = `Analizá el siguiente git diff y clasificá el cambio.

Respondé con un único objeto JSON y NADA más. Sin bloques markdown, sin comentarios.
El objeto tiene que tener exactamente estos campos:
- "type": uno de "bug", "enhancement", "chore", "refactor", "docs", "test"
- "labels": un array de etiquetas cortas en minúsculas
- "confidence": un número entre 0 y 1

Git diff:
%s`
)

// Templates para correlación con issues
const (
	matchPromptTemplateEN = `You are correlating a pending code change with the open issues of a repository.

Decide whether the change necessarily addresses exactly ONE of the issues listed below.
- If it does, respond with the bare issue number and nothing else. Example: 42
- If it does not clearly address any of them, respond with the single word: %s

Do not invent issue numbers. Only numbers from the list are valid.

Open issues:
%s

Git diff:
%s`

	matchPromptTemplateES = `Estás correlacionando un cambio de código pendiente con las issues abiertas de un repositorio.

Decidí si el cambio resuelve necesariamente exactamente UNA de las issues listadas abajo.
- Si la resuelve, respondé solo con el número de la issue y nada más. Ejemplo: 42
- Si no resuelve claramente ninguna, respondé con la única palabra: %s

No inventes números de issue. Solo son válidos los números de la lista.

Issues abiertas:
%s

Git diff:
%s`
)

// Templates para el mensaje final
const (
	summaryPromptTemplateEN = `Write a commit message for the following change.

Instructions:
1. First line: a short imperative summary (max 72 characters), conventional commit style (feat:, fix:, refactor:, docs:, test:, chore:).
2. Then a blank line and a brief body explaining WHAT changed and WHY.
3. Plain text only. No markdown fences.
%s
Git diff:
%s`

	summaryPromptTemplateES = `Escribí un mensaje de commit para el siguiente cambio.

Instrucciones:
1. Primera línea: un resumen corto en imperativo (máx 72 caracteres), estilo conventional commit (feat:, fix:, refactor:, docs:, test:, chore:).
2. Después una línea en blanco y un cuerpo breve explicando QUÉ cambió y POR QUÉ.
3. Solo texto plano. Sin bloques markdown.
%s
Git diff:
%s`

	summaryIssueContextEN = `
This change addresses issue #%d: %s
Mention the connection naturally in the body. Do not reference any other issue.
`

	summaryIssueContextES = `
Este cambio resuelve la issue #%d: %s
Mencioná la relación de forma natural en el cuerpo. No referencies ninguna otra issue.
`
)

// GetClassifyPromptTemplate returns the classification template for lang.
func GetClassifyPromptTemplate(lang string) string {
	if lang == "es" {
		return classifyPromptTemplateES
	}
	return classifyPromptTemplateEN
}

// GetMatchPromptTemplate returns the relevance template for lang.
func GetMatchPromptTemplate(lang string) string {
	if lang == "es" {
		return matchPromptTemplateES
	}
	return matchPromptTemplateEN
}

// GetSummaryPromptTemplate returns the final message template for lang.
func GetSummaryPromptTemplate(lang string) string {
	if lang == "es" {
		return summaryPromptTemplateES
	}
	return summaryPromptTemplateEN
}

// GetSummaryIssueContext returns the linked-issue fragment for lang.
func GetSummaryIssueContext(lang string) string {
	if lang == "es" {
		return summaryIssueContextES
	}
	return summaryIssueContextEN
}
