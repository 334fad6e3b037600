package models

type IssueState string

const (
	IssueStateOpen       IssueState = "open"
	IssueStateClosed     IssueState = "closed"
	IssueStateInProgress IssueState = "in_progress"
)

// Issue es una copia de solo lectura de una issue del tracker.
// El número lo asigna siempre el tracker, nunca esta herramienta.
type Issue struct {
	Number int
	Title  string
	Body   string
	State  IssueState
	Labels []string
	Author string
	URL    string
}
