package models

type RunOutcome string

const (
	// OutcomeDone indicates the run produced a message.
	OutcomeDone RunOutcome = "done"
	// OutcomeNothingToDo indicates there was no pending change. Not an error.
	OutcomeNothingToDo RunOutcome = "nothing_to_do"
	// OutcomeCancelled indicates the user cancelled the run. Not an error.
	OutcomeCancelled RunOutcome = "cancelled"
)

// DescribeResult es lo que devuelve una corrida del orquestador.
// A lo sumo una issue queda vinculada al mensaje generado.
type DescribeResult struct {
	Outcome     RunOutcome
	Message     string
	LinkedIssue *Issue
	// IssueCreated marks whether LinkedIssue was created during this run
	// rather than matched against the open list.
	IssueCreated bool
	// Warnings collects the soft failures surfaced to the user without
	// aborting the run (issue listing, auto-creation, etc).
	Warnings []string
}
