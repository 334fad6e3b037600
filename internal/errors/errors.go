package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeAuth          ErrorType = "AUTH"
	TypeNetwork       ErrorType = "NETWORK"
	TypeAI            ErrorType = "AI"
	TypeVCS           ErrorType = "VCS"
	TypeGit           ErrorType = "GIT"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if body, ok := e.Context["body"].(string); ok && body != "" {
			msg += fmt.Sprintf(" - %s", body)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// IsType reports whether err is an AppError of the given type
func IsType(err error, t ErrorType) bool {
	for err != nil {
		if appErr, ok := err.(*AppError); ok {
			return appErr.Type == t
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// Configuration errors
var (
	ErrAPIKeyMissing = NewAppError(TypeConfiguration, "AI API key is missing", nil).
				WithSuggestion("Run: matelink config set-api-key <provider> <key>")

	ErrProviderNotSupported = NewAppError(TypeConfiguration, "AI provider not supported", nil).
				WithSuggestion("List supported providers with: matelink config show")

	ErrTrackerNotSupported = NewAppError(TypeConfiguration, "issue tracker not supported", nil).
				WithSuggestion("Currently only 'github' and 'none' are supported")

	ErrConfigMissing = NewAppError(TypeConfiguration, "Configuration is missing", nil).
				WithSuggestion("Initialize configuration: matelink config init")

	ErrRepoNotConfigured = NewAppError(TypeConfiguration, "repository owner/name not configured", nil).
				WithSuggestion("Run matelink from a git repository with an origin remote, or set it with: matelink config set-repo <owner> <repo>")
)

// Authentication errors
var (
	ErrAuthFailed = NewAppError(TypeAuth, "authentication rejected by the provider", nil).
			WithSuggestion("Check that your token is valid and has the required scopes")

	ErrTokenMissing = NewAppError(TypeAuth, "no tracker credential available", nil).
			WithSuggestion("Run: matelink login, or configure a token with: matelink config set-token <token>")
)

// Network errors
var (
	ErrHostUnreachable = NewAppError(TypeNetwork, "could not reach the provider", nil).
				WithSuggestion("Check your network connection and proxy settings")
)

// AI errors
var (
	ErrAIGeneration = NewAppError(TypeAI, "AI generation failed", nil).
			WithSuggestion("Try again or check your API key configuration")

	ErrEmptyAIResponse = NewAppError(TypeAI, "the AI returned a response without text content", nil).
				WithSuggestion("This is likely a temporary issue, please try again")
)

// Git errors
var (
	ErrNoChanges = NewAppError(TypeGit, "No pending changes detected", nil).
			WithSuggestion("Make some changes or stage them first with: git add <files>")

	ErrGetDiff = NewAppError(TypeGit, "Failed to get diff", nil).
			WithSuggestion("Make sure you are inside a git repository: git status")

	ErrNotInGitRepo = NewAppError(TypeGit, "Not in a git repository", nil).
			WithSuggestion("Initialize a git repository: git init")

	ErrGetRepoURL = NewAppError(TypeGit, "Failed to get repository URL", nil).
			WithSuggestion("Add a remote: git remote add origin <url>")
)

// VCS errors
var (
	ErrIssueOperation = NewAppError(TypeVCS, "issue tracker operation failed", nil).
				WithSuggestion("Check repository access permissions and token scopes")

	ErrGitHubInsufficientPerms = NewAppError(TypeVCS, "GitHub token has insufficient permissions", nil).
					WithSuggestion("Token needs the 'repo' scope.\nRegenerate at: https://github.com/settings/tokens")
)
