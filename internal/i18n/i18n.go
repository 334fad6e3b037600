package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations builds the message bundle. The embedded English defaults
// are always present; localesDir optionally adds active.*.toml overrides.
func NewTranslations(defaultLang string, localesDir string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")
	bundle.MustParseMessageFileBytes([]byte(messagesES), "active.es.toml")

	if localesDir != "" {
		files, err := filepath.Glob(filepath.Join(localesDir, "active.*.toml"))
		if err != nil {
			return nil, fmt.Errorf("error reading locales: %w", err)
		}
		for _, file := range files {
			if _, err := bundle.LoadMessageFile(file); err != nil {
				return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
			}
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Link your pending changes with tracker issues and describe them"

	[app_description]
	other = "MateLink inspects your pending git changes, finds the open issue they address (if any) and generates a descriptive commit message referencing it"

	[describe_command_usage]
	other = "Generate a change description for your pending changes"

	[describe_command_description]
	other = "Analyzes the pending diff, correlates it with an open issue and generates a commit message. At most one issue is referenced."

	[describe_lang_flag_usage]
	other = "Language for the generated message (en, es)"

	[describe_no_issue_flag_usage]
	other = "Skip issue correlation for this run"

	[describe_commit_flag_usage]
	other = "Create the commit with the generated message"

	[analyzing_changes]
	other = "Analyzing changes..."

	[nothing_to_do]
	other = "No pending changes detected. Nothing to do."

	[run_cancelled]
	other = "Operation cancelled."

	[generated_message_header]
	other = "Generated message:"

	[linked_issue_matched]
	other = "Linked to existing issue #{{.Number}}: {{.Title}}"

	[linked_issue_created]
	other = "Created and linked issue #{{.Number}}: {{.Title}}"

	[no_issue_linked]
	other = "No related issue was linked."

	[run_warning]
	other = "warning: {{.Warning}}"

	[commit_created]
	other = "Commit created."

	[error_missing_api_key]
	other = "The API key for {{.Provider}} is not configured. Run: matelink config set-api-key {{.Provider}} <key>"

	[error_generating_content]
	other = "Error generating content: {{.Error}}"

	[error_auth_provider]
	other = "The provider rejected your credentials (HTTP {{.Status}}). Check that your token has the required scopes."

	[error_network]
	other = "Could not reach {{.Host}}. Check your network connection."

	[issues_command_usage]
	other = "Work with tracker issues"

	[issues_list_usage]
	other = "List the open issues of the configured repository"

	[issues_create_usage]
	other = "Classify your pending changes and create an issue from them"

	[issues_none_open]
	other = "No open issues found."

	[issues_create_failed]
	other = "The issue could not be created. Check your token and repository access."

	[issue_created]
	other = "Issue #{{.Number}} created: {{.Title}}"

	[login_command_usage]
	other = "Sign in to the issue tracker interactively"

	[login_success]
	other = "Session acquired. Credentials will be resolved from it on the next run."

	[login_failed]
	other = "Could not acquire a session: {{.Error}}"

	[config_command_usage]
	other = "Manage MateLink configuration"

	[config_init_usage]
	other = "Create a default configuration file"

	[config_show_usage]
	other = "Show the current configuration"

	[config_set_api_key_usage]
	other = "Set the API key for an AI provider"

	[config_set_ai_usage]
	other = "Select the active AI provider"

	[config_set_lang_usage]
	other = "Set the default language (en, es)"

	[config_set_token_usage]
	other = "Set the static issue tracker token"

	[config_set_repo_usage]
	other = "Set the tracker repository (owner and name)"

	[config_saved]
	other = "Configuration saved."

	[config_invalid_provider]
	other = "Provider '{{.Provider}}' is not supported. Supported providers: {{.Supported}}"

	[warning_issue_listing_failed]
	other = "could not list open issues, continuing without candidates"

	[warning_issue_creation_failed]
	other = "could not auto-create an issue, continuing without linking"
`

var messagesES = `
	[app_usage]
	other = "Vinculá tus cambios pendientes con issues del tracker y describilos"

	[app_description]
	other = "MateLink analiza tus cambios pendientes de git, encuentra la issue abierta que resuelven (si existe) y genera un mensaje de commit descriptivo que la referencia"

	[describe_command_usage]
	other = "Generá una descripción para tus cambios pendientes"

	[describe_command_description]
	other = "Analiza el diff pendiente, lo correlaciona con una issue abierta y genera un mensaje de commit. Como máximo se referencia una issue."

	[analyzing_changes]
	other = "Analizando cambios..."

	[nothing_to_do]
	other = "No se detectaron cambios pendientes. Nada para hacer."

	[run_cancelled]
	other = "Operación cancelada."

	[generated_message_header]
	other = "Mensaje generado:"

	[linked_issue_matched]
	other = "Vinculado a la issue existente #{{.Number}}: {{.Title}}"

	[linked_issue_created]
	other = "Issue #{{.Number}} creada y vinculada: {{.Title}}"

	[no_issue_linked]
	other = "No se vinculó ninguna issue relacionada."

	[commit_created]
	other = "Commit creado."

	[error_missing_api_key]
	other = "La API key de {{.Provider}} no está configurada. Ejecutá: matelink config set-api-key {{.Provider}} <key>"

	[error_generating_content]
	other = "Error generando contenido: {{.Error}}"

	[issues_none_open]
	other = "No se encontraron issues abiertas."

	[issue_created]
	other = "Issue #{{.Number}} creada: {{.Title}}"

	[config_saved]
	other = "Configuración guardada."
`
