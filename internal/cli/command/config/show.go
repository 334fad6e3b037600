package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateLink/internal/config"
	"github.com/Tomas-vilte/MateLink/internal/i18n"
	"github.com/urfave/cli/v3"
)

func newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			fmt.Printf("language: %s\n", cfg.Language)
			fmt.Printf("active_ai: %s\n", cfg.AIConfig.ActiveAI)
			fmt.Printf("model: %s\n", cfg.ActiveModel())

			for name, provider := range cfg.AIProviders {
				fmt.Printf("api_key[%s]: %s\n", name, maskSecret(provider.APIKey))
			}

			fmt.Printf("issue_tracker: %s\n", cfg.IssueTracker)
			if cfg.TrackerEnabled() {
				fmt.Printf("repository: %s/%s\n", cfg.GithubConfig.Owner, cfg.GithubConfig.Repo)
				fmt.Printf("token: %s\n", maskSecret(cfg.GithubConfig.Token))
				fmt.Printf("auto_create_issues: %t\n", cfg.AutoCreateIssues)
				fmt.Printf("include_issue_in_commit: %t\n", cfg.IncludeIssueInCommit)
			}

			fmt.Printf("config_file: %s\n", cfg.PathFile)
			return nil
		},
	}
}

// maskSecret deja solo los últimos 4 caracteres visibles.
func maskSecret(secret string) string {
	if secret == "" {
		return "(not set)"
	}
	if len(secret) <= 4 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}
