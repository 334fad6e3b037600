package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateLink/internal/config"
	"github.com/Tomas-vilte/MateLink/internal/i18n"
	"github.com/urfave/cli/v3"
)

func newSetRepoCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-repo",
		Usage: t.GetMessage("config_set_repo_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "owner",
				Aliases:  []string{"o"},
				Usage:    "Repository owner or organization",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "repo",
				Aliases:  []string{"r"},
				Usage:    "Repository name",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "auto-create",
				Usage: "Create an issue automatically when no open issue matches",
			},
			&cli.BoolFlag{
				Name:  "no-link",
				Usage: "Do not reference issues in generated messages",
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			cfg.IssueTracker = config.TrackerGitHub
			cfg.GithubConfig.Owner = command.String("owner")
			cfg.GithubConfig.Repo = command.String("repo")
			cfg.AutoCreateIssues = command.Bool("auto-create")
			cfg.IncludeIssueInCommit = !command.Bool("no-link")

			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Printf("%s\n", t.GetMessage("config_saved", 0, nil))
			return nil
		},
	}
}
