package describe

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateLink/internal/config"
	"github.com/Tomas-vilte/MateLink/internal/domain/models"
	"github.com/Tomas-vilte/MateLink/internal/domain/ports"
	"github.com/Tomas-vilte/MateLink/internal/i18n"
	"github.com/urfave/cli/v3"
)

// DescribeServiceProvider construye el orquestador recién cuando el comando
// corre, para que la CLI arranque aunque la IA no esté configurada todavía.
type DescribeServiceProvider func(ctx context.Context) (ports.DescribeService, error)

type DescribeCommandFactory struct {
	serviceProvider DescribeServiceProvider
	gitService      ports.GitService
}

func NewDescribeCommandFactory(serviceProvider DescribeServiceProvider, gitService ports.GitService) *DescribeCommandFactory {
	return &DescribeCommandFactory{
		serviceProvider: serviceProvider,
		gitService:      gitService,
	}
}

func (f *DescribeCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:        "describe",
		Aliases:     []string{"d"},
		Usage:       t.GetMessage("describe_command_usage", 0, nil),
		Description: t.GetMessage("describe_command_description", 0, nil),
		Flags:       f.createFlags(cfg, t),
		Action:      f.createAction(cfg, t),
	}
}

func (f *DescribeCommandFactory) createFlags(cfg *config.Config, t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "lang",
			Aliases: []string{"l"},
			Usage:   t.GetMessage("describe_lang_flag_usage", 0, nil),
			Value:   cfg.Language,
		},
		&cli.BoolFlag{
			Name:    "no-issue",
			Aliases: []string{"ni"},
			Usage:   t.GetMessage("describe_no_issue_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:    "commit",
			Aliases: []string{"c"},
			Usage:   t.GetMessage("describe_commit_flag_usage", 0, nil),
		},
	}
}

func (f *DescribeCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		// Los flags ajustan la config en memoria, solo para esta corrida.
		cfg.Language = command.String("lang")
		if command.Bool("no-issue") {
			cfg.IncludeIssueInCommit = false
		}

		service, err := f.serviceProvider(ctx)
		if err != nil {
			return err
		}

		fmt.Println(t.GetMessage("analyzing_changes", 0, nil))
		result, err := service.Describe(ctx)
		if err != nil {
			return err
		}

		switch result.Outcome {
		case models.OutcomeNothingToDo:
			fmt.Println(t.GetMessage("nothing_to_do", 0, nil))
			return nil
		case models.OutcomeCancelled:
			fmt.Println(t.GetMessage("run_cancelled", 0, nil))
			return nil
		}

		f.printResult(result, t)

		if command.Bool("commit") {
			if err := f.gitService.CreateCommit(ctx, result.Message); err != nil {
				return err
			}
			fmt.Println(t.GetMessage("commit_created", 0, nil))
		}

		return nil
	}
}

func (f *DescribeCommandFactory) printResult(result models.DescribeResult, t *i18n.Translations) {
	for _, warning := range result.Warnings {
		fmt.Println(t.GetMessage("run_warning", 0, map[string]interface{}{
			"Warning": warning,
		}))
	}

	if result.LinkedIssue != nil {
		key := "linked_issue_matched"
		if result.IssueCreated {
			key = "linked_issue_created"
		}
		fmt.Println(t.GetMessage(key, 0, map[string]interface{}{
			"Number": result.LinkedIssue.Number,
			"Title":  result.LinkedIssue.Title,
		}))
	} else {
		fmt.Println(t.GetMessage("no_issue_linked", 0, nil))
	}

	fmt.Println()
	fmt.Println(t.GetMessage("generated_message_header", 0, nil))
	fmt.Println(result.Message)
}
