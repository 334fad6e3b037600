package issues

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateLink/internal/config"
	"github.com/Tomas-vilte/MateLink/internal/domain/models"
	"github.com/Tomas-vilte/MateLink/internal/i18n"
	"github.com/urfave/cli/v3"
)

// IssueOpsService is a minimal interface for testing purposes
type IssueOpsService interface {
	ListOpen(ctx context.Context) ([]models.Issue, error)
	CreateFromChange(ctx context.Context) (*models.Issue, error)
}

type IssueServiceProvider func(ctx context.Context) (IssueOpsService, error)

// IssuesCommandFactory is the factory to create the issues command.
type IssuesCommandFactory struct {
	serviceProvider IssueServiceProvider
}

func NewIssuesCommandFactory(serviceProvider IssueServiceProvider) *IssuesCommandFactory {
	return &IssuesCommandFactory{serviceProvider: serviceProvider}
}

// CreateCommand creates the main issues command with its subcommands.
func (f *IssuesCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "issues",
		Aliases: []string{"i"},
		Usage:   t.GetMessage("issues_command_usage", 0, nil),
		Commands: []*cli.Command{
			f.newListCommand(t),
			f.newCreateCommand(t),
		},
	}
}

func (f *IssuesCommandFactory) newListCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   t.GetMessage("issues_list_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			service, err := f.serviceProvider(ctx)
			if err != nil {
				return err
			}

			issues, err := service.ListOpen(ctx)
			if err != nil {
				return err
			}

			if len(issues) == 0 {
				fmt.Println(t.GetMessage("issues_none_open", 0, nil))
				return nil
			}

			for _, issue := range issues {
				fmt.Printf("#%d\t%s\n", issue.Number, issue.Title)
			}
			return nil
		},
	}
}

func (f *IssuesCommandFactory) newCreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:    "create",
		Aliases: []string{"c"},
		Usage:   t.GetMessage("issues_create_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			service, err := f.serviceProvider(ctx)
			if err != nil {
				return err
			}

			fmt.Println(t.GetMessage("analyzing_changes", 0, nil))
			created, err := service.CreateFromChange(ctx)
			if err != nil {
				return err
			}

			fmt.Println(t.GetMessage("issue_created", 0, map[string]interface{}{
				"Number": created.Number,
				"Title":  created.Title,
			}))
			if created.URL != "" {
				fmt.Println(created.URL)
			}
			return nil
		},
	}
}
