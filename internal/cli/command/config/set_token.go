package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateLink/internal/config"
	"github.com/Tomas-vilte/MateLink/internal/i18n"
	"github.com/urfave/cli/v3"
)

func newSetTokenCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-token",
		Usage: t.GetMessage("config_set_token_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "token",
				Aliases:  []string{"t"},
				Usage:    "Static tracker token (fallback when no session exists)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			cfg.GithubConfig.Token = command.String("token")

			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Printf("%s\n", t.GetMessage("config_saved", 0, nil))
			return nil
		},
	}
}
