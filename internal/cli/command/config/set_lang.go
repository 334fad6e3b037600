package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateLink/internal/config"
	"github.com/Tomas-vilte/MateLink/internal/i18n"
	"github.com/urfave/cli/v3"
)

func newSetLangCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-lang",
		Usage: t.GetMessage("config_set_lang_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lang",
				Aliases:  []string{"l"},
				Usage:    "Language code (en, es)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			lang := command.String("lang")
			if lang != "en" && lang != "es" {
				return fmt.Errorf("idioma no soportado: %s", lang)
			}

			cfg.Language = lang
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Printf("%s\n", t.GetMessage("config_saved", 0, nil))
			return nil
		},
	}
}
