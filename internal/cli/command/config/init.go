package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateLink/internal/config"
	"github.com/Tomas-vilte/MateLink/internal/i18n"
	"github.com/urfave/cli/v3"
)

func newInitCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: t.GetMessage("config_init_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			// LoadConfig ya crea el archivo por defecto cuando no existe;
			// acá solo lo persistimos de nuevo con los defaults aplicados.
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Printf("%s\n", t.GetMessage("config_saved", 0, nil))
			fmt.Println(cfg.PathFile)
			return nil
		},
	}
}
