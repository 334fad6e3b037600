package config

import (
	"github.com/Tomas-vilte/MateLink/internal/config"
	"github.com/Tomas-vilte/MateLink/internal/i18n"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (f *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			newInitCommand(t, cfg),
			newShowCommand(t, cfg),
			newSetAPIKeyCommand(t, cfg),
			newSetAICommand(t, cfg),
			newSetLangCommand(t, cfg),
			newSetTokenCommand(t, cfg),
			newSetRepoCommand(t, cfg),
		},
	}
}
