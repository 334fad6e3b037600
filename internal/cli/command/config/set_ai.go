package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateLink/internal/config"
	"github.com/Tomas-vilte/MateLink/internal/i18n"
	"github.com/urfave/cli/v3"
)

func newSetAICommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-ai",
		Usage: t.GetMessage("config_set_ai_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "provider",
				Aliases:  []string{"p"},
				Usage:    "AI provider (gemini, openai)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "model",
				Aliases: []string{"m"},
				Usage:   "Model to use with the provider",
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			provider := command.String("provider")
			model := command.String("model")

			if !config.IsSupportedAI(provider) {
				msg := t.GetMessage("config_invalid_provider", 0, map[string]interface{}{
					"Provider":  provider,
					"Supported": supportedAIList(),
				})
				return fmt.Errorf("%s", msg)
			}

			ai := config.AI(provider)
			cfg.AIConfig.ActiveAI = ai

			if cfg.AIConfig.Models == nil {
				cfg.AIConfig.Models = map[config.AI]config.Model{}
			}
			if model != "" {
				cfg.AIConfig.Models[ai] = config.Model(model)
			} else if _, ok := cfg.AIConfig.Models[ai]; !ok {
				cfg.AIConfig.Models[ai] = config.DefaultModelForAI(ai)
			}

			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Printf("%s\n", t.GetMessage("config_saved", 0, nil))
			return nil
		},
	}
}
