package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateLink/internal/config"
	"github.com/Tomas-vilte/MateLink/internal/i18n"
	"github.com/urfave/cli/v3"
)

func newSetAPIKeyCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-api-key",
		Usage: t.GetMessage("config_set_api_key_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "provider",
				Aliases:  []string{"p"},
				Usage:    "AI provider (gemini, openai)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "key",
				Aliases:  []string{"k"},
				Usage:    "API key value",
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			provider := command.String("provider")
			apiKey := command.String("key")

			if !config.IsSupportedAI(provider) {
				msg := t.GetMessage("config_invalid_provider", 0, map[string]interface{}{
					"Provider":  provider,
					"Supported": supportedAIList(),
				})
				return fmt.Errorf("%s", msg)
			}

			if cfg.AIProviders == nil {
				cfg.AIProviders = map[string]config.AIProviderConfig{}
			}
			cfg.AIProviders[provider] = config.AIProviderConfig{APIKey: apiKey}

			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Printf("%s\n", t.GetMessage("config_saved", 0, nil))
			return nil
		},
	}
}

func supportedAIList() string {
	names := make([]string, 0, len(config.SupportedAIs()))
	for _, ai := range config.SupportedAIs() {
		names = append(names, string(ai))
	}
	return strings.Join(names, ", ")
}
