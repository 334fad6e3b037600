package login

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateLink/internal/config"
	"github.com/Tomas-vilte/MateLink/internal/domain/ports"
	"github.com/Tomas-vilte/MateLink/internal/i18n"
	"github.com/urfave/cli/v3"
)

type LoginCommandFactory struct {
	sessionProvider ports.SessionProvider
}

func NewLoginCommandFactory(sessionProvider ports.SessionProvider) *LoginCommandFactory {
	return &LoginCommandFactory{sessionProvider: sessionProvider}
}

func (f *LoginCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: t.GetMessage("login_command_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			token, err := f.sessionProvider.GetSession(ctx, true)
			if err != nil || token == "" {
				msg := t.GetMessage("login_failed", 0, map[string]interface{}{
					"Error": err,
				})
				return fmt.Errorf("%s", msg)
			}

			fmt.Println(t.GetMessage("login_success", 0, nil))
			return nil
		},
	}
}
