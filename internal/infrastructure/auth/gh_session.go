package auth

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/Tomas-vilte/MateLink/internal/domain/ports"
	appErrors "github.com/Tomas-vilte/MateLink/internal/errors"
)

var _ ports.SessionProvider = (*GhCliSessionProvider)(nil)

// GhCliSessionProvider obtiene la sesión existente del gh CLI. Con
// promptIfAbsent=false solo consulta; el login interactivo es una operación
// separada que el usuario dispara explícitamente con `matelink login`.
type GhCliSessionProvider struct {
}

func NewGhCliSessionProvider() *GhCliSessionProvider {
	return &GhCliSessionProvider{}
}

// GetSession implements ports.SessionProvider.
func (p *GhCliSessionProvider) GetSession(ctx context.Context, promptIfAbsent bool) (string, error) {
	cmd := exec.CommandContext(ctx, "gh", "auth", "token")
	output, err := cmd.Output()
	if err == nil {
		token := strings.TrimSpace(string(output))
		if token != "" {
			return token, nil
		}
	}

	if !promptIfAbsent {
		return "", nil
	}

	// Login interactivo explícito: hereda la terminal del usuario.
	loginCmd := exec.CommandContext(ctx, "gh", "auth", "login")
	loginCmd.Stdin = os.Stdin
	loginCmd.Stdout = os.Stdout
	loginCmd.Stderr = os.Stderr
	if err := loginCmd.Run(); err != nil {
		return "", appErrors.NewAppError(appErrors.TypeAuth, "el login interactivo falló", err)
	}

	tokenCmd := exec.CommandContext(ctx, "gh", "auth", "token")
	output, err = tokenCmd.Output()
	if err != nil {
		return "", appErrors.NewAppError(appErrors.TypeAuth, "no se pudo leer el token después del login", err)
	}

	return strings.TrimSpace(string(output)), nil
}
