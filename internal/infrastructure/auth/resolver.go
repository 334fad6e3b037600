package auth

import (
	"context"
	"os"

	"github.com/Tomas-vilte/MateLink/internal/config"
	"github.com/Tomas-vilte/MateLink/internal/domain/ports"
	"github.com/Tomas-vilte/MateLink/internal/logger"
)

var _ ports.CredentialResolver = (*TokenResolver)(nil)

// resolverFunc intenta producir un token. Devuelve "" (sin error) cuando la
// fuente no tiene nada para ofrecer.
type resolverFunc func(ctx context.Context) (string, error)

// TokenResolver resuelve el token del tracker probando fuentes en orden:
// primero la sesión interactiva existente (sin disparar login), después el
// token estático de la configuración, por último la variable de entorno.
// La primera que responde gana. Que ninguna responda no es un error.
type TokenResolver struct {
	resolvers []resolverFunc
}

func NewTokenResolver(cfg *config.Config, session ports.SessionProvider) *TokenResolver {
	resolvers := []resolverFunc{}

	if session != nil {
		resolvers = append(resolvers, func(ctx context.Context) (string, error) {
			return session.GetSession(ctx, false)
		})
	}

	resolvers = append(resolvers,
		func(_ context.Context) (string, error) {
			return cfg.GithubConfig.Token, nil
		},
		func(_ context.Context) (string, error) {
			return os.Getenv("GITHUB_TOKEN"), nil
		},
	)

	return &TokenResolver{resolvers: resolvers}
}

// Resolve implements ports.CredentialResolver.
func (r *TokenResolver) Resolve(ctx context.Context) (string, error) {
	for _, resolve := range r.resolvers {
		token, err := resolve(ctx)
		if err != nil {
			// Una fuente caída no invalida las siguientes.
			logger.Debug(ctx, "fuente de credenciales falló, probando la siguiente", "err", err)
			continue
		}
		if token != "" {
			return token, nil
		}
	}
	return "", nil
}
