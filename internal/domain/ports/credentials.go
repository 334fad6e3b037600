package ports

import "context"

// SessionProvider expone una sesión interactiva existente (por ejemplo la del
// gh CLI). Con promptIfAbsent=false nunca dispara un login interactivo.
type SessionProvider interface {
	GetSession(ctx context.Context, promptIfAbsent bool) (string, error)
}

// CredentialResolver produces a usable tracker token. Resolve returns ""
// (and no error) when no source yields a token; callers decide whether that
// is fatal for their operation.
type CredentialResolver interface {
	Resolve(ctx context.Context) (string, error)
}
