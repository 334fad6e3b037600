package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/Tomas-vilte/MateLink/internal/config"
	"github.com/Tomas-vilte/MateLink/internal/domain/ports"
	appErrors "github.com/Tomas-vilte/MateLink/internal/errors"
	"github.com/Tomas-vilte/MateLink/internal/i18n"
)

// TextGeneratorFactory crea un generador de texto para un proveedor.
type TextGeneratorFactory func(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (ports.TextGenerator, error)

// TextGeneratorRegistry gestiona el registro de backends de generación.
// El selector de configuración decide cuál se instancia; un selector
// desconocido es un error de configuración, no un panic ni un fallback.
type TextGeneratorRegistry struct {
	mu        sync.RWMutex
	factories map[string]TextGeneratorFactory
}

// NewTextGeneratorRegistry crea un nuevo registro de backends
func NewTextGeneratorRegistry() *TextGeneratorRegistry {
	return &TextGeneratorRegistry{
		factories: make(map[string]TextGeneratorFactory),
	}
}

// Register registra un nuevo backend
func (r *TextGeneratorRegistry) Register(name string, factory TextGeneratorFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("backend '%s' ya esta registrado", name)
	}

	r.factories[name] = factory
	return nil
}

// Get obtiene un factory por nombre
func (r *TextGeneratorRegistry) Get(name string) (TextGeneratorFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, appErrors.ErrProviderNotSupported.WithContext("provider", name)
	}

	return factory, nil
}

// CreateFromConfig instancia el backend activo según la configuración.
func (r *TextGeneratorRegistry) CreateFromConfig(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (ports.TextGenerator, error) {
	name := string(cfg.AIConfig.ActiveAI)
	if name == "" {
		return nil, appErrors.ErrConfigMissing.WithContext("field", "ai_config.active_ai")
	}

	factory, err := r.Get(name)
	if err != nil {
		return nil, err
	}

	return factory(ctx, cfg, trans)
}

// List retorna la lista de backends registrados
func (r *TextGeneratorRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]string, 0, len(r.factories))
	for name := range r.factories {
		providers = append(providers, name)
	}
	return providers
}

// IsRegistered verifica si un backend está registrado
func (r *TextGeneratorRegistry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}
