package di

import (
	"context"

	"github.com/Tomas-vilte/MateLink/internal/config"
	"github.com/Tomas-vilte/MateLink/internal/domain/ports"
	appErrors "github.com/Tomas-vilte/MateLink/internal/errors"
	"github.com/Tomas-vilte/MateLink/internal/i18n"
	"github.com/Tomas-vilte/MateLink/internal/infrastructure/ai"
	"github.com/Tomas-vilte/MateLink/internal/infrastructure/ai/registry"
	"github.com/Tomas-vilte/MateLink/internal/infrastructure/auth"
	"github.com/Tomas-vilte/MateLink/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/MateLink/internal/logger"
	"github.com/Tomas-vilte/MateLink/internal/services"
)

// Container gestiona las dependencias de la aplicación
type Container struct {
	config       *config.Config
	translations *i18n.Translations

	genRegistry *registry.TextGeneratorRegistry

	// Services (lazy initialized)
	gitService      ports.GitService
	sessionProvider ports.SessionProvider
	generator       ports.TextGenerator
	tracker         ports.IssueTracker
	credentials     ports.CredentialResolver
	describeService ports.DescribeService
	issueService    *services.IssueService
}

// NewContainer crea un nuevo contenedor de dependencias
func NewContainer(cfg *config.Config, trans *i18n.Translations) *Container {
	return &Container{
		config:       cfg,
		translations: trans,
		genRegistry:  registry.NewTextGeneratorRegistry(),
	}
}

// RegisterTextGenerator registra un backend de generación
func (c *Container) RegisterTextGenerator(name string, factory registry.TextGeneratorFactory) error {
	return c.genRegistry.Register(name, factory)
}

// SetGitService establece el servicio Git
func (c *Container) SetGitService(gitService ports.GitService) {
	c.gitService = gitService
}

// SetSessionProvider establece el proveedor de sesión interactiva
func (c *Container) SetSessionProvider(provider ports.SessionProvider) {
	c.sessionProvider = provider
}

// GetGitService retorna el servicio Git
func (c *Container) GetGitService() ports.GitService {
	return c.gitService
}

// GetSessionProvider retorna el proveedor de sesión interactiva
func (c *Container) GetSessionProvider() ports.SessionProvider {
	return c.sessionProvider
}

// GetGeneratorRegistry retorna el registro de backends
func (c *Container) GetGeneratorRegistry() *registry.TextGeneratorRegistry {
	return c.genRegistry
}

// GetTextGenerator retorna el backend activo (lazy initialization)
func (c *Container) GetTextGenerator(ctx context.Context) (ports.TextGenerator, error) {
	if c.generator != nil {
		return c.generator, nil
	}

	generator, err := c.genRegistry.CreateFromConfig(ctx, c.config, c.translations)
	if err != nil {
		return nil, err
	}

	c.generator = generator
	return c.generator, nil
}

// GetCredentialResolver retorna la cadena de resolución de credenciales
func (c *Container) GetCredentialResolver() ports.CredentialResolver {
	if c.credentials == nil {
		c.credentials = auth.NewTokenResolver(c.config, c.sessionProvider)
	}
	return c.credentials
}

// GetIssueTracker retorna el cliente del tracker configurado, o nil cuando
// el tracker está deshabilitado.
func (c *Container) GetIssueTracker(ctx context.Context) (ports.IssueTracker, error) {
	if c.tracker != nil {
		return c.tracker, nil
	}

	if !c.config.TrackerEnabled() {
		return nil, nil
	}

	owner := c.config.GithubConfig.Owner
	repo := c.config.GithubConfig.Repo
	if owner == "" || repo == "" {
		if c.gitService == nil {
			return nil, appErrors.ErrRepoNotConfigured
		}
		var err error
		owner, repo, err = c.gitService.GetRepoInfo(ctx)
		if err != nil {
			return nil, appErrors.ErrRepoNotConfigured.WithError(err)
		}
	}

	// La credencial puede estar ausente: las lecturas siguen funcionando
	// sin autenticar, las escrituras fallan blando.
	token, err := c.GetCredentialResolver().Resolve(ctx)
	if err != nil {
		logger.Debug(ctx, "no se pudo resolver la credencial del tracker", "err", err)
		token = ""
	}

	c.tracker = github.NewGitHubTracker(owner, repo, token, c.translations)
	return c.tracker, nil
}

// GetDescribeService retorna el orquestador (lazy initialization)
func (c *Container) GetDescribeService(ctx context.Context) (ports.DescribeService, error) {
	if c.describeService != nil {
		return c.describeService, nil
	}

	if c.gitService == nil {
		return nil, appErrors.NewAppError(appErrors.TypeInternal, "servicio git no creado", nil)
	}

	generator, err := c.GetTextGenerator(ctx)
	if err != nil {
		return nil, err
	}

	tracker, err := c.GetIssueTracker(ctx)
	if err != nil {
		// Sin tracker se puede seguir: la corrida genera mensaje sin issue.
		logger.Warn(ctx, "tracker no disponible, se continúa sin correlación de issues", "err", err)
		tracker = nil
	}

	lang := c.config.Language
	c.describeService = services.NewDescribeService(
		c.gitService,
		ai.NewSummarizer(generator, lang),
		ai.NewClassifier(generator, lang),
		ai.NewMatcher(generator, lang),
		tracker,
		c.GetCredentialResolver(),
		c.config,
		c.translations,
	)

	return c.describeService, nil
}

// GetIssueService retorna el servicio de issues (lazy initialization)
func (c *Container) GetIssueService(ctx context.Context) (*services.IssueService, error) {
	if c.issueService != nil {
		return c.issueService, nil
	}

	if c.gitService == nil {
		return nil, appErrors.NewAppError(appErrors.TypeInternal, "servicio git no creado", nil)
	}

	generator, err := c.GetTextGenerator(ctx)
	if err != nil {
		return nil, err
	}

	tracker, err := c.GetIssueTracker(ctx)
	if err != nil {
		return nil, err
	}

	c.issueService = services.NewIssueService(
		c.gitService,
		ai.NewClassifier(generator, c.config.Language),
		tracker,
		c.config,
	)

	return c.issueService, nil
}

// GetConfig retorna la configuración
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetTranslations retorna las traducciones
func (c *Container) GetTranslations() *i18n.Translations {
	return c.translations
}
