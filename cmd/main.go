package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	configcmd "github.com/Tomas-vilte/MateLink/internal/cli/command/config"
	"github.com/Tomas-vilte/MateLink/internal/cli/command/describe"
	"github.com/Tomas-vilte/MateLink/internal/cli/command/issues"
	"github.com/Tomas-vilte/MateLink/internal/cli/command/login"
	"github.com/Tomas-vilte/MateLink/internal/cli/registry"
	cfg "github.com/Tomas-vilte/MateLink/internal/config"
	"github.com/Tomas-vilte/MateLink/internal/domain/ports"
	"github.com/Tomas-vilte/MateLink/internal/i18n"
	"github.com/Tomas-vilte/MateLink/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/MateLink/internal/infrastructure/ai/openai"
	"github.com/Tomas-vilte/MateLink/internal/infrastructure/auth"
	"github.com/Tomas-vilte/MateLink/internal/infrastructure/di"
	"github.com/Tomas-vilte/MateLink/internal/infrastructure/git"
	"github.com/Tomas-vilte/MateLink/internal/logger"
	"github.com/Tomas-vilte/MateLink/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	// Ctrl-C cancela la corrida en curso; el orquestador la termina como
	// cancelada sin mensaje parcial.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, fmt.Errorf("error al cargar las traducciones: %w", err)
	}

	logger.Initialize(os.Getenv("MATELINK_DEBUG") != "", os.Getenv("MATELINK_VERBOSE") != "")

	container := di.NewContainer(cfgApp, translations)

	if err := container.RegisterTextGenerator("gemini", func(ctx context.Context, c *cfg.Config, t *i18n.Translations) (ports.TextGenerator, error) {
		return gemini.NewGeminiGenerator(ctx, c, t)
	}); err != nil {
		log.Printf("Warning: no se pudo registrar el proveedor Gemini: %v", err)
	}

	if err := container.RegisterTextGenerator("openai", func(ctx context.Context, c *cfg.Config, t *i18n.Translations) (ports.TextGenerator, error) {
		return openai.NewOpenAIGenerator(c, t)
	}); err != nil {
		log.Printf("Warning: no se pudo registrar el proveedor OpenAI: %v", err)
	}

	gitService := git.NewGitService()
	container.SetGitService(gitService)
	container.SetSessionProvider(auth.NewGhCliSessionProvider())

	registerCommand := registry.NewRegistry(cfgApp, translations)

	describeProvider := func(ctx context.Context) (ports.DescribeService, error) {
		return container.GetDescribeService(ctx)
	}
	if err := registerCommand.Register("describe", describe.NewDescribeCommandFactory(describeProvider, gitService)); err != nil {
		log.Fatalf("Error al registrar el comando 'describe': %v", err)
	}

	issueProvider := func(ctx context.Context) (issues.IssueOpsService, error) {
		return container.GetIssueService(ctx)
	}
	if err := registerCommand.Register("issues", issues.NewIssuesCommandFactory(issueProvider)); err != nil {
		log.Fatalf("Error al registrar el comando 'issues': %v", err)
	}

	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory()); err != nil {
		log.Fatalf("Error al registrar el comando 'config': %v", err)
	}

	if err := registerCommand.Register("login", login.NewLoginCommandFactory(container.GetSessionProvider())); err != nil {
		log.Fatalf("Error al registrar el comando 'login': %v", err)
	}

	return &cli.Command{
		Name:                  "matelink",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.Version,
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              registerCommand.CreateCommands(),
		EnableShellCompletion: true,
	}, nil
}
