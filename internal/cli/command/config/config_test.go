package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Tomas-vilte/MateLink/internal/config"
	"github.com/Tomas-vilte/MateLink/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfig(t *testing.T) (*config.Config, *i18n.Translations) {
	tempDir := t.TempDir()
	cfg, err := config.LoadConfig(tempDir)
	require.NoError(t, err)

	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return cfg, trans
}

func TestSetAPIKeyCommand(t *testing.T) {
	t.Run("stores the key for a supported provider", func(t *testing.T) {
		cfg, trans := setupConfig(t)

		cmd := newSetAPIKeyCommand(trans, cfg)
		err := cmd.Run(context.Background(), []string{"set-api-key", "--provider", "openai", "--key", "sk-test"})

		assert.NoError(t, err)
		assert.Equal(t, "sk-test", cfg.AIProviders["openai"].APIKey)

		loaded, err := config.LoadConfig(cfg.PathFile)
		require.NoError(t, err)
		assert.Equal(t, "sk-test", loaded.AIProviders["openai"].APIKey)
	})

	t.Run("rejects an unsupported provider", func(t *testing.T) {
		cfg, trans := setupConfig(t)

		cmd := newSetAPIKeyCommand(trans, cfg)
		err := cmd.Run(context.Background(), []string{"set-api-key", "--provider", "claude", "--key", "sk-test"})

		assert.Error(t, err)
	})
}

func TestSetAICommand(t *testing.T) {
	t.Run("switches the active provider with its default model", func(t *testing.T) {
		cfg, trans := setupConfig(t)

		cmd := newSetAICommand(trans, cfg)
		err := cmd.Run(context.Background(), []string{"set-ai", "--provider", "openai"})

		assert.NoError(t, err)
		assert.Equal(t, config.AIOpenAI, cfg.AIConfig.ActiveAI)
		assert.Equal(t, config.DefaultModelForAI(config.AIOpenAI), cfg.ActiveModel())
	})

	t.Run("an explicit model overrides the default", func(t *testing.T) {
		cfg, trans := setupConfig(t)

		cmd := newSetAICommand(trans, cfg)
		err := cmd.Run(context.Background(), []string{"set-ai", "--provider", "openai", "--model", "gpt-4o"})

		assert.NoError(t, err)
		assert.Equal(t, config.Model("gpt-4o"), cfg.ActiveModel())
	})
}

func TestSetLangCommand(t *testing.T) {
	t.Run("persists a supported language", func(t *testing.T) {
		cfg, trans := setupConfig(t)

		cmd := newSetLangCommand(trans, cfg)
		err := cmd.Run(context.Background(), []string{"set-lang", "--lang", "es"})

		assert.NoError(t, err)
		assert.Equal(t, "es", cfg.Language)
	})

	t.Run("rejects an unsupported language", func(t *testing.T) {
		cfg, trans := setupConfig(t)

		cmd := newSetLangCommand(trans, cfg)
		err := cmd.Run(context.Background(), []string{"set-lang", "--lang", "fr"})

		assert.Error(t, err)
		assert.Equal(t, "en", cfg.Language)
	})
}

func TestSetRepoCommand(t *testing.T) {
	cfg, trans := setupConfig(t)

	cmd := newSetRepoCommand(trans, cfg)
	err := cmd.Run(context.Background(), []string{"set-repo", "--owner", "tomas", "--repo", "matelink", "--auto-create"})

	assert.NoError(t, err)
	assert.Equal(t, config.TrackerGitHub, cfg.IssueTracker)
	assert.Equal(t, "tomas", cfg.GithubConfig.Owner)
	assert.Equal(t, "matelink", cfg.GithubConfig.Repo)
	assert.True(t, cfg.AutoCreateIssues)
	assert.True(t, cfg.IncludeIssueInCommit)
}

func TestInitCommand(t *testing.T) {
	cfg, trans := setupConfig(t)

	cmd := newInitCommand(trans, cfg)
	err := cmd.Run(context.Background(), []string{"init"})

	assert.NoError(t, err)
	assert.FileExists(t, filepath.Clean(cfg.PathFile))
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "(not set)", maskSecret(""))
	assert.Equal(t, "****", maskSecret("abcd"))
	assert.Equal(t, "****6789", maskSecret("sk-123456789"))
}
