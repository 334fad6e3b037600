package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	TrackerGitHub = "github"
	TrackerNone   = "none"
)

type (
	Config struct {
		Language string `json:"language"`
		PathFile string `json:"path_file"`

		AIConfig    AIConfig                    `json:"ai_config"`
		AIProviders map[string]AIProviderConfig `json:"ai_providers"`

		// IssueTracker selecciona el tracker activo: "github" o "none".
		IssueTracker         string       `json:"issue_tracker"`
		GithubConfig         GithubConfig `json:"github_config"`
		AutoCreateIssues     bool         `json:"auto_create_issues"`
		IncludeIssueInCommit bool         `json:"include_issue_in_commit"`
		DefaultLabels        []string     `json:"default_labels,omitempty"`
	}

	AIConfig struct {
		ActiveAI AI           `json:"active_ai"`
		Models   map[AI]Model `json:"models,omitempty"`
	}

	AIProviderConfig struct {
		APIKey string `json:"api_key,omitempty"`
	}

	GithubConfig struct {
		Owner string `json:"owner,omitempty"`
		Repo  string `json:"repo,omitempty"`
		// Token es el fallback estático; la sesión del gh CLI tiene
		// prioridad al resolver credenciales.
		Token string `json:"token,omitempty"`
	}
)

const (
	defaultLang    = "en"
	configDirName  = ".matelink"
	configFileName = "config.json"
)

func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, configDirName)
		configPath = filepath.Join(configDir, configFileName)

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error al decodificar el archivo JSON: %w", err)
	}

	config.PathFile = configPath
	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("la configuración cargada no es válida: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language: defaultLang,
		PathFile: path,

		AIConfig: AIConfig{
			ActiveAI: AIGemini,
			Models: map[AI]Model{
				AIGemini: DefaultModelForAI(AIGemini),
			},
		},
		AIProviders: map[string]AIProviderConfig{},

		IssueTracker:         TrackerGitHub,
		AutoCreateIssues:     false,
		IncludeIssueInCommit: true,
		DefaultLabels:        []string{},
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error al codificar la configuración por defecto: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error al guardar la configuración por defecto: %w", err)
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("la configuración a guardar no es válida: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("la ruta del archivo de configuración no está definida")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error al codificar la configuración: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error al guardar la configuración: %w", err)
	}

	return nil
}

func applyDefaults(config *Config) {
	if config.Language == "" {
		config.Language = defaultLang
	}
	if config.AIProviders == nil {
		config.AIProviders = map[string]AIProviderConfig{}
	}
	if config.AIConfig.Models == nil {
		config.AIConfig.Models = map[AI]Model{}
	}
	if config.IssueTracker == "" {
		config.IssueTracker = TrackerNone
	}
}

// ActiveModel returns the configured model for the active provider, falling
// back to the provider default.
func (c *Config) ActiveModel() Model {
	if m, ok := c.AIConfig.Models[c.AIConfig.ActiveAI]; ok && m != "" {
		return m
	}
	return DefaultModelForAI(c.AIConfig.ActiveAI)
}

// ActiveAPIKey returns the API key configured for the active provider.
func (c *Config) ActiveAPIKey() string {
	if p, ok := c.AIProviders[string(c.AIConfig.ActiveAI)]; ok {
		return p.APIKey
	}
	return ""
}

// TrackerEnabled reports whether issue tracker integration is on.
func (c *Config) TrackerEnabled() bool {
	return c.IssueTracker != "" && c.IssueTracker != TrackerNone
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.New("language no puede estar vacío")
	}

	if config.AIConfig.ActiveAI != "" && !IsSupportedAI(string(config.AIConfig.ActiveAI)) {
		return fmt.Errorf("proveedor de IA no soportado: %s", config.AIConfig.ActiveAI)
	}

	switch config.IssueTracker {
	case "", TrackerNone, TrackerGitHub:
	default:
		return fmt.Errorf("tracker de issues no soportado: %s", config.IssueTracker)
	}

	return nil
}
