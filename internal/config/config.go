package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Global singleton for packages that cannot take injected config
var globalConfig *Config

// Config holds all environment backed configuration for catalog-api.
type Config struct {
	// HTTP Server
	HTTPPort    int `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort int `env:"METRICS_PORT" envDefault:"9091"`

	// Collaborators
	SettingsServiceURL string `env:"SETTINGS_SERVICE_URL" envDefault:"http://settings-api:8090/v1/settings"`
	OllamaBaseURL      string `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`

	// Curated catalog bootstrap
	CatalogConfigsEnabled bool                    `env:"DOCYARD_CATALOG_CONFIGS" envDefault:"false"`
	CatalogConfigSet      string                  `env:"DOCYARD_CATALOG_CONFIG_SET" envDefault:"default"`
	CatalogConfigFile     string                  `env:"DOCYARD_CATALOG_CONFIGS_FILE"`
	CatalogBootstrap      *CatalogBootstrapConfig `env:"-"`

	// Observability / Logging
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	OTLPEndpoint     string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName      string        `env:"SERVICE_NAME" envDefault:"catalog-api"`
	ServiceNamespace string        `env:"SERVICE_NAMESPACE" envDefault:"docyard"`
	Environment      string        `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string        `env:"LOG_FORMAT" envDefault:"console"`

	// Internal
	EnvReloadedAt time.Time
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.CatalogConfigSet = strings.TrimSpace(cfg.CatalogConfigSet)
	if cfg.CatalogConfigSet == "" {
		cfg.CatalogConfigSet = "default"
	}

	if cfg.CatalogConfigsEnabled {
		configFile := strings.TrimSpace(cfg.CatalogConfigFile)
		if configFile == "" {
			configFile = DefaultCatalogConfigFile
		}
		bootstrap, err := LoadCatalogBootstrapConfig(configFile)
		if err != nil {
			return nil, fmt.Errorf("load catalog configs: %w", err)
		}
		cfg.CatalogBootstrap = bootstrap
		if len(bootstrap.EntriesForSet(cfg.CatalogConfigSet)) == 0 {
			return nil, fmt.Errorf("catalog config set %q is missing or empty in %s", cfg.CatalogConfigSet, configFile)
		}
	}

	if _, err := url.ParseRequestURI(cfg.SettingsServiceURL); err != nil {
		return nil, fmt.Errorf("invalid SETTINGS_SERVICE_URL: %w", err)
	}
	if _, err := url.ParseRequestURI(cfg.OllamaBaseURL); err != nil {
		return nil, fmt.Errorf("invalid OLLAMA_BASE_URL: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.EnvReloadedAt = time.Now()

	globalConfig = cfg

	return cfg, nil
}

// GetGlobal returns the global config instance.
// Deprecated: Use dependency injection with Load() instead.
func GetGlobal() *Config {
	return globalConfig
}

// GetEnvReloadedAt returns when the environment was last reloaded
func GetEnvReloadedAt() time.Time {
	if globalConfig != nil {
		return globalConfig.EnvReloadedAt
	}
	return time.Time{}
}

var Version = "dev"

func IsDev() bool {
	return strings.HasPrefix(Version, "dev")
}
