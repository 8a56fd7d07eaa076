package infrastructure

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/docyard-ai/docyard-server/internal/config"
	"github.com/docyard-ai/docyard-server/internal/domain/appconfig"
	"github.com/docyard-ai/docyard-server/internal/domain/catalog"
	"github.com/docyard-ai/docyard-server/internal/infrastructure/logger"
	"github.com/docyard-ai/docyard-server/internal/utils/httpclients"
	"github.com/docyard-ai/docyard-server/internal/utils/httpclients/ollama"
	"github.com/docyard-ai/docyard-server/internal/utils/httpclients/settings"
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideOllamaClient wires the model discovery client against the local
// Ollama instance.
func ProvideOllamaClient(cfg *config.Config) *ollama.Client {
	client := httpclients.NewClient("ollama")
	client.SetTimeout(cfg.HTTPTimeout)
	return ollama.NewClient(client, cfg.OllamaBaseURL)
}

// ProvideSettingsClient wires the shared configuration fetcher.
func ProvideSettingsClient(cfg *config.Config) *settings.Client {
	client := httpclients.NewClient("settings")
	client.SetTimeout(cfg.HTTPTimeout)
	return settings.NewClient(client, cfg.SettingsServiceURL)
}

// Infrastructure holds all infrastructure dependencies
type Infrastructure struct {
	Logger zerolog.Logger
}

// NewInfrastructure creates a new infrastructure instance
func NewInfrastructure(logger zerolog.Logger) *Infrastructure {
	return &Infrastructure{
		Logger: logger,
	}
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Logger
	logger.GetLogger,

	// Outbound clients
	ProvideOllamaClient,
	ProvideSettingsClient,
	wire.Bind(new(catalog.Discoverer), new(*ollama.Client)),
	wire.Bind(new(appconfig.Fetcher), new(*settings.Client)),

	// Infrastructure struct
	NewInfrastructure,
)
