package confighandler

import (
	"context"

	"github.com/docyard-ai/docyard-server/internal/domain/appconfig"
)

// ConfigHandler serves the shared runtime configuration.
type ConfigHandler struct {
	cache *appconfig.Cache
}

func NewConfigHandler(cache *appconfig.Cache) *ConfigHandler {
	return &ConfigHandler{cache: cache}
}

// GetConfiguration never fails; failures degrade to the built-in defaults
// inside the cache.
func (h *ConfigHandler) GetConfiguration(ctx context.Context) *appconfig.Configuration {
	return h.cache.Load(ctx)
}
