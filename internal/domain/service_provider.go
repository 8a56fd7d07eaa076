package domain

import (
	"github.com/google/wire"

	"github.com/docyard-ai/docyard-server/internal/config"
	"github.com/docyard-ai/docyard-server/internal/domain/appconfig"
	"github.com/docyard-ai/docyard-server/internal/domain/catalog"
)

// ProvideCatalogDefaults returns the curated catalog: the yaml bootstrap
// set when enabled, the built-in defaults otherwise.
func ProvideCatalogDefaults(cfg *config.Config) []catalog.Entry {
	if cfg.CatalogBootstrap != nil {
		if entries := cfg.CatalogBootstrap.EntriesForSet(cfg.CatalogConfigSet); len(entries) > 0 {
			return entries
		}
	}
	return catalog.DefaultEntries()
}

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	ProvideCatalogDefaults,
	catalog.NewService,
	appconfig.NewCache,
)
