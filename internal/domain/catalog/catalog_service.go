package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/docyard-ai/docyard-server/internal/infrastructure/metrics"
)

// Discoverer reports the models currently installed in the discoverable
// provider. Implementations may fail; the service treats any failure the
// same as an empty result.
type Discoverer interface {
	ListInstalledModels(ctx context.Context) ([]DiscoveredModel, error)
}

// Service builds the effective model catalog: curated defaults reconciled
// against whatever the local provider reports as installed.
type Service struct {
	defaults   []Entry
	discoverer Discoverer
	logger     zerolog.Logger
}

func NewService(defaults []Entry, discoverer Discoverer, logger zerolog.Logger) *Service {
	return &Service{
		defaults:   defaults,
		discoverer: discoverer,
		logger:     logger,
	}
}

// Defaults returns a copy of the curated catalog.
func (s *Service) Defaults() []Entry {
	defaults := make([]Entry, len(s.defaults))
	copy(defaults, s.defaults)
	return defaults
}

// EffectiveCatalog returns a freshly merged catalog. Discovery failures
// never surface to the caller; they degrade to the curated defaults.
func (s *Service) EffectiveCatalog(ctx context.Context) []Entry {
	return Merge(s.defaults, s.discover(ctx))
}

// FindEntry looks up a model in the effective catalog by id or alias,
// case-insensitively.
func (s *Service) FindEntry(ctx context.Context, id string) (Entry, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Entry{}, false
	}
	merged := s.EffectiveCatalog(ctx)
	for _, entry := range merged {
		if strings.EqualFold(entry.ID, id) {
			return entry, true
		}
	}
	if entry, ok := Resolve(id, merged); ok {
		return entry, true
	}
	// A curated entry without the override flag drops out of the merged
	// list once discovery reports it installed; lookups by its id or alias
	// must still succeed.
	return Resolve(id, s.defaults)
}

// discover queries the provider and classifies what it reports. A transport
// failure or empty response both yield an empty list, which makes Merge
// return the defaults unchanged.
func (s *Service) discover(ctx context.Context) []Entry {
	if s.discoverer == nil {
		return nil
	}

	start := time.Now()
	installed, err := s.discoverer.ListInstalledModels(ctx)
	metrics.RecordDiscovery(string(DiscoverableProvider), time.Since(start).Seconds(), len(installed), err == nil)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("provider", string(DiscoverableProvider)).
			Msg("model discovery failed, serving curated defaults")
		return nil
	}

	entries := make([]Entry, 0, len(installed))
	for _, model := range installed {
		id := strings.TrimSpace(model.ID)
		if id == "" {
			s.logger.Debug().Str("description", model.Description).Msg("skipping discovered model without id")
			continue
		}
		classification := Classify(id)
		entries = append(entries, Entry{
			ID:       id,
			Name:     classification.DisplayName,
			Provider: DiscoverableProvider,
			Type:     classification.Type,
		})
	}
	return entries
}
