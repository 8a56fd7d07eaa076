package appconfig

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/docyard-ai/docyard-server/internal/infrastructure/metrics"
)

const loadKey = "configuration"

// Fetcher retrieves the shared configuration from the settings service.
type Fetcher interface {
	FetchConfiguration(ctx context.Context) (*Configuration, error)
}

// Cache resolves the shared configuration at most once per process.
// Concurrent callers during the initial resolution collapse onto a single
// outbound fetch and all observe the same value. A failed fetch caches the
// built-in default instead, so the remote endpoint is never retried for the
// remainder of the process lifetime. That permanence is a deliberate
// trade-off: a transient blip at startup pins the defaults until restart.
type Cache struct {
	fetcher Fetcher
	logger  zerolog.Logger

	group singleflight.Group
	mu    sync.RWMutex
	// cached is written exactly once per process, by whichever flight
	// resolves first; every later Load reads it without touching the
	// network.
	cached *Configuration
}

func NewCache(fetcher Fetcher, logger zerolog.Logger) *Cache {
	return &Cache{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Load returns the shared configuration. It never fails: a fetch error
// degrades to the built-in default. Safe for concurrent use.
func (c *Cache) Load(ctx context.Context) *Configuration {
	c.mu.RLock()
	cached := c.cached
	c.mu.RUnlock()
	if cached != nil {
		return cached
	}

	result, _, _ := c.group.Do(loadKey, func() (any, error) {
		// Another flight may have resolved between the fast-path check
		// and joining the group.
		c.mu.RLock()
		cached := c.cached
		c.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		cfg := c.fetch(ctx)
		c.mu.Lock()
		c.cached = cfg
		c.mu.Unlock()
		return cfg, nil
	})
	return result.(*Configuration)
}

func (c *Cache) fetch(ctx context.Context) *Configuration {
	cfg, err := c.fetcher.FetchConfiguration(ctx)
	if err == nil && cfg != nil {
		metrics.RecordConfigFetch("success")
		c.logger.Info().Msg("resolved shared configuration from settings service")
		return cfg
	}

	metrics.RecordConfigFetch("fallback")
	c.logger.Warn().Err(err).Msg("configuration fetch failed, caching built-in defaults")
	return DefaultConfiguration()
}
