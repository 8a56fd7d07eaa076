package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/docyard-ai/docyard-server/internal/domain/catalog"
	"github.com/docyard-ai/docyard-server/internal/infrastructure/logger"
)

const DefaultCatalogConfigFile = "config/catalog.yml"

// CatalogBootstrapConfig maintains the curated catalog sets loaded from yaml.
type CatalogBootstrapConfig struct {
	sets map[string][]catalog.Entry
}

// EntriesForSet returns a copy of the entries defined for the requested set.
func (c *CatalogBootstrapConfig) EntriesForSet(name string) []catalog.Entry {
	if c == nil {
		return nil
	}
	set := strings.TrimSpace(name)
	if set == "" {
		set = "default"
	}
	list := c.sets[set]
	if len(list) == 0 {
		return nil
	}
	result := make([]catalog.Entry, len(list))
	copy(result, list)
	return result
}

// LoadCatalogBootstrapConfig parses the yaml file at the provided path.
func LoadCatalogBootstrapConfig(path string) (*CatalogBootstrapConfig, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("catalog config path is empty")
	}

	log := logger.GetLogger()
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("read catalog config %q: %w", cleanPath, err)
	}
	log.Info().Str("path", cleanPath).Msg("loading catalog config file")

	var doc catalogConfigDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog config %q: %w", cleanPath, err)
	}

	if len(doc.Catalogs) == 0 {
		return nil, fmt.Errorf("catalog config %q has no catalogs defined", cleanPath)
	}

	result := &CatalogBootstrapConfig{
		sets: make(map[string][]catalog.Entry),
	}

	for rawSet, entries := range doc.Catalogs {
		setName := strings.TrimSpace(rawSet)
		if setName == "" || len(entries) == 0 {
			continue
		}
		for idx, entry := range entries {
			entryLogger := log.With().Str("set", setName).Int("index", idx).Str("id", entry.ID).Logger()
			enabled, err := parseEnabled(entry.EnableRaw)
			if err != nil {
				return nil, fmt.Errorf("catalogs.%s[%d]: %w", setName, idx, err)
			}
			if !enabled {
				entryLogger.Info().Msg("skipping catalog entry (enable=false)")
				continue
			}
			normalized, err := normalizeCatalogEntry(entry)
			if err != nil {
				return nil, fmt.Errorf("catalogs.%s[%d]: %w", setName, idx, err)
			}
			entryLogger.Info().
				Str("provider", string(normalized.Provider)).
				Str("type", string(normalized.Type)).
				Bool("display_name_override", normalized.DisplayNameOverride).
				Msg("including catalog entry")
			result.sets[setName] = append(result.sets[setName], normalized)
		}
	}

	if len(result.sets) == 0 {
		return nil, fmt.Errorf("catalog config %q has no valid entries", cleanPath)
	}

	return result, nil
}

type catalogConfigDocument struct {
	Catalogs map[string][]catalogConfigEntry `yaml:"catalogs"`
}

type catalogConfigEntry struct {
	EnableRaw           string   `yaml:"enable"`
	ID                  string   `yaml:"id"`
	Name                string   `yaml:"name"`
	Provider            string   `yaml:"provider"`
	Vendor              string   `yaml:"vendor"`
	Type                string   `yaml:"type"`
	Aliases             []string `yaml:"aliases"`
	DisplayNameOverride *bool    `yaml:"display_name_override"`
}

func normalizeCatalogEntry(entry catalogConfigEntry) (catalog.Entry, error) {
	id := strings.TrimSpace(os.ExpandEnv(entry.ID))
	if id == "" {
		return catalog.Entry{}, errors.New("entry id is required")
	}

	vendor := firstNonEmpty(entry.Provider, entry.Vendor)
	if strings.TrimSpace(vendor) == "" {
		return catalog.Entry{}, errors.New("entry provider is required")
	}
	provider := catalog.ProviderKindFromVendor(vendor)

	modelType := catalog.ModelType(strings.ToLower(strings.TrimSpace(entry.Type)))
	switch modelType {
	case catalog.ModelTypeChat, catalog.ModelTypeEmbedding:
	case "":
		modelType = catalog.Classify(id).Type
	default:
		return catalog.Entry{}, fmt.Errorf("unknown entry type %q", entry.Type)
	}

	name := strings.TrimSpace(os.ExpandEnv(entry.Name))
	if name == "" {
		name = catalog.Classify(id).DisplayName
	}

	aliases := make([]string, 0, len(entry.Aliases))
	for _, alias := range entry.Aliases {
		alias = strings.TrimSpace(alias)
		if alias != "" {
			aliases = append(aliases, alias)
		}
	}
	if len(aliases) == 0 {
		aliases = nil
	}

	override := false
	if entry.DisplayNameOverride != nil {
		override = *entry.DisplayNameOverride
	}

	return catalog.Entry{
		ID:                  id,
		Name:                name,
		Provider:            provider,
		Type:                modelType,
		Aliases:             aliases,
		DisplayNameOverride: override,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func parseEnabled(raw string) (bool, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return true, nil
	}

	resolved := strings.TrimSpace(expandWithDefault(value))
	if resolved == "" {
		return true, nil
	}

	parsed, err := strconv.ParseBool(resolved)
	if err != nil {
		return false, fmt.Errorf("enable: %w", err)
	}
	return parsed, nil
}

// expandWithDefault expands ${VAR} and ${VAR:-default} syntax using os envs.
func expandWithDefault(raw string) string {
	if !strings.Contains(raw, "${") {
		return os.ExpandEnv(raw)
	}
	start := strings.Index(raw, "${")
	end := strings.Index(raw[start:], "}")
	if start == -1 || end == -1 {
		return os.ExpandEnv(raw)
	}
	end = start + end
	expr := raw[start+2 : end]
	defaultVal := ""
	varName := expr
	if strings.Contains(expr, ":-") {
		parts := strings.SplitN(expr, ":-", 2)
		varName = parts[0]
		defaultVal = parts[1]
	}
	val := os.Getenv(varName)
	if val == "" {
		val = defaultVal
	}
	resolved := raw[:start] + val + raw[end+1:]
	return os.ExpandEnv(resolved)
}
