package catalog

import "strings"

// ModelType tells what a model can be used for in the ingestion pipeline.
type ModelType string

const (
	ModelTypeChat      ModelType = "chat"
	ModelTypeEmbedding ModelType = "embedding"
)

// ProviderKind identifies the source of a model.
type ProviderKind string

const (
	ProviderOllama    ProviderKind = "ollama"
	ProviderOpenAI    ProviderKind = "openai"
	ProviderAnthropic ProviderKind = "anthropic"
	ProviderCustom    ProviderKind = "custom"
)

// DiscoverableProvider is the only provider whose installed models are
// queried at runtime; every other provider is served from the curated
// catalog as-is.
const DiscoverableProvider = ProviderOllama

var vendorKinds = map[string]ProviderKind{
	"ollama":    ProviderOllama,
	"openai":    ProviderOpenAI,
	"anthropic": ProviderAnthropic,
}

// ProviderKindFromVendor maps a free-form vendor string to a known kind,
// falling back to ProviderCustom.
func ProviderKindFromVendor(vendor string) ProviderKind {
	if kind, ok := vendorKinds[strings.ToLower(strings.TrimSpace(vendor))]; ok {
		return kind
	}
	return ProviderCustom
}

// Entry is one model in the catalog. Entries are immutable value records;
// merged catalogs are freshly built per call and owned by the caller.
type Entry struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Provider            ProviderKind `json:"provider"`
	Type                ModelType    `json:"type"`
	Aliases             []string     `json:"aliases,omitempty"`
	DisplayNameOverride bool         `json:"display_name_override,omitempty"`
}

// DiscoveredModel is what a provider reports as installed. Only the
// identifier is required; the description is informational.
type DiscoveredModel struct {
	ID          string
	Description string
}
