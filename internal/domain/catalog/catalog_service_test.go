package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

type fakeDiscoverer struct {
	models []DiscoveredModel
	err    error
	calls  int
}

func (f *fakeDiscoverer) ListInstalledModels(ctx context.Context) ([]DiscoveredModel, error) {
	f.calls++
	return f.models, f.err
}

func TestEffectiveCatalogDiscoveryFailureDegradesToDefaults(t *testing.T) {
	defaults := mergeTestDefaults()
	discoverer := &fakeDiscoverer{err: errors.New("connection refused")}
	service := NewService(defaults, discoverer, zerolog.Nop())

	merged := service.EffectiveCatalog(context.Background())
	if !reflect.DeepEqual(merged, defaults) {
		t.Fatalf("expected defaults on discovery failure, got %+v", merged)
	}
	if discoverer.calls != 1 {
		t.Fatalf("expected one discovery call, got %d", discoverer.calls)
	}
}

func TestEffectiveCatalogClassifiesDiscoveredModels(t *testing.T) {
	defaults := mergeTestDefaults()
	discoverer := &fakeDiscoverer{models: []DiscoveredModel{
		{ID: "snowflake-arctic-embed:110m"},
		{ID: "gemma2:9b"},
		{ID: ""},
	}}
	service := NewService(defaults, discoverer, zerolog.Nop())

	merged := service.EffectiveCatalog(context.Background())

	byID := make(map[string]Entry, len(merged))
	for _, entry := range merged {
		byID[entry.ID] = entry
	}

	embed, ok := byID["snowflake-arctic-embed:110m"]
	if !ok {
		t.Fatal("discovered embedding model missing from merge")
	}
	if embed.Type != ModelTypeEmbedding || embed.Provider != ProviderOllama {
		t.Fatalf("discovered embedding misclassified: %+v", embed)
	}

	chat, ok := byID["gemma2:9b"]
	if !ok {
		t.Fatal("discovered chat model missing from merge")
	}
	if chat.Type != ModelTypeChat || chat.Name != "Gemma" {
		t.Fatalf("discovered chat model misclassified: %+v", chat)
	}
}

func TestEffectiveCatalogBuildsFreshListPerCall(t *testing.T) {
	defaults := mergeTestDefaults()
	discoverer := &fakeDiscoverer{models: []DiscoveredModel{{ID: "gemma2:9b"}}}
	service := NewService(defaults, discoverer, zerolog.Nop())

	first := service.EffectiveCatalog(context.Background())
	second := service.EffectiveCatalog(context.Background())
	if !reflect.DeepEqual(first, second) {
		t.Fatal("effective catalog not deterministic across calls")
	}
	if discoverer.calls != 2 {
		t.Fatalf("expected discovery per call, got %d calls", discoverer.calls)
	}

	first[0].Name = "mutated"
	if second[0].Name == "mutated" {
		t.Fatal("catalog calls share backing storage")
	}
}

func TestFindEntryCuratedDefaultReportedInstalled(t *testing.T) {
	// mistral:latest is a curated default without the override flag, so it
	// leaves the merged list once discovery reports it installed. Looking
	// it up must still succeed.
	defaults := mergeTestDefaults()
	discoverer := &fakeDiscoverer{models: []DiscoveredModel{{ID: "mistral:latest"}}}
	service := NewService(defaults, discoverer, zerolog.Nop())

	entry, found := service.FindEntry(context.Background(), "mistral:latest")
	if !found {
		t.Fatal("installed curated model must be resolvable by id")
	}
	if entry.ID != "mistral:latest" || entry.Name != "Mistral" {
		t.Fatalf("resolved wrong entry: %+v", entry)
	}
}

func TestFindEntryByAlias(t *testing.T) {
	defaults := mergeTestDefaults()
	service := NewService(defaults, &fakeDiscoverer{}, zerolog.Nop())

	entry, found := service.FindEntry(context.Background(), "MISTRAL")
	if !found {
		t.Fatal("expected alias lookup to succeed")
	}
	if entry.ID != "mistral:latest" {
		t.Fatalf("resolved wrong entry: %+v", entry)
	}

	if _, found := service.FindEntry(context.Background(), "nope"); found {
		t.Fatal("expected lookup miss for unknown id")
	}
}
