package catalog

import "testing"

func aliasTestDefaults() []Entry {
	return []Entry{
		{
			ID:                  "deepseek-r1:14b",
			Name:                "DeepSeek R1",
			Provider:            ProviderOllama,
			Type:                ModelTypeChat,
			Aliases:             []string{"deepseek-r1"},
			DisplayNameOverride: true,
		},
		{
			ID:       "mistral:latest",
			Name:     "Mistral",
			Provider: ProviderOllama,
			Type:     ModelTypeChat,
			Aliases:  []string{"mistral"},
		},
		{
			ID:       "bge-m3",
			Name:     "BGE-M3",
			Provider: ProviderOllama,
			Type:     ModelTypeEmbedding,
		},
	}
}

func TestResolveByExactID(t *testing.T) {
	entry, ok := Resolve("deepseek-r1:14b", aliasTestDefaults())
	if !ok {
		t.Fatal("expected a match by exact id")
	}
	if entry.Name != "DeepSeek R1" {
		t.Fatalf("resolved wrong entry: %+v", entry)
	}
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	entry, ok := Resolve("DeepSeek-R1:14B", aliasTestDefaults())
	if !ok {
		t.Fatal("expected case-insensitive id match")
	}
	if entry.ID != "deepseek-r1:14b" {
		t.Fatalf("resolved wrong entry: %+v", entry)
	}
}

func TestResolveByAlias(t *testing.T) {
	entry, ok := Resolve("mistral", aliasTestDefaults())
	if !ok {
		t.Fatal("expected a match by alias")
	}
	if entry.ID != "mistral:latest" {
		t.Fatalf("resolved wrong entry: %+v", entry)
	}
}

func TestResolveByVersionStrippedAlias(t *testing.T) {
	// "deepseek-r1:7b" is not a default id, but its base form matches the
	// alias on the 14b entry.
	entry, ok := Resolve("deepseek-r1:7b", aliasTestDefaults())
	if !ok {
		t.Fatal("expected a match via version-stripped alias")
	}
	if entry.ID != "deepseek-r1:14b" {
		t.Fatalf("resolved wrong entry: %+v", entry)
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	defaults := []Entry{
		{ID: "first", Aliases: []string{"shared"}},
		{ID: "second", Aliases: []string{"shared"}},
	}
	entry, ok := Resolve("shared", defaults)
	if !ok {
		t.Fatal("expected a match")
	}
	if entry.ID != "first" {
		t.Fatalf("expected first default to win, got %q", entry.ID)
	}
}

func TestResolveMiss(t *testing.T) {
	if _, ok := Resolve("totally-unknown:3b", aliasTestDefaults()); ok {
		t.Fatal("expected no match for unknown id")
	}
	if _, ok := Resolve("", aliasTestDefaults()); ok {
		t.Fatal("expected no match for empty id")
	}
}
