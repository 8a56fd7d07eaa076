package catalog

// DefaultEntries is the curated catalog shipped with the server. It is the
// baseline every merge starts from; local discovery can add to it or mark
// curated ollama entries as installed, but hosted entries stay as-is.
func DefaultEntries() []Entry {
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
			ID:                  "llama3.1:8b",
			Name:                "Llama 3.1",
			Provider:            ProviderOllama,
			Type:                ModelTypeChat,
			Aliases:             []string{"llama3.1"},
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
			ID:       "qwen2.5:14b",
			Name:     "Qwen 2.5",
			Provider: ProviderOllama,
			Type:     ModelTypeChat,
			Aliases:  []string{"qwen2.5"},
		},
		{
			ID:       "bge-m3",
			Name:     "BGE-M3",
			Provider: ProviderOllama,
			Type:     ModelTypeEmbedding,
		},
		{
			ID:       "nomic-embed-text",
			Name:     "Nomic Embed Text",
			Provider: ProviderOllama,
			Type:     ModelTypeEmbedding,
		},
		{
			ID:       "gpt-4o",
			Name:     "GPT-4o",
			Provider: ProviderOpenAI,
			Type:     ModelTypeChat,
		},
		{
			ID:       "gpt-4o-mini",
			Name:     "GPT-4o mini",
			Provider: ProviderOpenAI,
			Type:     ModelTypeChat,
		},
		{
			ID:       "text-embedding-3-small",
			Name:     "Text Embedding 3 Small",
			Provider: ProviderOpenAI,
			Type:     ModelTypeEmbedding,
		},
		{
			ID:       "claude-sonnet-4-20250514",
			Name:     "Claude Sonnet 4",
			Provider: ProviderAnthropic,
			Type:     ModelTypeChat,
		},
	}
}
