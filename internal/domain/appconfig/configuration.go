package appconfig

// EmbeddingModel describes one embedding model offered by a provider.
type EmbeddingModel struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Dimensions int    `json:"dimensions"`
}

// VectorDatabase describes one supported vector store backend.
type VectorDatabase struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Configuration is the shared runtime configuration the UI resolves once
// per session: which embedding models each provider offers, which vector
// stores are available, and the ingestion defaults.
type Configuration struct {
	EmbeddingModels map[string][]EmbeddingModel `json:"embedding_models"`
	VectorDatabases map[string]VectorDatabase   `json:"vector_databases"`
	ChunkSize       int                         `json:"chunk_size"`
	ChunkOverlap    int                         `json:"chunk_overlap"`
	RetrievalTopK   int                         `json:"retrieval_top_k"`
	GenerationModel string                      `json:"generation_model"`
}

// DefaultConfiguration is the hard-coded fallback served when the settings
// service cannot be reached. It must stay self-consistent with the curated
// model catalog.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		EmbeddingModels: map[string][]EmbeddingModel{
			"ollama": {
				{ID: "bge-m3", Name: "BGE-M3", Dimensions: 1024},
				{ID: "nomic-embed-text", Name: "Nomic Embed Text", Dimensions: 768},
			},
			"openai": {
				{ID: "text-embedding-3-small", Name: "Text Embedding 3 Small", Dimensions: 1536},
			},
		},
		VectorDatabases: map[string]VectorDatabase{
			"qdrant": {Name: "Qdrant", Description: "Local or remote Qdrant instance"},
			"pgvector": {
				Name:        "pgvector",
				Description: "PostgreSQL with the pgvector extension",
			},
		},
		ChunkSize:       512,
		ChunkOverlap:    64,
		RetrievalTopK:   5,
		GenerationModel: "deepseek-r1:14b",
	}
}
