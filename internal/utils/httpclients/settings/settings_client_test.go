package settings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/docyard-ai/docyard-server/internal/utils/httpclients"
	"github.com/docyard-ai/docyard-server/internal/utils/platformerrors"
)

func TestFetchConfiguration(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"embedding_models": {
				"ollama": [{"id": "bge-m3", "name": "BGE-M3", "dimensions": 1024}]
			},
			"vector_databases": {
				"qdrant": {"name": "Qdrant"}
			},
			"chunk_size": 1024,
			"retrieval_top_k": 8
		}`))
	}))
	defer server.Close()

	client := NewClient(httpclients.NewClient("settings-test"), server.URL)
	cfg, err := client.FetchConfiguration(context.Background())
	if err != nil {
		t.Fatalf("FetchConfiguration returned error: %v", err)
	}
	if cfg.ChunkSize != 1024 || cfg.RetrievalTopK != 8 {
		t.Fatalf("unexpected configuration: %+v", cfg)
	}
	if len(cfg.EmbeddingModels["ollama"]) != 1 || cfg.EmbeddingModels["ollama"][0].Dimensions != 1024 {
		t.Fatalf("embedding models not decoded: %+v", cfg.EmbeddingModels)
	}
}

func TestFetchConfigurationNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(httpclients.NewClient("settings-test"), server.URL)
	if _, err := client.FetchConfiguration(context.Background()); err == nil {
		t.Fatal("expected an error for a non-2xx response")
	}
}

func TestFetchConfigurationEmptyPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(httpclients.NewClient("settings-test"), server.URL)
	_, err := client.FetchConfiguration(context.Background())
	if err == nil {
		t.Fatal("expected an error for an empty payload")
	}
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal) {
		t.Fatalf("expected an external error, got %v", err)
	}
}
