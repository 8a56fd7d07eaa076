package ollama

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/docyard-ai/docyard-server/internal/utils/httpclients"
	"github.com/docyard-ai/docyard-server/internal/utils/platformerrors"
)

func TestListInstalledModels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"models": [
				{"name": "deepseek-r1:14b", "details": {"family": "qwen2", "parameter_size": "14.8B"}},
				{"name": "bge-m3", "details": {"family": "bert"}}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(httpclients.NewClient("ollama-test"), server.URL)
	models, err := client.ListInstalledModels(context.Background())
	if err != nil {
		t.Fatalf("ListInstalledModels returned error: %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("expected 2 models, got %d", len(models))
	}
	if models[0].ID != "deepseek-r1:14b" {
		t.Errorf("models[0].ID = %q", models[0].ID)
	}
	if models[0].Description != "qwen2 14.8B" {
		t.Errorf("models[0].Description = %q", models[0].Description)
	}
	if models[1].Description != "bert" {
		t.Errorf("models[1].Description = %q", models[1].Description)
	}
}

func TestListInstalledModelsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(httpclients.NewClient("ollama-test"), server.URL)
	_, err := client.ListInstalledModels(context.Background())
	if err == nil {
		t.Fatal("expected an error for a 500 response")
	}
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal) {
		t.Fatalf("expected an external error, got %v", err)
	}
}

func TestListInstalledModelsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"models": []}`))
	}))
	defer server.Close()

	client := NewClient(httpclients.NewClient("ollama-test"), server.URL)
	models, err := client.ListInstalledModels(context.Background())
	if err != nil {
		t.Fatalf("ListInstalledModels returned error: %v", err)
	}
	if len(models) != 0 {
		t.Fatalf("expected no models, got %d", len(models))
	}
}
