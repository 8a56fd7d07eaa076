package model

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/docyard-ai/docyard-server/internal/domain/catalog"
	"github.com/docyard-ai/docyard-server/internal/interfaces/httpserver/handlers/cataloghandler"
	"github.com/docyard-ai/docyard-server/internal/interfaces/httpserver/responses/catalogres"
)

type stubDiscoverer struct {
	models []catalog.DiscoveredModel
	err    error
}

func (s *stubDiscoverer) ListInstalledModels(ctx context.Context) ([]catalog.DiscoveredModel, error) {
	return s.models, s.err
}

func newTestRouter(discoverer catalog.Discoverer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	service := catalog.NewService(catalog.DefaultEntries(), discoverer, zerolog.Nop())
	route := NewModelRoute(cataloghandler.NewCatalogHandler(service, zerolog.Nop()))

	engine := gin.New()
	route.RegisterRouter(engine.Group("/v1"))
	return engine
}

func TestGetModelsServesDefaultsWhenDiscoveryFails(t *testing.T) {
	engine := newTestRouter(&stubDiscoverer{err: errors.New("connection refused")})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/models", nil)
	engine.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	var body catalogres.ModelResponseList
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Object != "list" {
		t.Fatalf("object = %q, want list", body.Object)
	}
	if len(body.Data) != len(catalog.DefaultEntries()) {
		t.Fatalf("expected the full default catalog, got %d entries", len(body.Data))
	}
}

func TestGetModelsTypeFilter(t *testing.T) {
	engine := newTestRouter(&stubDiscoverer{})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/models?type=embedding", nil)
	engine.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	var body catalogres.ModelResponseList
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Data) == 0 {
		t.Fatal("expected embedding entries")
	}
	for _, model := range body.Data {
		if model.Type != string(catalog.ModelTypeEmbedding) {
			t.Fatalf("non-embedding entry leaked through filter: %+v", model)
		}
	}
}

func TestGetModelsUnknownTypeIsBadRequest(t *testing.T) {
	engine := newTestRouter(&stubDiscoverer{})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/models?type=vision", nil)
	engine.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", recorder.Code)
	}
}

func TestGetModelsGroupedByProvider(t *testing.T) {
	engine := newTestRouter(&stubDiscoverer{models: []catalog.DiscoveredModel{{ID: "gemma2:9b"}}})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/models?group=provider", nil)
	engine.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	var body catalogres.GroupedModelResponseList
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Data["openai"]) == 0 {
		t.Fatal("expected hosted models in the openai bucket")
	}
	found := false
	for _, model := range body.Data["ollama"] {
		if model.ID == "gemma2:9b" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the discovered model in the ollama bucket")
	}
}

func TestGetModelDetailsByAlias(t *testing.T) {
	engine := newTestRouter(&stubDiscoverer{})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/models/deepseek-r1", nil)
	engine.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	var body catalogres.ModelResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.ID != "deepseek-r1:14b" {
		t.Fatalf("alias resolved to %q, want deepseek-r1:14b", body.ID)
	}
}

func TestGetModelDetailsNotFound(t *testing.T) {
	engine := newTestRouter(&stubDiscoverer{})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/models/unknown-model", nil)
	engine.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", recorder.Code)
	}
}
