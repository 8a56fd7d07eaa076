package cataloghandler

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/docyard-ai/docyard-server/internal/domain/catalog"
	"github.com/docyard-ai/docyard-server/internal/utils/platformerrors"
)

// CatalogHandler exposes the effective model catalog to the HTTP layer.
type CatalogHandler struct {
	service *catalog.Service
	logger  zerolog.Logger
}

func NewCatalogHandler(service *catalog.Service, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger,
	}
}

// ListModels returns the merged catalog, optionally narrowed to one model
// type. An unknown type filter is a validation error.
func (h *CatalogHandler) ListModels(ctx context.Context, typeFilter string) ([]catalog.Entry, error) {
	merged := h.service.EffectiveCatalog(ctx)

	typeFilter = strings.ToLower(strings.TrimSpace(typeFilter))
	if typeFilter == "" {
		return merged, nil
	}

	modelType := catalog.ModelType(typeFilter)
	switch modelType {
	case catalog.ModelTypeChat, catalog.ModelTypeEmbedding:
		return catalog.FilterByType(merged, modelType), nil
	default:
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerHandler,
			platformerrors.ErrorTypeValidation,
			fmt.Sprintf("unknown model type %q", typeFilter),
			nil,
			"9b2f41d8-5a7e-4f02-bb3a-0cf1ad3a27e4",
		)
	}
}

// GroupedModels returns the merged catalog bucketed per provider.
func (h *CatalogHandler) GroupedModels(ctx context.Context, typeFilter string) (map[catalog.ProviderKind][]catalog.Entry, error) {
	entries, err := h.ListModels(ctx, typeFilter)
	if err != nil {
		return nil, err
	}
	return catalog.GroupByProvider(entries), nil
}

// GetModel looks one model up by id or alias.
func (h *CatalogHandler) GetModel(ctx context.Context, id string) (catalog.Entry, error) {
	entry, found := h.service.FindEntry(ctx, id)
	if !found {
		return catalog.Entry{}, platformerrors.NewError(
			ctx,
			platformerrors.LayerHandler,
			platformerrors.ErrorTypeNotFound,
			fmt.Sprintf("model %q not found", id),
			nil,
			"31c6e0ce-49d5-4a0b-9ac8-7f5d1e2b8a3c",
		)
	}
	return entry, nil
}
