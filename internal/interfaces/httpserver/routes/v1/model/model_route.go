package model

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/docyard-ai/docyard-server/internal/interfaces/httpserver/handlers/cataloghandler"
	"github.com/docyard-ai/docyard-server/internal/interfaces/httpserver/responses"
	"github.com/docyard-ai/docyard-server/internal/interfaces/httpserver/responses/catalogres"
	"github.com/docyard-ai/docyard-server/internal/utils/platformerrors"
)

const groupByProvider = "provider"

type ModelRoute struct {
	catalogHandler *cataloghandler.CatalogHandler
}

func NewModelRoute(catalogHandler *cataloghandler.CatalogHandler) *ModelRoute {
	return &ModelRoute{catalogHandler: catalogHandler}
}

func (route *ModelRoute) RegisterRouter(router gin.IRouter) {
	modelsRoute := router.Group("models")
	modelsRoute.GET("", route.GetModels)
	modelsRoute.GET("/*model_id", route.GetModelDetails)
}

// GetModels
// @Summary List available models
// @Description Returns the curated catalog reconciled against locally installed models. Filter with ?type=chat|embedding, bucket with ?group=provider.
// @Tags Model Catalog API
// @Produce json
// @Param type query string false "Model type filter" Enums(chat, embedding)
// @Param group query string false "Group results" Enums(provider)
// @Success 200 {object} catalogres.ModelResponseList "List of models"
// @Failure 400 {object} responses.ErrorResponse "Unknown type filter"
// @Router /v1/models [get]
func (route *ModelRoute) GetModels(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	typeFilter := reqCtx.Query("type")
	group := strings.ToLower(strings.TrimSpace(reqCtx.Query("group")))

	if group == groupByProvider {
		grouped, err := route.catalogHandler.GroupedModels(ctx, typeFilter)
		if err != nil {
			responses.HandleError(reqCtx, err, "Failed to retrieve models")
			return
		}
		reqCtx.JSON(http.StatusOK, catalogres.BuildGroupedModelResponseList(grouped))
		return
	}
	if group != "" {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "unknown group parameter", "e5a40c62-95b1-4f3e-8f7d-2b1f6a0d9c44")
		return
	}

	entries, err := route.catalogHandler.ListModels(ctx, typeFilter)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to retrieve models")
		return
	}
	reqCtx.JSON(http.StatusOK, catalogres.BuildModelResponseList(entries))
}

// GetModelDetails
// @Summary Retrieve model details
// @Description Retrieves a single model by id or alias, case-insensitively.
// @Tags Model Catalog API
// @Produce json
// @Param model_id path string true "Model ID or alias"
// @Success 200 {object} catalogres.ModelResponse "Model details"
// @Failure 404 {object} responses.ErrorResponse "Model not found"
// @Router /v1/models/{model_id} [get]
func (route *ModelRoute) GetModelDetails(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	// Wildcard param includes leading slash, so trim it
	modelID := strings.TrimPrefix(reqCtx.Param("model_id"), "/")

	entry, err := route.catalogHandler.GetModel(ctx, modelID)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to retrieve model")
		return
	}
	reqCtx.JSON(http.StatusOK, catalogres.BuildModelResponse(entry))
}
