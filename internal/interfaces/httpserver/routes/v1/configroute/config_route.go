package configroute

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docyard-ai/docyard-server/internal/interfaces/httpserver/handlers/confighandler"
)

type ConfigRoute struct {
	configHandler *confighandler.ConfigHandler
}

func NewConfigRoute(configHandler *confighandler.ConfigHandler) *ConfigRoute {
	return &ConfigRoute{configHandler: configHandler}
}

func (route *ConfigRoute) RegisterRouter(router gin.IRouter) {
	router.GET("/config", route.GetConfiguration)
}

// GetConfiguration
// @Summary Get shared runtime configuration
// @Description Returns the shared configuration resolved once per process; falls back to built-in defaults when the settings service is unreachable.
// @Tags Configuration API
// @Produce json
// @Success 200 {object} appconfig.Configuration "Shared configuration"
// @Router /v1/config [get]
func (route *ConfigRoute) GetConfiguration(reqCtx *gin.Context) {
	cfg := route.configHandler.GetConfiguration(reqCtx.Request.Context())
	reqCtx.JSON(http.StatusOK, cfg)
}
