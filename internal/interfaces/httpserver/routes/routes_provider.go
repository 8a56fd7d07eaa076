package routes

import (
	"github.com/google/wire"

	"github.com/docyard-ai/docyard-server/internal/interfaces/httpserver/handlers/cataloghandler"
	"github.com/docyard-ai/docyard-server/internal/interfaces/httpserver/handlers/confighandler"
	v1 "github.com/docyard-ai/docyard-server/internal/interfaces/httpserver/routes/v1"
	"github.com/docyard-ai/docyard-server/internal/interfaces/httpserver/routes/v1/configroute"
	"github.com/docyard-ai/docyard-server/internal/interfaces/httpserver/routes/v1/model"
)

var RouteProvider = wire.NewSet(
	// Handlers
	cataloghandler.NewCatalogHandler,
	confighandler.NewConfigHandler,

	// Routes
	v1.NewV1Route,
	model.NewModelRoute,
	configroute.NewConfigRoute,
)
