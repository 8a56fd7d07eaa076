package interfaces

import (
	"github.com/google/wire"

	"github.com/docyard-ai/docyard-server/internal/interfaces/httpserver"
)

var InterfacesProvider = wire.NewSet(
	httpserver.NewHttpServer,
)
