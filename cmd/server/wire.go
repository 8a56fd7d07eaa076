//go:build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/docyard-ai/docyard-server/internal/domain"
	"github.com/docyard-ai/docyard-server/internal/infrastructure"
	"github.com/docyard-ai/docyard-server/internal/interfaces"
	"github.com/docyard-ai/docyard-server/internal/interfaces/httpserver/routes"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		domain.ServiceProvider,
		infrastructure.InfrastructureProvider,
		routes.RouteProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
