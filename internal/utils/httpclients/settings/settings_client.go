package settings

import (
	"context"
	"fmt"
	"strings"

	"resty.dev/v3"

	"github.com/docyard-ai/docyard-server/internal/domain/appconfig"
	"github.com/docyard-ai/docyard-server/internal/utils/platformerrors"
)

// Client fetches the shared runtime configuration from the settings
// service. Implements appconfig.Fetcher.
type Client struct {
	client      *resty.Client
	endpointURL string
}

func NewClient(client *resty.Client, endpointURL string) *Client {
	return &Client{
		client:      client,
		endpointURL: strings.TrimSpace(endpointURL),
	}
}

func (c *Client) FetchConfiguration(ctx context.Context) (*appconfig.Configuration, error) {
	var cfg appconfig.Configuration
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&cfg).
		Get(c.endpointURL)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "fetch configuration")
	}
	if resp.IsError() {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("fetch configuration failed with status %d", resp.StatusCode()),
			nil,
			"a8f3b5c1-2d4e-49f7-b7e3-91c0d2a64f58",
		)
	}
	if len(cfg.EmbeddingModels) == 0 && len(cfg.VectorDatabases) == 0 {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			"configuration payload is empty or malformed",
			nil,
			"5e0b9c77-64a2-4f3b-8a05-3f6f3cf4d2c9",
		)
	}
	return &cfg, nil
}
