package ollama

import (
	"context"
	"fmt"
	"strings"

	"resty.dev/v3"

	"github.com/docyard-ai/docyard-server/internal/domain/catalog"
	"github.com/docyard-ai/docyard-server/internal/utils/platformerrors"
)

// Client queries a local Ollama instance for its installed models.
type Client struct {
	client  *resty.Client
	baseURL string
}

type tagsResponse struct {
	Models []tagModel `json:"models"`
}

type tagModel struct {
	Name    string     `json:"name"`
	Model   string     `json:"model"`
	Details tagDetails `json:"details"`
}

type tagDetails struct {
	Family        string `json:"family"`
	ParameterSize string `json:"parameter_size"`
}

func NewClient(client *resty.Client, baseURL string) *Client {
	return &Client{
		client:  client,
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}
}

// ListInstalledModels returns the models the Ollama instance reports via
// /api/tags. Implements catalog.Discoverer.
func (c *Client) ListInstalledModels(ctx context.Context) ([]catalog.DiscoveredModel, error) {
	var respBody tagsResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&respBody).
		Get(c.baseURL + "/api/tags")
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "list installed models")
	}
	if resp.IsError() {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("list installed models failed with status %d", resp.StatusCode()),
			nil,
			"7c1f2a33-8f1d-4c43-9a71-6f2a6a9f4b10",
		)
	}

	models := make([]catalog.DiscoveredModel, 0, len(respBody.Models))
	for _, m := range respBody.Models {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			name = strings.TrimSpace(m.Model)
		}
		models = append(models, catalog.DiscoveredModel{
			ID:          name,
			Description: describe(m.Details),
		})
	}
	return models, nil
}

func describe(d tagDetails) string {
	parts := make([]string, 0, 2)
	if d.Family != "" {
		parts = append(parts, d.Family)
	}
	if d.ParameterSize != "" {
		parts = append(parts, d.ParameterSize)
	}
	return strings.Join(parts, " ")
}
