package catalogres

import (
	"github.com/docyard-ai/docyard-server/internal/domain/catalog"
)

// ModelResponse is the public shape of one catalog entry.
type ModelResponse struct {
	ID          string   `json:"id"`
	Object      string   `json:"object"`
	DisplayName string   `json:"display_name"`
	Provider    string   `json:"provider"`
	Type        string   `json:"type"`
	Aliases     []string `json:"aliases,omitempty"`
}

// ModelResponseList wraps a model list in the standard list envelope.
type ModelResponseList struct {
	Object string          `json:"object"`
	Data   []ModelResponse `json:"data"`
}

// GroupedModelResponseList buckets models per provider.
type GroupedModelResponseList struct {
	Object string                     `json:"object"`
	Data   map[string][]ModelResponse `json:"data"`
}

// BuildModelResponse maps a catalog entry to its response shape.
func BuildModelResponse(entry catalog.Entry) ModelResponse {
	return ModelResponse{
		ID:          entry.ID,
		Object:      "model",
		DisplayName: entry.Name,
		Provider:    string(entry.Provider),
		Type:        string(entry.Type),
		Aliases:     entry.Aliases,
	}
}

// BuildModelResponseList maps catalog entries preserving order.
func BuildModelResponseList(entries []catalog.Entry) ModelResponseList {
	data := make([]ModelResponse, 0, len(entries))
	for _, entry := range entries {
		data = append(data, BuildModelResponse(entry))
	}
	return ModelResponseList{
		Object: "list",
		Data:   data,
	}
}

// BuildGroupedModelResponseList maps per-provider buckets preserving the
// first-seen order within each bucket.
func BuildGroupedModelResponseList(grouped map[catalog.ProviderKind][]catalog.Entry) GroupedModelResponseList {
	data := make(map[string][]ModelResponse, len(grouped))
	for provider, entries := range grouped {
		bucket := make([]ModelResponse, 0, len(entries))
		for _, entry := range entries {
			bucket = append(bucket, BuildModelResponse(entry))
		}
		data[string(provider)] = bucket
	}
	return GroupedModelResponseList{
		Object: "list",
		Data:   data,
	}
}
