package catalog

import "strings"

// Classification is the result of classifying a bare model identifier.
type Classification struct {
	Type        ModelType
	DisplayName string
}

// embeddingMarkers are substrings that identify embedding-only models.
// Extending support for a new embedding family means adding a marker here;
// merge logic never needs to change.
var embeddingMarkers = []string{
	"embed",
	"bge-",
	"bge_",
	"e5-",
	"gte-",
	"minilm",
	"all-mpnet",
	"paraphrase-",
	"sentence-transformer",
}

// reasoningFamilies maps a marker substring to the friendly label for a
// reasoning model family. Checked before chat families so that e.g.
// "deepseek-r1:14b" is labelled as the reasoning variant.
var reasoningFamilies = []familyLabel{
	{marker: "deepseek-r1", label: "DeepSeek R1"},
	{marker: "qwq", label: "QwQ"},
	{marker: "marco-o1", label: "Marco-o1"},
	{marker: "openthinker", label: "OpenThinker"},
}

var chatFamilies = []familyLabel{
	{marker: "codellama", label: "CodeLlama"},
	{marker: "llama", label: "Llama"},
	{marker: "mistral", label: "Mistral"},
	{marker: "mixtral", label: "Mixtral"},
	{marker: "qwen", label: "Qwen"},
	{marker: "gemma", label: "Gemma"},
	{marker: "phi", label: "Phi"},
	{marker: "deepseek", label: "DeepSeek"},
	{marker: "command-r", label: "Command R"},
	{marker: "smollm", label: "SmolLM"},
}

type familyLabel struct {
	marker string
	label  string
}

// Classify decides whether a raw model identifier denotes an embedding or a
// chat model and derives a display name for it. Pure and deterministic.
func Classify(rawID string) Classification {
	lower := strings.ToLower(strings.TrimSpace(rawID))

	modelType := ModelTypeChat
	for _, marker := range embeddingMarkers {
		if strings.Contains(lower, marker) {
			modelType = ModelTypeEmbedding
			break
		}
	}

	return Classification{
		Type:        modelType,
		DisplayName: displayName(lower),
	}
}

func displayName(lowerID string) string {
	for _, family := range reasoningFamilies {
		if strings.Contains(lowerID, family.marker) {
			return family.label
		}
	}
	for _, family := range chatFamilies {
		if strings.Contains(lowerID, family.marker) {
			return family.label
		}
	}
	return genericDisplayName(lowerID)
}

// genericDisplayName strips a trailing :tag suffix (ollama style, e.g.
// "somemodel:7b-q4") and capitalizes the first letter of what remains.
func genericDisplayName(lowerID string) string {
	base := StripVersionTag(lowerID)
	if base == "" {
		return base
	}
	return strings.ToUpper(base[:1]) + base[1:]
}

// StripVersionTag removes the trailing ":"-delimited version or quantization
// tag from a model identifier. Identifiers without a tag pass through.
func StripVersionTag(id string) string {
	if idx := strings.Index(id, ":"); idx >= 0 {
		return id[:idx]
	}
	return id
}
