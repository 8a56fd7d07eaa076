package catalog

import "strings"

// Resolve determines whether a discovered identifier should be treated as
// one of the curated default entries instead of a brand-new model.
//
// A candidate matches a default entry when its identifier equals the
// entry's id case-insensitively, or when the identifier (or its
// version-stripped base form) equals one of the entry's aliases. Defaults
// are scanned in catalog order and the first match wins.
func Resolve(candidateID string, defaults []Entry) (Entry, bool) {
	candidate := strings.ToLower(strings.TrimSpace(candidateID))
	if candidate == "" {
		return Entry{}, false
	}
	base := StripVersionTag(candidate)

	for _, entry := range defaults {
		if strings.EqualFold(entry.ID, candidate) {
			return entry, true
		}
		for _, alias := range entry.Aliases {
			lowered := strings.ToLower(strings.TrimSpace(alias))
			if lowered == "" {
				continue
			}
			if lowered == candidate || lowered == base {
				return entry, true
			}
		}
	}
	return Entry{}, false
}
