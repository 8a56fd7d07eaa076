package catalog

import "strings"

// Merge reconciles the curated default catalog with the models a provider
// reports as installed. The result is a fresh list:
//
//  1. Defaults for non-discoverable providers are always kept; they are
//     never overridden by discovery.
//  2. A discovered model that resolves (by id or alias) to a default with
//     DisplayNameOverride keeps the curated entry; one that resolves
//     without the override flag is dropped as a duplicate; one that
//     resolves to nothing is appended as a new entry.
//  3. Insertion order is preserved: defaults first, then new discovered
//     entries in input order.
//  4. Empty discovery returns the defaults unchanged.
//
// Deterministic for fixed inputs. Discovered entries without an id are
// skipped rather than aborting the merge.
func Merge(defaults, discovered []Entry) []Entry {
	if len(discovered) == 0 {
		result := make([]Entry, len(defaults))
		copy(result, defaults)
		return result
	}

	merged := make(map[string]Entry, len(defaults)+len(discovered))
	order := make([]string, 0, len(defaults)+len(discovered))
	// canonical tracks the lower-cased ids of default entries already in the
	// result. Two discovered ids can resolve to the same default (e.g. two
	// installed tags both matching one alias); only the first insert wins,
	// keeping ids unique in the merged list.
	canonical := make(map[string]bool, len(defaults))

	insert := func(key string, entry Entry) {
		if _, exists := merged[key]; !exists {
			order = append(order, key)
		}
		merged[key] = entry
	}

	for _, entry := range defaults {
		if entry.Provider == DiscoverableProvider {
			continue
		}
		key := strings.ToLower(entry.ID)
		insert(key, entry)
		canonical[key] = true
	}

	for _, candidate := range discovered {
		id := strings.TrimSpace(candidate.ID)
		if id == "" {
			continue
		}
		key := strings.ToLower(id)

		matched, ok := Resolve(id, defaults)
		if !ok {
			insert(key, candidate)
			continue
		}
		if matched.DisplayNameOverride {
			canonicalKey := strings.ToLower(matched.ID)
			if canonical[canonicalKey] {
				continue
			}
			// Curated display name wins, but the entry is keyed by the
			// discovered id so it is still recognized as installed.
			insert(key, matched)
			canonical[canonicalKey] = true
		}
	}

	result := make([]Entry, 0, len(order))
	for _, key := range order {
		result = append(result, merged[key])
	}
	return result
}

// FilterByType returns the entries of the given type, order preserved.
func FilterByType(entries []Entry, modelType ModelType) []Entry {
	filtered := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Type == modelType {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// GroupByProvider folds entries into per-provider buckets, preserving
// first-seen order within each bucket.
func GroupByProvider(entries []Entry) map[ProviderKind][]Entry {
	grouped := make(map[ProviderKind][]Entry)
	for _, entry := range entries {
		grouped[entry.Provider] = append(grouped[entry.Provider], entry)
	}
	return grouped
}
