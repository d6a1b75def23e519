// Package grouping partitions records by a field and indexes them by key.
package grouping

import "sort"

// FallbackKey collects records whose field is empty.
const FallbackKey = "Other"

// Groups is an insertion-ordered mapping from a field value to the records
// sharing it. Records keep their input order within a group.
type Groups[T any] struct {
	keys  []string
	items map[string][]T
}

// GroupBy partitions records by the value returned from field.
func GroupBy[T any](records []T, field func(T) string) *Groups[T] {
	g := &Groups[T]{items: make(map[string][]T)}

	for _, rec := range records {
		key := field(rec)
		if key == "" {
			key = FallbackKey
		}

		if _, seen := g.items[key]; !seen {
			g.keys = append(g.keys, key)
		}
		g.items[key] = append(g.items[key], rec)
	}

	return g
}

// Keys returns group keys in first-seen order.
func (g *Groups[T]) Keys() []string {
	return append([]string(nil), g.keys...)
}

// SortedKeys returns group keys in lexicographic order.
func (g *Groups[T]) SortedKeys() []string {
	keys := g.Keys()
	sort.Strings(keys)

	return keys
}

// Get returns the records of one group, nil when the key is unknown.
func (g *Groups[T]) Get(key string) []T {
	return g.items[key]
}

// Len returns the number of groups.
func (g *Groups[T]) Len() int {
	return len(g.keys)
}

// IndexBy maps each non-empty key to the record holding it. When several
// records share a key the last one wins.
func IndexBy[T any](records []T, key func(T) string) map[string]T {
	idx := make(map[string]T, len(records))

	for _, rec := range records {
		k := key(rec)
		if k == "" {
			continue
		}
		idx[k] = rec
	}

	return idx
}

// SortedKeys returns the keys of a map in lexicographic order.
func SortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
