// Package ranking provides the filtering, ordering and aggregate helpers the
// catalog views share. Every function is pure and returns a fresh slice.
package ranking

import "strings"

// FilterByText keeps items where any of fields(item) contains query,
// compared case-insensitively. An empty query keeps every item.
func FilterByText[T any](items []T, query string, fields func(T) []string) []T {
	q := strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if q == "" || anyContains(fields(item), q) {
			out = append(out, item)
		}
	}
	return out
}

func anyContains(values []string, q string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

// FilterByEnum keeps items whose field equals selected. Passing the all
// sentinel as selected keeps every item.
func FilterByEnum[T any, E comparable](items []T, selected, all E, field func(T) E) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if selected == all || field(item) == selected {
			out = append(out, item)
		}
	}
	return out
}

// Filter keeps items matching keep.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
