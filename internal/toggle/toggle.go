// Package toggle flips boolean state on catalog items by identity. Lists are
// rebuilt on every change: the matching item is replaced and the rest copied,
// so the caller's slice is never modified.
package toggle

import "fmt"

// Flag describes one boolean field of T and the identity used to find items.
type Flag[T any, K comparable] struct {
	// Name labels the item kind in errors, e.g. "mentor".
	Name string
	Key  func(T) K
	Get  func(T) bool
	Set  func(T, bool) T
}

// Apply rebuilds items with next applied to the flag of every item whose key
// matches. It fails with *NotFoundError when no item matches.
func (f Flag[T, K]) Apply(items []T, key K, next func(bool) bool) ([]T, error) {
	out := make([]T, len(items))
	found := false
	for i, item := range items {
		if f.Key(item) == key {
			item = f.Set(item, next(f.Get(item)))
			found = true
		}
		out[i] = item
	}
	if !found {
		return nil, &NotFoundError{Message: fmt.Sprintf("%s %v", f.name(), key)}
	}
	return out, nil
}

// SetTo sets the flag of the matching item to value. Repeating the call is a
// no-op.
func (f Flag[T, K]) SetTo(items []T, key K, value bool) ([]T, error) {
	return f.Apply(items, key, func(bool) bool { return value })
}

// Toggle inverts the flag of the matching item. Toggling twice restores the
// original list.
func (f Flag[T, K]) Toggle(items []T, key K) ([]T, error) {
	return f.Apply(items, key, func(v bool) bool { return !v })
}

// Lookup returns the first item with key.
func (f Flag[T, K]) Lookup(items []T, key K) (T, error) {
	for _, item := range items {
		if f.Key(item) == key {
			return item, nil
		}
	}
	var zero T
	return zero, &NotFoundError{Message: fmt.Sprintf("%s %v", f.name(), key)}
}

func (f Flag[T, K]) name() string {
	if f.Name == "" {
		return "item"
	}
	return f.Name
}
