package ranking

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Number is any numeric score type.
type Number interface {
	constraints.Integer | constraints.Float
}

// SortByScoreDesc returns a copy of items ordered by score, highest first.
// Equal scores keep their input order.
func SortByScoreDesc[T any, N Number](items []T, score func(T) N) []T {
	out := append([]T(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return score(out[i]) > score(out[j])
	})
	return out
}

// Top returns at most n leading items.
func Top[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(items) < n {
		n = len(items)
	}
	return append([]T(nil), items[:n]...)
}
