package ranking

import "math"

// Average returns the mean of value over items, rounded to the nearest
// integer. An empty list averages to 0.
func Average[T any, N Number](items []T, value func(T) N) int {
	if len(items) == 0 {
		return 0
	}
	var sum float64
	for _, item := range items {
		sum += float64(value(item))
	}
	return int(math.Round(sum / float64(len(items))))
}

// Max returns the largest value over items, or the zero value when empty.
func Max[T any, N Number](items []T, value func(T) N) N {
	var best N
	for i, item := range items {
		if v := value(item); i == 0 || v > best {
			best = v
		}
	}
	return best
}

// Count returns how many items satisfy pred.
func Count[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// Percent returns part/whole as a rounded percentage, or 0 when whole is 0.
func Percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(whole)))
}
