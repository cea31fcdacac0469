// Package sliceops holds small generic slice helpers shared by the schema,
// scanner, and help packages. None of it is CLI-specific; it exists so that
// ordered collections (declared flag order, route entry order) can be
// searched and filtered without reaching for reflection or a dependency.
package sliceops

// Index returns the first (lowest) index of the value within the given slice.
// If the value is not found, -1 is returned.
func Index[E comparable](sl []E, v E) int {
	for i, item := range sl {
		if item == v {
			return i
		}
	}
	return -1
}

// Filter returns a new slice with only the items that the given function
// returns true for.
func Filter[E any](sl []E, fn func(E) bool) []E {
	var newItems []E
	for _, item := range sl {
		if fn(item) {
			newItems = append(newItems, item)
		}
	}
	return newItems
}
