package util

import (
	"cmp"
	"slices"
)

// FindFirst returns the first element of s for which predicate holds.
// If no element matches, it returns the zero value and false.
func FindFirst[T any](s []T, predicate func(T) bool) (T, bool) {
	for _, v := range s {
		if predicate(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Unique returns the distinct elements of s in ascending order.
// The input slice is left untouched.
func Unique[T cmp.Ordered](s []T) []T {
	out := slices.Clone(s)
	slices.Sort(out)
	return slices.Compact(out)
}
