package compare

import (
	"cmp"
	"strings"

	"facette.io/natsort"
)

// Comparator is an ordering function. It returns a negative number when a sorts
// before b, zero when they sort together, and a positive number when a sorts after b.
// It has the same shape as the functions accepted by slices.SortFunc.
type Comparator[T any] func(a, b T) int

// Natural orders any cmp.Ordered type by its built-in ordering.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// By orders values by a key extracted from them.
//
// Example:
//
//	byName := compare.By(func(p Person) string { return p.Name })
func By[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Reverse inverts the given ordering.
func (c Comparator[T]) Reverse() Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Then returns an ordering that consults next only when c considers the two
// values tied.
func (c Comparator[T]) Then(next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if res := c(a, b); res != 0 {
			return res
		}

		return next(a, b)
	}
}

// Less reports whether a sorts strictly before b.
func (c Comparator[T]) Less(a, b T) bool {
	return c(a, b) < 0
}

// FromLess builds a Comparator out of a strict "less than" function.
func FromLess[T any](less func(a, b T) bool) Comparator[T] {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// Strings orders strings lexically, byte by byte.
func Strings() Comparator[string] {
	return strings.Compare
}

// NaturalStrings orders strings the way a human would, treating runs of digits
// numerically ("item2" sorts before "item10").
func NaturalStrings() Comparator[string] {
	return FromLess(natsort.Compare)
}
