package sortable

import (
	"github.com/amp-labs/amp-collections/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare is the natural ordering of a Sortable type, derived from LessThan.
// Two values that are neither less than nor greater than each other compare as 0,
// whether or not Equals reports them equal.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}

// Comparator returns Compare as a compare.Comparator, ready to be handed to a sorted set.
func Comparator[T Sortable[T]]() compare.Comparator[T] {
	return Compare[T]
}
