// Package compare provides the two notions of sameness used by the collections in
// this module: element equality (Comparable) and ordering (Comparator).
//
// The two are deliberately independent. A sorted set decides uniqueness with an
// equality function and decides position with a Comparator, and nothing requires
// that Comparator(a, b) == 0 whenever a.Equals(b).
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// EqualityOf adapts a Comparable type's Equals method into a plain
// two-argument equality function.
func EqualityOf[T Comparable[T]]() func(a, b T) bool {
	return func(a, b T) bool {
		return a.Equals(b)
	}
}

// Same is the equality function for comparable types, using the == operator.
func Same[T comparable](a, b T) bool {
	return a == b
}
