// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as keys in sorted data structures.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int], [Byte], [String] and
// [NaturalString].
// These types are designed to work with sorted collections
// (see [github.com/amp-labs/amp-collections/set.NewSortableSortedSet]).
//
// The Sortable interface extends [github.com/amp-labs/amp-collections/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
//
// # Usage
//
// Use the provided wrapper types when you need sorted collections:
//
//	// Create a sorted set of integers
//	intSet := set.NewSortableSortedSet[sortable.Int]()
//	intSet.Add(sortable.Int(42))
//	intSet.Add(sortable.Int(10))
//	intSet.Add(sortable.Int(25))
//
//	// Elements are returned in sorted order: 10, 25, 42
//	for val := range intSet.Values() {
//	    fmt.Println(int(val))
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// # Equality Versus Order
//
// Equals and LessThan are consulted separately. A sorted set uses Equals to decide
// whether an element is already present and LessThan (through [Compare]) to decide
// where it goes. A type may legitimately have two values that are not Equal yet tie
// under LessThan, or the other way round; the set keeps both notions apart.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently thread-safe
// for read operations. However, collections using these types may not be thread-safe
// and require external synchronization (or set.NewThreadSafeSortedSet) for concurrent access.
package sortable
