package set

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/amp-labs/amp-collections/compare"
	"github.com/amp-labs/amp-collections/sortable"
)

// A SortedSet is a collection of unique elements kept in the order defined by
// a Comparator. Uniqueness is decided by a separate equality function, so two
// elements may tie under the Comparator without being equal, and vice versa.
//
// Derived sets (Filter, FilterNot, Sort, HeadSet, SubSet, TailSet, Clone) are
// always new, independent sets: mutating one never affects the other.
type SortedSet[E any] interface {
	// Add inserts the element unless an equal element is already present.
	// Returns true if the set changed.
	Add(element E) bool

	// AddAll adds every element in order and returns true only if every
	// individual Add returned true. All elements are attempted, even after
	// one of them turns out to be a duplicate.
	AddAll(elements ...E) bool

	// Remove deletes the element equal to the given one. Returns true if
	// something was removed.
	Remove(element E) bool

	// RemoveAll deletes every member equal to any of the given elements.
	// Returns true if the set changed.
	RemoveAll(elements ...E) bool

	// RetainAll keeps only the members equal to one of the given elements.
	// Returns true if the set changed.
	RetainAll(elements ...E) bool

	// Clear removes all elements from the set.
	Clear()

	// Contains reports whether an element equal to the given one is present.
	Contains(element E) bool

	// ContainsAll reports whether every given element is present.
	ContainsAll(elements ...E) bool

	// Size returns the number of elements in the set.
	Size() int

	// IsEmpty reports whether the set has no elements.
	IsEmpty() bool

	// First returns the smallest element, or ErrEmptySet.
	First() (E, error)

	// Last returns the largest element, or ErrEmptySet.
	Last() (E, error)

	// Comparator returns the ordering function of this set.
	Comparator() compare.Comparator[E]

	// Equality returns the element equality function of this set.
	Equality() func(a, b E) bool

	// Entries returns a copy of the elements in sorted order.
	Entries() []E

	// Seq returns an iterator over (index, element) pairs in sorted order.
	Seq() iter.Seq2[int, E]

	// Values returns an iterator over the elements in sorted order.
	Values() iter.Seq[E]

	// Filter returns a new set, with the same ordering, holding the elements
	// for which the predicate returns true.
	Filter(predicate func(E) bool) SortedSet[E]

	// FilterNot returns a new set holding the elements for which the
	// predicate returns false.
	FilterNot(predicate func(E) bool) SortedSet[E]

	// Sort returns a new set holding the same elements ordered by the given
	// Comparator. The receiver keeps its own ordering.
	Sort(comparator compare.Comparator[E]) SortedSet[E]

	// HeadSet returns a new set with the elements strictly before to.
	HeadSet(to E) (SortedSet[E], error)

	// SubSet returns a new set with the elements in [from, to).
	SubSet(from, to E) (SortedSet[E], error)

	// TailSet returns a new set with the elements from "from" to the end, inclusive.
	TailSet(from E) (SortedSet[E], error)

	// Clone returns an independent copy of the set.
	Clone() SortedSet[E]

	// String concatenates the string form of each element, in order, with no separator.
	String() string
}

// NewSortedSet creates an empty SortedSet which uses equals to detect duplicates
// and comparator to order elements.
//
// Example:
//
//	byName := set.NewSortedSet(
//	    func(a, b Person) bool { return a.ID == b.ID },
//	    compare.By(func(p Person) string { return p.Name }),
//	)
func NewSortedSet[E any](equals func(a, b E) bool, comparator compare.Comparator[E]) SortedSet[E] {
	return &sortedSet[E]{
		equals:     equals,
		comparator: comparator,
	}
}

// NewComparableSortedSet creates an empty SortedSet whose equality is the
// elements' own Equals method.
func NewComparableSortedSet[E compare.Comparable[E]](comparator compare.Comparator[E]) SortedSet[E] {
	return NewSortedSet(compare.EqualityOf[E](), comparator)
}

// NewSortableSortedSet creates an empty SortedSet ordered by the elements'
// natural order (LessThan) and deduplicated by Equals.
func NewSortableSortedSet[E sortable.Sortable[E]]() SortedSet[E] {
	return NewSortedSet(compare.EqualityOf[E](), sortable.Comparator[E]())
}

// NewOrderedSortedSet creates an empty SortedSet of a built-in ordered type,
// using == for equality and cmp.Compare for order.
func NewOrderedSortedSet[E cmp.Ordered]() SortedSet[E] {
	return NewSortedSet(compare.Same[E], compare.Natural[E]())
}

// sortedSet keeps its elements in a slice that is re-sorted on every insertion.
// Membership and removal are linear scans using the equality function.
type sortedSet[E any] struct {
	elements   []E
	equals     func(a, b E) bool
	comparator compare.Comparator[E]
}

var _ SortedSet[int] = (*sortedSet[int])(nil)

func (s *sortedSet[E]) indexOf(element E) int {
	return slices.IndexFunc(s.elements, func(e E) bool {
		return s.equals(e, element)
	})
}

func (s *sortedSet[E]) Add(element E) bool {
	if s.indexOf(element) >= 0 {
		return false
	}

	s.elements = append(s.elements, element)

	// Stable, so elements that tie under the comparator stay in insertion order.
	slices.SortStableFunc(s.elements, s.comparator)

	return true
}

func (s *sortedSet[E]) AddAll(elements ...E) bool {
	added := true

	for _, element := range elements {
		// Add first: every element is attempted regardless of earlier results.
		added = s.Add(element) && added
	}

	return added
}

func (s *sortedSet[E]) Remove(element E) bool {
	idx := s.indexOf(element)
	if idx < 0 {
		return false
	}

	s.elements = slices.Delete(s.elements, idx, idx+1)

	return true
}

func (s *sortedSet[E]) RemoveAll(elements ...E) bool {
	return s.deleteWhere(func(member E) bool {
		return s.matchesAny(member, elements)
	})
}

func (s *sortedSet[E]) RetainAll(elements ...E) bool {
	return s.deleteWhere(func(member E) bool {
		return !s.matchesAny(member, elements)
	})
}

func (s *sortedSet[E]) matchesAny(member E, elements []E) bool {
	return slices.ContainsFunc(elements, func(e E) bool {
		return s.equals(member, e)
	})
}

func (s *sortedSet[E]) deleteWhere(del func(E) bool) bool {
	before := len(s.elements)
	s.elements = slices.DeleteFunc(s.elements, del)

	return len(s.elements) != before
}

func (s *sortedSet[E]) Clear() {
	clear(s.elements)
	s.elements = s.elements[:0]
}

func (s *sortedSet[E]) Contains(element E) bool {
	return s.indexOf(element) >= 0
}

func (s *sortedSet[E]) ContainsAll(elements ...E) bool {
	for _, element := range elements {
		if !s.Contains(element) {
			return false
		}
	}

	return true
}

func (s *sortedSet[E]) Size() int {
	return len(s.elements)
}

func (s *sortedSet[E]) IsEmpty() bool {
	return len(s.elements) == 0
}

func (s *sortedSet[E]) First() (E, error) {
	if len(s.elements) == 0 {
		var zero E

		return zero, fmt.Errorf("%w: no first element", ErrEmptySet)
	}

	return s.elements[0], nil
}

func (s *sortedSet[E]) Last() (E, error) {
	if len(s.elements) == 0 {
		var zero E

		return zero, fmt.Errorf("%w: no last element", ErrEmptySet)
	}

	return s.elements[len(s.elements)-1], nil
}

func (s *sortedSet[E]) Comparator() compare.Comparator[E] {
	return s.comparator
}

func (s *sortedSet[E]) Equality() func(a, b E) bool {
	return s.equals
}

func (s *sortedSet[E]) Entries() []E {
	return slices.Clone(s.elements)
}

// Seq walks the live slice, so mutating the set mid-iteration is undefined.
func (s *sortedSet[E]) Seq() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := 0; i < len(s.elements); i++ {
			if !yield(i, s.elements[i]) {
				return
			}
		}
	}
}

func (s *sortedSet[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, element := range s.Seq() {
			if !yield(element) {
				return
			}
		}
	}
}

// derive builds a new set with the same equality and ordering out of the
// members for which keep returns true. A subsequence of a sorted, duplicate-free
// slice is itself sorted and duplicate-free, so no re-sort is needed.
func (s *sortedSet[E]) derive(keep func(E) bool) *sortedSet[E] {
	out := &sortedSet[E]{
		equals:     s.equals,
		comparator: s.comparator,
	}

	for _, element := range s.elements {
		if keep(element) {
			out.elements = append(out.elements, element)
		}
	}

	return out
}

func (s *sortedSet[E]) Filter(predicate func(E) bool) SortedSet[E] {
	return s.derive(predicate)
}

func (s *sortedSet[E]) FilterNot(predicate func(E) bool) SortedSet[E] {
	return s.derive(func(e E) bool {
		return !predicate(e)
	})
}

// Sort gives the same result as adding every element, in current order, to an
// empty set ordered by comparator: elements that tie under the new ordering keep
// their relative order from the receiver.
func (s *sortedSet[E]) Sort(comparator compare.Comparator[E]) SortedSet[E] {
	out := &sortedSet[E]{
		elements:   slices.Clone(s.elements),
		equals:     s.equals,
		comparator: comparator,
	}

	slices.SortStableFunc(out.elements, comparator)

	return out
}

// The range views resolve each boundary to the member it is equal to and scan
// against that member's position, so a boundary that is equal to a member but
// orders differently still selects the member's own range.
func (s *sortedSet[E]) HeadSet(to E) (SortedSet[E], error) {
	upper, err := s.member("head set upper bound", to)
	if err != nil {
		return nil, err
	}

	return s.derive(func(e E) bool {
		return s.comparator(e, upper) < 0
	}), nil
}

func (s *sortedSet[E]) SubSet(from, to E) (SortedSet[E], error) {
	lower, err := s.member("sub set lower bound", from)
	if err != nil {
		return nil, err
	}

	upper, err := s.member("sub set upper bound", to)
	if err != nil {
		return nil, err
	}

	if s.comparator(lower, upper) > 0 {
		return nil, fmt.Errorf("%w: sub set lower bound %v sorts after upper bound %v", ErrInvalidArgument, from, to)
	}

	return s.derive(func(e E) bool {
		return s.comparator(lower, e) <= 0 && s.comparator(e, upper) < 0
	}), nil
}

func (s *sortedSet[E]) TailSet(from E) (SortedSet[E], error) {
	lower, err := s.member("tail set lower bound", from)
	if err != nil {
		return nil, err
	}

	return s.derive(func(e E) bool {
		return s.comparator(lower, e) <= 0
	}), nil
}

// member returns the stored element equal to element.
func (s *sortedSet[E]) member(role string, element E) (E, error) {
	idx := s.indexOf(element)
	if idx < 0 {
		var zero E

		return zero, fmt.Errorf("%w: %s %v", ErrElementNotFound, role, element)
	}

	return s.elements[idx], nil
}

func (s *sortedSet[E]) Clone() SortedSet[E] {
	if s == nil {
		return nil
	}

	return s.derive(func(E) bool { return true })
}

func (s *sortedSet[E]) String() string {
	var sb strings.Builder

	for _, element := range s.elements {
		_, _ = fmt.Fprint(&sb, element)
	}

	return sb.String()
}
