package set

import (
	"iter"
	"sync"

	"github.com/amp-labs/amp-collections/compare"
)

// NewThreadSafeSortedSet wraps an existing SortedSet with thread-safe access using sync.RWMutex.
//
// Write operations (Add, AddAll, Remove, RemoveAll, RetainAll, Clear) acquire exclusive locks,
// while everything else uses shared read locks. Derived sets returned by Filter, Sort and the
// range views are wrapped as well, each with its own independent lock.
//
// Example usage:
//
//	unsafeSet := set.NewOrderedSortedSet[int]()
//	safeSet := set.NewThreadSafeSortedSet(unsafeSet)
//	safeSet.Add(42) // thread-safe
func NewThreadSafeSortedSet[E any](s SortedSet[E]) SortedSet[E] {
	if s == nil {
		return nil
	}

	tss, ok := s.(*threadSafeSortedSet[E])
	if ok {
		// Already thread-safe, return as-is
		return tss
	}

	return &threadSafeSortedSet[E]{
		internal: s,
	}
}

// threadSafeSortedSet is a decorator that wraps any SortedSet implementation with thread-safe access.
type threadSafeSortedSet[E any] struct {
	mutex    sync.RWMutex // Protects access to internal set
	internal SortedSet[E] // Underlying set implementation
}

var _ SortedSet[int] = (*threadSafeSortedSet[int])(nil)

func (t *threadSafeSortedSet[E]) Add(element E) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Add(element)
}

func (t *threadSafeSortedSet[E]) AddAll(elements ...E) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.AddAll(elements...)
}

func (t *threadSafeSortedSet[E]) Remove(element E) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Remove(element)
}

func (t *threadSafeSortedSet[E]) RemoveAll(elements ...E) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.RemoveAll(elements...)
}

func (t *threadSafeSortedSet[E]) RetainAll(elements ...E) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.RetainAll(elements...)
}

func (t *threadSafeSortedSet[E]) Clear() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.internal.Clear()
}

func (t *threadSafeSortedSet[E]) Contains(element E) bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Contains(element)
}

func (t *threadSafeSortedSet[E]) ContainsAll(elements ...E) bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.ContainsAll(elements...)
}

func (t *threadSafeSortedSet[E]) Size() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Size()
}

func (t *threadSafeSortedSet[E]) IsEmpty() bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.IsEmpty()
}

func (t *threadSafeSortedSet[E]) First() (E, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.First()
}

func (t *threadSafeSortedSet[E]) Last() (E, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Last()
}

// Comparator and Equality are fixed at construction, so no lock is needed.
func (t *threadSafeSortedSet[E]) Comparator() compare.Comparator[E] {
	return t.internal.Comparator()
}

func (t *threadSafeSortedSet[E]) Equality() func(a, b E) bool {
	return t.internal.Equality()
}

func (t *threadSafeSortedSet[E]) Entries() []E {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Entries()
}

// Seq returns an iterator over the set's elements with snapshot semantics.
// The read lock is held only while the snapshot is taken, so iteration never blocks
// writers and never observes changes made after Seq was called.
func (t *threadSafeSortedSet[E]) Seq() iter.Seq2[int, E] {
	accum := t.Entries()

	return func(yield func(int, E) bool) {
		for i, element := range accum {
			if !yield(i, element) {
				return
			}
		}
	}
}

// Values has the same snapshot semantics as Seq.
func (t *threadSafeSortedSet[E]) Values() iter.Seq[E] {
	accum := t.Entries()

	return func(yield func(E) bool) {
		for _, element := range accum {
			if !yield(element) {
				return
			}
		}
	}
}

func (t *threadSafeSortedSet[E]) Filter(predicate func(E) bool) SortedSet[E] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return NewThreadSafeSortedSet(t.internal.Filter(predicate))
}

func (t *threadSafeSortedSet[E]) FilterNot(predicate func(E) bool) SortedSet[E] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return NewThreadSafeSortedSet(t.internal.FilterNot(predicate))
}

func (t *threadSafeSortedSet[E]) Sort(comparator compare.Comparator[E]) SortedSet[E] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return NewThreadSafeSortedSet(t.internal.Sort(comparator))
}

func (t *threadSafeSortedSet[E]) HeadSet(to E) (SortedSet[E], error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return wrapView(t.internal.HeadSet(to))
}

func (t *threadSafeSortedSet[E]) SubSet(from, to E) (SortedSet[E], error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return wrapView(t.internal.SubSet(from, to))
}

func (t *threadSafeSortedSet[E]) TailSet(from E) (SortedSet[E], error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return wrapView(t.internal.TailSet(from))
}

func wrapView[E any](view SortedSet[E], err error) (SortedSet[E], error) {
	if err != nil {
		return nil, err
	}

	return NewThreadSafeSortedSet(view), nil
}

func (t *threadSafeSortedSet[E]) Clone() SortedSet[E] {
	if t == nil {
		return nil
	}

	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return NewThreadSafeSortedSet(t.internal.Clone())
}

func (t *threadSafeSortedSet[E]) String() string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.String()
}
