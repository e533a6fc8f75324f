package set_test

import (
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/amp-labs/amp-collections/set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewThreadSafeSortedSet(t *testing.T) {
	t.Parallel()

	t.Run("wraps existing set", func(t *testing.T) {
		t.Parallel()

		s := set.NewOrderedSortedSet[int]()
		s.Add(1)

		tss := set.NewThreadSafeSortedSet(s)
		require.NotNil(t, tss)
		assert.Equal(t, 1, tss.Size())
	})

	t.Run("returns nil when given nil set", func(t *testing.T) {
		t.Parallel()

		var s set.SortedSet[int]

		assert.Nil(t, set.NewThreadSafeSortedSet(s))
	})

	t.Run("returns existing thread-safe set as-is", func(t *testing.T) {
		t.Parallel()

		tss1 := set.NewThreadSafeSortedSet(set.NewOrderedSortedSet[int]())
		tss2 := set.NewThreadSafeSortedSet(tss1)

		// Should be the same instance, not double-wrapped
		assert.Equal(t, fmt.Sprintf("%p", tss1), fmt.Sprintf("%p", tss2))
	})
}

func TestThreadSafeSortedSet_Delegates(t *testing.T) {
	t.Parallel()

	s := set.NewThreadSafeSortedSet(set.NewOrderedSortedSet[int]())

	assert.True(t, s.AddAll(5, 1, 3))
	assert.False(t, s.Add(3))
	assert.True(t, s.Contains(5))
	assert.True(t, s.ContainsAll(1, 3))
	assert.Equal(t, "135", s.String())

	first, err := s.First()
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	last, err := s.Last()
	require.NoError(t, err)
	assert.Equal(t, 5, last)

	tail, err := s.TailSet(3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5}, tail.Entries())

	_, err = s.HeadSet(4)
	require.ErrorIs(t, err, set.ErrElementNotFound)

	assert.True(t, s.RemoveAll(1))
	assert.True(t, s.RetainAll(5))
	assert.Equal(t, []int{5}, s.Entries())

	s.Clear()
	assert.True(t, s.IsEmpty())

	_, err = s.First()
	require.ErrorIs(t, err, set.ErrEmptySet)
}

func TestThreadSafeSortedSet_DerivedSetsAreThreadSafe(t *testing.T) {
	t.Parallel()

	s := set.NewThreadSafeSortedSet(set.NewOrderedSortedSet[int]())
	s.AddAll(1, 2, 3, 4)

	derived := []set.SortedSet[int]{
		s.Filter(func(i int) bool { return i > 1 }),
		s.FilterNot(func(i int) bool { return i > 1 }),
		s.Sort(func(a, b int) int { return b - a }),
		s.Clone(),
	}

	sub, err := s.SubSet(2, 4)
	require.NoError(t, err)

	derived = append(derived, sub)

	for _, d := range derived {
		// Wrapping a thread-safe set returns the same instance.
		assert.Equal(t, fmt.Sprintf("%p", d), fmt.Sprintf("%p", set.NewThreadSafeSortedSet(d)))
	}

	assert.Equal(t, []int{4, 3, 2, 1}, derived[2].Entries())
	assert.Equal(t, []int{2, 3}, sub.Entries())
}

func TestThreadSafeSortedSet_Seq(t *testing.T) {
	t.Parallel()

	t.Run("iterates a snapshot", func(t *testing.T) {
		t.Parallel()

		s := set.NewThreadSafeSortedSet(set.NewOrderedSortedSet[int]())
		s.AddAll(2, 1)

		seq := s.Values()
		s.Add(0)

		assert.Equal(t, []int{1, 2}, slices.Collect(seq))
		assert.Equal(t, []int{0, 1, 2}, slices.Collect(s.Values()))
	})

	t.Run("yields indexes", func(t *testing.T) {
		t.Parallel()

		s := set.NewThreadSafeSortedSet(set.NewOrderedSortedSet[int]())
		s.AddAll(10, 20)

		for idx, v := range s.Seq() {
			assert.Equal(t, (idx+1)*10, v)
		}
	})
}

func TestThreadSafeSortedSet_ConcurrentAdd(t *testing.T) {
	t.Parallel()

	s := set.NewThreadSafeSortedSet(set.NewOrderedSortedSet[int]())

	var waitGroup sync.WaitGroup

	for worker := range 8 {
		waitGroup.Add(1)

		go func(offset int) {
			defer waitGroup.Done()

			for i := range 50 {
				s.Add(offset*50 + i)
				_ = s.Contains(i)
				_ = s.Size()
			}
		}(worker)
	}

	waitGroup.Wait()

	entries := s.Entries()
	assert.Len(t, entries, 400)
	assert.True(t, slices.IsSorted(entries))
}

func TestThreadSafeSortedSet_ConcurrentDuplicates(t *testing.T) {
	t.Parallel()

	s := set.NewThreadSafeSortedSet(set.NewOrderedSortedSet[int]())

	var (
		waitGroup sync.WaitGroup
		mutex     sync.Mutex
		wins      int
	)

	for range 16 {
		waitGroup.Add(1)

		go func() {
			defer waitGroup.Done()

			if s.Add(7) {
				mutex.Lock()
				wins++
				mutex.Unlock()
			}
		}()
	}

	waitGroup.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, s.Size())
}
