package set_test

import (
	"errors"
	"fmt"

	"github.com/amp-labs/amp-collections/compare"
	"github.com/amp-labs/amp-collections/set"
)

func ExampleNewOrderedSortedSet() {
	s := set.NewOrderedSortedSet[int]()
	s.AddAll(5, 1, 3)

	fmt.Println(s.Add(3), s.Size(), s.Entries())
	// Output: false 3 [1 3 5]
}

func ExampleSortedSet_Sort() {
	s := set.NewOrderedSortedSet[string]()
	s.AddAll("kiwi", "fig", "banana")

	byLength := s.Sort(compare.By(func(v string) int { return len(v) }))

	fmt.Println(s.Entries())
	fmt.Println(byLength.Entries())
	// Output:
	// [banana fig kiwi]
	// [fig kiwi banana]
}

func ExampleSortedSet_SubSet() {
	s := set.NewOrderedSortedSet[int]()
	s.AddAll(10, 20, 30, 40)

	sub, err := s.SubSet(20, 40)
	fmt.Println(sub.Entries(), err)

	_, err = s.SubSet(15, 40)
	fmt.Println(errors.Is(err, set.ErrInvalidArgument))
	// Output:
	// [20 30] <nil>
	// true
}
