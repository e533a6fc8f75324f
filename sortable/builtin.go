package sortable

import "facette.io/natsort"

// Int wraps int so it can be stored in a set created by set.NewSortableSortedSet.
//
//	ints := set.NewSortableSortedSet[sortable.Int]()
//	ints.AddAll(5, 3, 7) // iterates as 3, 5, 7
type Int int

var _ Sortable[Int] = (*Int)(nil)

func (i Int) Equals(other Int) bool {
	return i == other
}

func (i Int) LessThan(other Int) bool {
	return i < other
}

// Byte wraps byte. Bytes order by numeric value.
type Byte byte

var _ Sortable[Byte] = (*Byte)(nil)

func (b Byte) Equals(other Byte) bool {
	return b == other
}

func (b Byte) LessThan(other Byte) bool {
	return b < other
}

// String wraps string with byte-wise ordering.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return s == other
}

func (s String) LessThan(other String) bool {
	return s < other
}

// NaturalString orders digit runs by numeric value, so "item2" sorts before "item10".
// Equality stays exact.
type NaturalString string

var _ Sortable[NaturalString] = (*NaturalString)(nil)

func (s NaturalString) Equals(other NaturalString) bool {
	return s == other
}

func (s NaturalString) LessThan(other NaturalString) bool {
	return natsort.Compare(string(s), string(other))
}
