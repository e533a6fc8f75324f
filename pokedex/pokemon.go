package pokedex

import (
	"fmt"
	"hash"

	"github.com/amp-labs/amp-collections/hashing"
	"github.com/amp-labs/amp-collections/sortable"
)

// Pokemon is an immutable catalog entry.
//
// Its natural order is by Number, but two entries are the same Pokemon when
// their names match. A Pokedex therefore refuses a second "Bulbasaur" even if it
// carries a different number.
type Pokemon struct {
	number    int
	name      string
	primary   Type
	secondary Type
}

var (
	_ sortable.Sortable[Pokemon] = Pokemon{}
	_ hashing.Hashable           = Pokemon{}
)

// New creates a Pokemon.
func New(number int, name string, primary, secondary Type) Pokemon {
	return Pokemon{
		number:    number,
		name:      name,
		primary:   primary,
		secondary: secondary,
	}
}

func (p Pokemon) Number() int {
	return p.number
}

func (p Pokemon) Name() string {
	return p.name
}

func (p Pokemon) PrimaryType() Type {
	return p.primary
}

func (p Pokemon) SecondaryType() Type {
	return p.secondary
}

// HasType reports whether either type slot is t.
func (p Pokemon) HasType(t Type) bool {
	return p.primary == t || p.secondary == t
}

// Equals compares names only.
func (p Pokemon) Equals(other Pokemon) bool {
	return p.name == other.name
}

// LessThan orders by number.
func (p Pokemon) LessThan(other Pokemon) bool {
	return p.number < other.number
}

// UpdateHash feeds every field into h. The name is length-prefixed so that
// adjacent entries can't run together.
func (p Pokemon) UpdateHash(h hash.Hash) error {
	return hashing.Many{
		hashing.HashableInt(p.number),
		hashing.HashableInt(len(p.name)),
		hashing.HashableString(p.name),
		hashing.HashableInt(p.primary),
		hashing.HashableInt(p.secondary),
	}.UpdateHash(h)
}

func (p Pokemon) String() string {
	return fmt.Sprintf("#\t%d: %s \t\t Primary Type: %s\t\tSecondary Type: %s\n",
		p.number, p.name, p.primary, p.secondary)
}
