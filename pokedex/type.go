package pokedex

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// ErrUnknownType is returned by ParseType for names that aren't an elemental type.
var ErrUnknownType = errors.New("unknown pokemon type")

// Type is an elemental type. A Pokemon carries two of them; a single-typed
// Pokemon repeats its type in both slots.
type Type int

const (
	Normal Type = iota
	Fire
	Water
	Grass
	Electric
	Ice
	Fighting
	Poison
	Ground
	Flying
	Psychic
	Bug
	Rock
	Ghost
	Dragon
	Dark
	Steel
	Fairy
)

var typeNames = [...]string{ //nolint:gochecknoglobals
	Normal:   "Normal",
	Fire:     "Fire",
	Water:    "Water",
	Grass:    "Grass",
	Electric: "Electric",
	Ice:      "Ice",
	Fighting: "Fighting",
	Poison:   "Poison",
	Ground:   "Ground",
	Flying:   "Flying",
	Psychic:  "Psychic",
	Bug:      "Bug",
	Rock:     "Rock",
	Ghost:    "Ghost",
	Dragon:   "Dragon",
	Dark:     "Dark",
	Steel:    "Steel",
	Fairy:    "Fairy",
}

// Types returns every elemental type in declaration order.
func Types() []Type {
	out := make([]Type, len(typeNames))
	for i := range typeNames {
		out[i] = Type(i)
	}

	return out
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}

	return typeNames[t]
}

// ParseType looks a type up by name, ignoring case and surrounding whitespace.
func ParseType(name string) (Type, error) {
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(name))

	for i, typeName := range typeNames {
		if fold.String(typeName) == want {
			return Type(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}
