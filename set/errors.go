package set

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySet is returned by First and Last when the set has no elements.
	ErrEmptySet = errors.New("set is empty")

	// ErrInvalidArgument is returned when an argument violates an operation's contract.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrElementNotFound is returned by the range views (HeadSet, SubSet, TailSet)
	// when a boundary element is not a member of the set. It wraps ErrInvalidArgument.
	ErrElementNotFound = fmt.Errorf("%w: element not in set", ErrInvalidArgument)
)
