// Package pokedex is a small catalog of Pokemon built on top of set.SortedSet.
//
// Every query is answered by deriving a new set from the catalog's natural-order
// set, either re-sorted (ListAlphabetically, GroupByPrimaryType) or filtered
// (ListByType, ListRange). The catalog itself is never reordered.
package pokedex

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amp-labs/amp-collections/compare"
	amperrors "github.com/amp-labs/amp-collections/errors"
	"github.com/amp-labs/amp-collections/hashing"
	"github.com/amp-labs/amp-collections/logger"
	"github.com/amp-labs/amp-collections/set"
	"github.com/amp-labs/amp-collections/sortable"
)

// ErrAlreadyRegistered is reported by Register for every Pokemon whose name is
// already in the catalog.
var ErrAlreadyRegistered = errors.New("pokemon already registered")

// DefaultName labels the metrics of a Pokedex created without WithName.
const DefaultName = "pokedex"

// Pokedex records Pokemon in number order. It is not safe for concurrent use.
type Pokedex struct {
	name    string
	log     *slog.Logger
	entries set.SortedSet[Pokemon]
}

// Option configures a Pokedex.
type Option func(*Pokedex)

// WithLogger sets the logger used for debug output. Defaults to logger.Get().
func WithLogger(log *slog.Logger) Option {
	return func(p *Pokedex) {
		p.log = log
	}
}

// WithName sets the pokedex label attached to metrics and log lines. Catalogs
// sharing a name add up in the metrics.
func WithName(name string) Option {
	return func(p *Pokedex) {
		p.name = name
	}
}

// NewPokedex creates an empty Pokedex.
func NewPokedex(opts ...Option) *Pokedex {
	dex := &Pokedex{
		name:    DefaultName,
		entries: set.NewSortableSortedSet[Pokemon](),
	}

	for _, opt := range opts {
		opt(dex)
	}

	if dex.log == nil {
		dex.log = logger.Get()
	}

	dex.log = dex.log.With("pokedex", dex.name)

	return dex
}

// Add records a Pokemon. It returns false, leaving the catalog unchanged, when
// a Pokemon with the same name is already present.
func (p *Pokedex) Add(pokemon Pokemon) bool {
	return p.add(p.log, pokemon)
}

func (p *Pokedex) add(log *slog.Logger, pokemon Pokemon) bool {
	if !p.entries.Add(pokemon) {
		pokemonRejected.WithLabelValues(p.name).Inc()
		log.Debug("pokemon already registered",
			"number", pokemon.Number(), "name", pokemon.Name())

		return false
	}

	pokemonAdded.WithLabelValues(p.name).Inc()
	pokedexEntries.WithLabelValues(p.name).Inc()

	return true
}

// Register adds every Pokemon and reports each one that was refused as a
// duplicate. Pokemon that could be added are added regardless. Log lines carry
// the values attached to ctx with logger.With, and a muted ctx silences them.
func (p *Pokedex) Register(ctx context.Context, pokemon ...Pokemon) error {
	var errs amperrors.Collection

	log := logger.Attach(ctx, p.log)

	for _, pk := range pokemon {
		if !p.add(log, pk) {
			errs.Add(fmt.Errorf("%w: #%d %s", ErrAlreadyRegistered, pk.Number(), pk.Name()))
		}
	}

	log.Debug("registered pokemon",
		"added", len(pokemon)-errs.Len(), "rejected", errs.Len(), "count", p.entries.Size())

	return errs.GetError()
}

// Count returns the number of Pokemon in the Pokedex.
func (p *Pokedex) Count() int {
	return p.entries.Size()
}

// Clear empties the Pokedex.
func (p *Pokedex) Clear() {
	count := p.entries.Size()

	p.log.Debug("clearing pokedex", "count", count)
	p.entries.Clear()
	pokedexEntries.WithLabelValues(p.name).Sub(float64(count))
}

// Entries returns a copy of the catalog in number order.
func (p *Pokedex) Entries() set.SortedSet[Pokemon] {
	return p.entries.Clone()
}

// ListAlphabetically returns the Pokemon ordered by name.
func (p *Pokedex) ListAlphabetically() set.SortedSet[Pokemon] {
	return p.entries.Sort(compare.By(Pokemon.Name))
}

// GroupByPrimaryType returns the Pokemon ordered by primary type. Within a type
// they stay in number order.
func (p *Pokedex) GroupByPrimaryType() set.SortedSet[Pokemon] {
	return p.entries.Sort(compare.By(Pokemon.PrimaryType))
}

// ListByType returns the Pokemon having t as either their primary or secondary type.
func (p *Pokedex) ListByType(t Type) set.SortedSet[Pokemon] {
	return p.entries.Filter(func(pk Pokemon) bool {
		return pk.HasType(t)
	})
}

// ListRange returns the Pokemon numbered from start to end, both inclusive.
func (p *Pokedex) ListRange(start, end int) set.SortedSet[Pokemon] {
	return p.entries.Filter(func(pk Pokemon) bool {
		return pk.Number() >= start && pk.Number() <= end
	})
}

// Fingerprint digests the full contents of the Pokedex with the given hash
// function. Two catalogs holding the same Pokemon produce the same fingerprint
// no matter the order they were added in.
func (p *Pokedex) Fingerprint(hash hashing.HashFunc) (string, error) {
	canonical := p.entries.Sort(sortable.Comparator[Pokemon]().Then(compare.By(Pokemon.Name)))

	parts := make(hashing.Many, 0, canonical.Size()+1)
	parts = append(parts, hashing.HashableInt(canonical.Size()))

	for pk := range canonical.Values() {
		parts = append(parts, pk)
	}

	return hash(parts)
}

func (p *Pokedex) String() string {
	return p.entries.String()
}
