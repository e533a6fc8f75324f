package pokedex

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pokemonAdded = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "pokedex_added_total",
		Help: "The total number of pokemon added to a pokedex",
	}, []string{"pokedex"})

	pokemonRejected = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "pokedex_rejected_total",
		Help: "The total number of pokemon rejected because an entry with the same name exists",
	}, []string{"pokedex"})

	pokedexEntries = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "pokedex_entries",
		Help: "The number of pokemon currently held by the pokedexes with this name",
	}, []string{"pokedex"})
)
