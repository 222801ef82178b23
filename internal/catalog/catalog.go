// Package catalog holds the built-in BSA Cub Scout rank catalogs used to
// seed a new den's Requirement_Key.csv. Seeded catalogs stay editable after
// init; the derivation engine never depends on this data directly.
package catalog

import (
	"strings"

	"github.com/dentrack/dentrack-go/internal/store"
)

// MinElectiveAdventures is how many elective adventures a scout must
// complete in addition to all required adventures. Every Cub Scout rank
// uses the same minimum.
const MinElectiveAdventures = 2

// Ranks lists the ranks with a built-in catalog, youngest first.
func Ranks() []string {
	return []string{"lion", "tiger", "wolf", "bear", "webelos"}
}

// ForRank returns a fresh copy of the named rank's catalog. Rank names are
// matched case-insensitively; ok is false when no built-in catalog exists
// for the name.
func ForRank(rank string) (reqs []store.Requirement, ok bool) {
	switch strings.ToLower(strings.TrimSpace(rank)) {
	case "lion":
		return copyOf(lionCatalog), true
	case "tiger":
		return copyOf(tigerCatalog), true
	case "wolf":
		return copyOf(wolfCatalog), true
	case "bear":
		return copyOf(bearCatalog), true
	case "webelos":
		return copyOf(webelosCatalog), true
	}
	return nil, false
}

func copyOf(reqs []store.Requirement) []store.Requirement {
	return append([]store.Requirement{}, reqs...)
}
