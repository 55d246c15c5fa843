package services

import (
	"cmp"
	"slices"

	"logistics/internal/core/domain/model/stop"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FallbackOrderer sorts stops that cannot be placed geographically: by zone name, then
// by destination address. Both comparisons ignore case and accents; addresses also
// compare embedded numbers by value, so "Calle 2" sorts before "Calle 10". A missing
// zone sorts as the empty name, ahead of every named zone.
//
// Stops that still compare equal are ordered by their raw zone and address text and
// finally by id, so the result never depends on input order.
type FallbackOrderer struct {
	locale language.Tag
}

// NewFallbackOrderer returns an orderer collating for locale. language.Und selects the
// root collation.
func NewFallbackOrderer(locale language.Tag) FallbackOrderer {
	return FallbackOrderer{locale: locale}
}

// Order returns a sorted copy of stops. The input slice is not modified.
func (o FallbackOrderer) Order(stops []*stop.Stop) []*stop.Stop {
	// Collators keep internal buffers and cannot be shared across goroutines.
	zones := collate.New(o.locale, collate.Loose)
	addresses := collate.New(o.locale, collate.Loose, collate.Numeric)

	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, func(a, b *stop.Stop) int {
		if c := zones.CompareString(a.ZoneName(), b.ZoneName()); c != 0 {
			return c
		}
		if c := addresses.CompareString(a.Address(), b.Address()); c != 0 {
			return c
		}
		if c := cmp.Compare(a.ZoneName(), b.ZoneName()); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Address(), b.Address()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID(), b.ID())
	})
	return sorted
}
