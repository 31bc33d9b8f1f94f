// Package source defines the contract between econsync and external
// statistics providers.
package source

import (
	"context"
	"sort"
)

// Observation is a single fetched indicator value together with the year
// the statistics provider reported it for.
type Observation struct {
	Value any
	Year  int
}

// Result maps a country identifier to the fetched field observations.
type Result map[string]map[string]Observation

// Countries returns the result's country identifiers in sorted order.
func (r Result) Countries() []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Fields returns the fetched field names for a country in sorted order.
func (r Result) Fields(countryID string) []string {
	fields := make([]string, 0, len(r[countryID]))
	for f := range r[countryID] {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Client fetches current indicator values from a statistics provider.
// A nil or empty countryIDs slice requests all known countries.
type Client interface {
	FetchAll(ctx context.Context, countryIDs []string) (Result, error)
}
