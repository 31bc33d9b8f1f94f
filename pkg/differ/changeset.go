// Package differ provides change detection between the stored dataset and
// freshly fetched indicator values.
package differ

import (
	"fmt"
	"strings"
)

// Change represents one detected discrepancy between the stored dataset
// and the fetch result. Old is nil when the field was previously absent.
type Change struct {
	Country string // Country identifier
	Field   string // Field name
	Old     any    // Stored value, nil if absent
	New     any    // Fetched value
	Year    int    // Source year reported by the provider
}

// Changeset represents all changes detected in a single run.
type Changeset struct {
	Changes []Change         // Ordered by country, then field
	Summary ChangesetSummary // Summary statistics
}

// ChangesetSummary provides summary statistics for a changeset.
type ChangesetSummary struct {
	FieldsChanged    int
	CountriesChanged int
	NewCountries     int
}

// HasChanges returns true if the changeset contains any changes.
func (c *Changeset) HasChanges() bool {
	return len(c.Changes) > 0
}

// IsEmpty returns true if the changeset contains no changes.
func (c *Changeset) IsEmpty() bool {
	return len(c.Changes) == 0
}

// String returns a human-readable summary of the changeset.
func (c *Changeset) String() string {
	if c.IsEmpty() {
		return "No changes detected"
	}

	parts := []string{
		fmt.Sprintf("%d field(s) changed", c.Summary.FieldsChanged),
		fmt.Sprintf("%d country/countries", c.Summary.CountriesChanged),
	}
	if c.Summary.NewCountries > 0 {
		parts = append(parts, fmt.Sprintf("%d new", c.Summary.NewCountries))
	}

	return fmt.Sprintf("Changeset: %s", strings.Join(parts, " across "))
}

// calculateSummary computes the summary for an ordered change list.
func calculateSummary(changes []Change, newCountries int) ChangesetSummary {
	countries := make(map[string]struct{})
	for _, ch := range changes {
		countries[ch.Country] = struct{}{}
	}

	return ChangesetSummary{
		FieldsChanged:    len(changes),
		CountriesChanged: len(countries),
		NewCountries:     newCountries,
	}
}
