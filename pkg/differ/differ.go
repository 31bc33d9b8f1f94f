package differ

import (
	"reflect"

	"github.com/nordicdata/econsync/pkg/dataset"
	"github.com/nordicdata/econsync/pkg/source"
)

// Differ handles change detection between the dataset and a fetch result.
type Differ interface {
	// Changes compares fetched values to stored values field-by-field,
	// skipping protected fields, and returns an ordered changeset.
	// Neither input is mutated.
	Changes(existing dataset.Dataset, fetched source.Result) *Changeset
}

// differ is the default implementation of Differ.
type differ struct {
	ignoreFields map[string]bool
}

// New creates a new Differ with default settings.
func New(opts ...Option) Differ {
	d := &differ{
		ignoreFields: make(map[string]bool),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Changes compares fetched values to stored values and returns a changeset.
// Countries and fields iterate in sorted order for deterministic output.
func (d *differ) Changes(existing dataset.Dataset, fetched source.Result) *Changeset {
	changes := []Change{}
	newCountries := 0

	for _, countryID := range fetched.Countries() {
		record, known := existing[countryID]
		if !known {
			newCountries++
		}

		for _, field := range fetched.Fields(countryID) {
			if dataset.Protected(field) || d.ignoreFields[field] {
				continue
			}

			obs := fetched[countryID][field]
			old, present := record[field]
			if present && equal(old, obs.Value) {
				continue
			}

			changes = append(changes, Change{
				Country: countryID,
				Field:   field,
				Old:     old, // nil when absent
				New:     obs.Value,
				Year:    obs.Year,
			})
		}
	}

	return &Changeset{
		Changes: changes,
		Summary: calculateSummary(changes, newCountries),
	}
}

// equal compares two stored/fetched values. Values are JSON scalars, but
// DeepEqual keeps the comparison safe should a list ever slip through.
func equal(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
