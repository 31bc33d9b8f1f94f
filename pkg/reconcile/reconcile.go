// Package reconcile merges fetched indicator values into the stored
// dataset, honoring the dataset's protected fields.
package reconcile

import (
	"github.com/nordicdata/econsync/pkg/dataset"
	"github.com/nordicdata/econsync/pkg/source"
)

// Apply merges the fetch result into the dataset. Countries absent from
// the dataset get an empty record first; each non-protected field is then
// assigned its fetched value, discarding the source year. The dataset is
// mutated and returned. Countries are never removed.
func Apply(ds dataset.Dataset, fetched source.Result) dataset.Dataset {
	for countryID, fields := range fetched {
		record, ok := ds[countryID]
		if !ok {
			record = dataset.Record{}
			ds[countryID] = record
		}

		for field, obs := range fields {
			if dataset.Protected(field) {
				continue
			}
			record[field] = obs.Value
		}
	}

	return ds
}
