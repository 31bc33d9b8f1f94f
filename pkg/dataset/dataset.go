// Package dataset provides the in-memory representation of the per-country
// economics dataset and its JSON persistence.
package dataset

import (
	"bytes"
	"encoding/json"
	"os"
	"sort"

	"github.com/nordicdata/econsync/pkg/errors"
)

// DefaultPath is the dataset location relative to the project root.
const DefaultPath = "data/economics.json"

// filePermissions is the mode used when writing the dataset file.
const filePermissions = 0o644

// Record holds the named indicator fields for a single country.
// Values are JSON scalars (numbers or strings).
type Record map[string]any

// Dataset maps a country identifier to its indicator record.
type Dataset map[string]Record

// protectedFields are never overwritten by automated update.
// They are curated by hand in the dataset file.
var protectedFields = map[string]struct{}{
	"revenue":     {},
	"expenditure": {},
	"top_exports": {},
}

// Protected reports whether a field is excluded from automated update.
func Protected(field string) bool {
	_, ok := protectedFields[field]
	return ok
}

// ProtectedFields returns the protected field names in sorted order.
func ProtectedFields() []string {
	fields := make([]string, 0, len(protectedFields))
	for f := range protectedFields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Load reads a dataset from a UTF-8 JSON file.
func Load(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}

	return ds, nil
}

// Save writes the dataset as pretty-printed JSON with 2-space indentation
// and a trailing newline. Map keys serialize in sorted order.
func (ds Dataset) Save(path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(ds); err != nil {
		return errors.WrapParse("json", path, err)
	}

	// Encoder already appends the trailing newline.
	if err := os.WriteFile(path, buf.Bytes(), filePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}

	return nil
}

// Countries returns the dataset's country identifiers in sorted order.
func (ds Dataset) Countries() []string {
	ids := make([]string, 0, len(ds))
	for id := range ds {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Copy returns a deep copy of the dataset.
func (ds Dataset) Copy() Dataset {
	out := make(Dataset, len(ds))
	for id, rec := range ds {
		cp := make(Record, len(rec))
		for field, value := range rec {
			cp[field] = value
		}
		out[id] = cp
	}
	return out
}

// Validate checks that every record holds only scalar field values.
// Protected fields are exempt: top_exports is a curated list.
func (ds Dataset) Validate() error {
	for _, id := range ds.Countries() {
		for field, value := range ds[id] {
			if Protected(field) {
				continue
			}
			switch value.(type) {
			case nil, string, bool, float64, json.Number:
			default:
				return errors.NewValidationError(field, value, "non-scalar value for country "+id)
			}
		}
	}
	return nil
}
