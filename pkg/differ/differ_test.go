package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordicdata/econsync/pkg/dataset"
	"github.com/nordicdata/econsync/pkg/source"
)

func TestChangesDetectsUpdatedField(t *testing.T) {
	existing := dataset.Dataset{"NOR": {"gdp": 100.0}}
	fetched := source.Result{"NOR": {"gdp": {Value: 120.0, Year: 2023}}}

	cs := New().Changes(existing, fetched)

	require.Len(t, cs.Changes, 1)
	assert.Equal(t, Change{Country: "NOR", Field: "gdp", Old: 100.0, New: 120.0, Year: 2023}, cs.Changes[0])
	assert.True(t, cs.HasChanges())
}

func TestChangesSkipsProtectedFields(t *testing.T) {
	existing := dataset.Dataset{"NOR": {"revenue": 50.0}}
	fetched := source.Result{"NOR": {"revenue": {Value: 999.0, Year: 2023}}}

	cs := New().Changes(existing, fetched)

	assert.True(t, cs.IsEmpty())
	assert.Equal(t, "No changes detected", cs.String())
}

func TestChangesEqualValuesProduceNoRecord(t *testing.T) {
	existing := dataset.Dataset{"NOR": {"gdp": 100.0}}
	fetched := source.Result{"NOR": {"gdp": {Value: 100.0, Year: 2023}}}

	cs := New().Changes(existing, fetched)
	assert.True(t, cs.IsEmpty())
}

func TestChangesAbsentOldValue(t *testing.T) {
	existing := dataset.Dataset{"NOR": {}}
	fetched := source.Result{"NOR": {"inflation": {Value: 3.2, Year: 2024}}}

	cs := New().Changes(existing, fetched)

	require.Len(t, cs.Changes, 1)
	assert.Nil(t, cs.Changes[0].Old)
	assert.Equal(t, 3.2, cs.Changes[0].New)
}

func TestChangesNewCountry(t *testing.T) {
	existing := dataset.Dataset{}
	fetched := source.Result{"ISL": {"gdp": {Value: 28.0, Year: 2023}}}

	cs := New().Changes(existing, fetched)

	require.Len(t, cs.Changes, 1)
	assert.Equal(t, "ISL", cs.Changes[0].Country)
	assert.Equal(t, 1, cs.Summary.NewCountries)
}

func TestChangesOrderedByCountryThenField(t *testing.T) {
	existing := dataset.Dataset{}
	fetched := source.Result{
		"SWE": {
			"unemployment": {Value: 8.4, Year: 2024},
			"gdp":          {Value: 593.0, Year: 2023},
		},
		"DNK": {
			"gdp": {Value: 404.0, Year: 2023},
		},
	}

	cs := New().Changes(existing, fetched)

	require.Len(t, cs.Changes, 3)
	assert.Equal(t, "DNK", cs.Changes[0].Country)
	assert.Equal(t, "SWE", cs.Changes[1].Country)
	assert.Equal(t, "gdp", cs.Changes[1].Field)
	assert.Equal(t, "unemployment", cs.Changes[2].Field)
}

func TestChangesDoesNotMutateInputs(t *testing.T) {
	existing := dataset.Dataset{"NOR": {"gdp": 100.0}}
	fetched := source.Result{"NOR": {"gdp": {Value: 120.0, Year: 2023}}}

	New().Changes(existing, fetched)

	assert.Equal(t, 100.0, existing["NOR"]["gdp"])
	assert.Equal(t, 120.0, fetched["NOR"]["gdp"].Value)
}

func TestWithIgnoredFields(t *testing.T) {
	existing := dataset.Dataset{"NOR": {"gdp": 100.0}}
	fetched := source.Result{"NOR": {"gdp": {Value: 120.0, Year: 2023}}}

	cs := New(WithIgnoredFields("gdp")).Changes(existing, fetched)
	assert.True(t, cs.IsEmpty())
}

func TestChangesetSummary(t *testing.T) {
	existing := dataset.Dataset{"NOR": {"gdp": 100.0}}
	fetched := source.Result{
		"NOR": {"gdp": {Value: 120.0, Year: 2023}, "inflation": {Value: 3.1, Year: 2024}},
		"FIN": {"gdp": {Value: 280.0, Year: 2023}},
	}

	cs := New().Changes(existing, fetched)

	assert.Equal(t, 3, cs.Summary.FieldsChanged)
	assert.Equal(t, 2, cs.Summary.CountriesChanged)
	assert.Equal(t, 1, cs.Summary.NewCountries)
	assert.Contains(t, cs.String(), "3 field(s) changed")
}
