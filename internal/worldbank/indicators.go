package worldbank

import (
	_ "embed"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/nordicdata/econsync/pkg/errors"
)

//go:embed indicators.yaml
var indicatorsYAML []byte

// Indicators maps dataset fields to World Bank indicator codes and
// dataset country identifiers to ISO3 codes.
type Indicators struct {
	Indicators map[string]string `yaml:"indicators"`
	Countries  map[string]string `yaml:"countries"`
}

// LoadIndicators parses the embedded indicator mapping.
func LoadIndicators() (*Indicators, error) {
	var ind Indicators
	if err := yaml.Unmarshal(indicatorsYAML, &ind); err != nil {
		return nil, errors.NewConfigError("worldbank", "invalid indicator mapping", err)
	}
	if len(ind.Indicators) == 0 || len(ind.Countries) == 0 {
		return nil, errors.NewConfigError("worldbank", "indicator mapping is empty", nil)
	}
	return &ind, nil
}

// CountryIDs returns the known dataset country identifiers in sorted order.
func (ind *Indicators) CountryIDs() []string {
	ids := make([]string, 0, len(ind.Countries))
	for id := range ind.Countries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Fields returns the fetchable field names in sorted order.
func (ind *Indicators) Fields() []string {
	fields := make([]string, 0, len(ind.Indicators))
	for f := range ind.Indicators {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}
