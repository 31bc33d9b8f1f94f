// Package worldbank implements the statistics source.Client against the
// World Bank v2 API.
package worldbank

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/nordicdata/econsync/internal/transport"
	"github.com/nordicdata/econsync/pkg/constants"
	"github.com/nordicdata/econsync/pkg/errors"
	"github.com/nordicdata/econsync/pkg/logging"
	"github.com/nordicdata/econsync/pkg/source"
)

const sourceName = "worldbank"

// observation is a single data point in a World Bank API response.
type observation struct {
	Indicator struct {
		ID    string `json:"id"`
		Value string `json:"value"`
	} `json:"indicator"`
	CountryISO3Code string   `json:"countryiso3code"`
	Date            string   `json:"date"`
	Value           *float64 `json:"value"`
}

// Client fetches indicator values from the World Bank v2 API.
// It implements source.Client.
type Client struct {
	baseURL    string
	transport  *transport.Client
	indicators *Indicators
}

// Option is a functional option for configuring the client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used for testing and mirrors.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithIndicators overrides the embedded indicator mapping.
func WithIndicators(ind *Indicators) Option {
	return func(c *Client) {
		c.indicators = ind
	}
}

// New creates a World Bank client with the embedded indicator mapping.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:   constants.WorldBankAPIURL,
		transport: transport.New(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.indicators == nil {
		ind, err := LoadIndicators()
		if err != nil {
			return nil, err
		}
		c.indicators = ind
	}

	return c, nil
}

// FetchAll fetches the most recent non-empty value for every mapped
// indicator. A nil or empty countryIDs slice fetches all known countries.
// Requests run sequentially, one per country and indicator.
func (c *Client) FetchAll(ctx context.Context, countryIDs []string) (source.Result, error) {
	if len(countryIDs) == 0 {
		countryIDs = c.indicators.CountryIDs()
	}

	result := make(source.Result, len(countryIDs))

	for _, id := range countryIDs {
		iso3, ok := c.indicators.Countries[id]
		if !ok {
			return nil, errors.NewValidationError("countries", id, "unknown country identifier")
		}

		fields, err := c.fetchCountry(ctx, id, iso3)
		if err != nil {
			return nil, err
		}
		result[id] = fields
	}

	return result, nil
}

// fetchCountry fetches every mapped indicator for one country.
func (c *Client) fetchCountry(ctx context.Context, id, iso3 string) (map[string]source.Observation, error) {
	log := logging.Ctx(ctx)
	fields := make(map[string]source.Observation, len(c.indicators.Indicators))

	for _, field := range c.indicators.Fields() {
		code := c.indicators.Indicators[field]

		obs, found, err := c.fetchIndicator(ctx, iso3, code)
		if err != nil {
			return nil, err
		}
		if !found {
			log.Debug().Str("country", id).Str("field", field).Msg("no observation reported")
			continue
		}

		fields[field] = obs
	}

	return fields, nil
}

// fetchIndicator fetches the most recent non-empty observation for one
// country and indicator pair.
func (c *Client) fetchIndicator(ctx context.Context, iso3, code string) (source.Observation, bool, error) {
	url := fmt.Sprintf("%s/country/%s/indicator/%s?format=json&per_page=1&mrnev=1", c.baseURL, iso3, code)

	resp, err := c.transport.Get(ctx, url)
	if err != nil {
		return source.Observation{}, false, &errors.APIError{
			Source:   sourceName,
			Endpoint: url,
			Message:  "request failed",
			Err:      err,
		}
	}

	// The v2 API answers with a two-element array: paging metadata
	// followed by the observation list.
	var envelope []json.RawMessage
	if err := transport.DecodeResponse(resp, sourceName, &envelope); err != nil {
		return source.Observation{}, false, err
	}
	if len(envelope) < 2 {
		return source.Observation{}, false, errors.NewParseError("json", url, "unexpected response envelope", nil)
	}

	var observations []observation
	if err := json.Unmarshal(envelope[1], &observations); err != nil {
		return source.Observation{}, false, errors.WrapParse("json", url, err)
	}

	for _, obs := range observations {
		if obs.Value == nil {
			continue
		}
		year, err := strconv.Atoi(obs.Date)
		if err != nil {
			// Quarterly or range dates are not modeled in the dataset.
			continue
		}
		return source.Observation{Value: *obs.Value, Year: year}, true, nil
	}

	return source.Observation{}, false, nil
}
