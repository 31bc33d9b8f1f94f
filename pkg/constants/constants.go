// Package constants defines shared constants for the econsync system.
package constants

import "time"

// DefaultHTTPTimeout is the default timeout for statistics API requests.
const DefaultHTTPTimeout = 30 * time.Second

// UserAgent identifies econsync to the statistics API.
const UserAgent = "econsync/1.0"

// WorldBankAPIURL is the base URL of the World Bank v2 API.
const WorldBankAPIURL = "https://api.worldbank.org/v2"
