// Package app provides the application context and dependency management
// for the econsync CLI. It centralizes configuration, logging, and the
// statistics client behind a single App value.
package app

import (
	"github.com/rs/zerolog"

	"github.com/nordicdata/econsync/internal/worldbank"
	"github.com/nordicdata/econsync/pkg/errors"
	"github.com/nordicdata/econsync/pkg/source"
)

// App represents the econsync application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Statistics client (lazy-initialized unless injected)
	source source.Client
}

// Option customizes an App during construction.
type Option func(*App) error

// WithSource injects a statistics client, replacing the default World
// Bank client. Used by tests.
func WithSource(client source.Client) Option {
	return func(a *App) error {
		a.source = client
		return nil
	}
}

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "failed to load configuration", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Source returns the statistics client, creating the World Bank client
// lazily if none was injected.
func (a *App) Source() (source.Client, error) {
	if a.source != nil {
		return a.source, nil
	}

	var opts []worldbank.Option
	if a.config.APIURL != "" {
		opts = append(opts, worldbank.WithBaseURL(a.config.APIURL))
	}

	client, err := worldbank.New(opts...)
	if err != nil {
		return nil, err
	}
	a.source = client
	return client, nil
}
