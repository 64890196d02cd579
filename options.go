package citylib

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/citylib/pkg/catalogs"
	"github.com/agentstation/citylib/pkg/catalogs/files"
	"github.com/agentstation/citylib/pkg/constants"
	"github.com/agentstation/citylib/pkg/errors"
)

// options holds the configuration for a Library.
type options struct {
	dataDir  string
	store    *files.Store
	catalog  *catalogs.Catalog
	logger   *zerolog.Logger
	autoSave bool
}

// Option is a function that configures a Library instance.
type Option func(*options) error

// defaults returns the default library options.
func defaults() *options {
	return &options{
		dataDir:  constants.DefaultDataDir,
		autoSave: true,
	}
}

// apply applies the given options in order.
func (o *options) apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return err
		}
	}
	return nil
}

// WithDataDir sets the directory holding books.txt and members.txt.
func WithDataDir(dir string) Option {
	return func(o *options) error {
		if dir == "" {
			return errors.NewValidationError("data_dir", dir, "data directory is required")
		}
		o.dataDir = dir
		return nil
	}
}

// WithStore uses an already configured file store. It takes precedence
// over WithDataDir.
func WithStore(store *files.Store) Option {
	return func(o *options) error {
		o.store = store
		return nil
	}
}

// WithInMemory disables persistence entirely.
func WithInMemory() Option {
	return func(o *options) error {
		o.store = nil
		o.dataDir = ""
		return nil
	}
}

// WithCatalog starts from an existing catalog instead of loading the
// data files. Saves still go to the configured store.
func WithCatalog(catalog *catalogs.Catalog) Option {
	return func(o *options) error {
		o.catalog = catalog
		return nil
	}
}

// WithLogger sets the logger for the library and its store.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

// WithAutoSave controls whether each successful change is saved
// immediately. It is on by default.
func WithAutoSave(enabled bool) Option {
	return func(o *options) error {
		o.autoSave = enabled
		return nil
	}
}
