// Package app provides the application context and dependency management
// for the citylib CLI. It follows idiomatic Go patterns for CLI applications
// by centralizing configuration, dependency injection, and lifecycle management.
package app

import (
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/citylib"
	"github.com/agentstation/citylib/internal/appcontext"
	"github.com/agentstation/citylib/internal/cmd/output"
	"github.com/agentstation/citylib/pkg/catalogs/files"
	"github.com/agentstation/citylib/pkg/errors"
)

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// App represents the citylib application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Library instance (lazy-initialized, singleton)
	mu      sync.RWMutex
	library citylib.Library
}

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
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

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format, falling back to
// terminal detection on w when none was set.
func (a *App) OutputFormat(w io.Writer) string {
	return string(output.DetectFormat(a.config.Format, w))
}

// Library returns the library instance, loading the data files the first
// time it is called. This is thread-safe and ensures only one instance is
// created.
func (a *App) Library() (citylib.Library, error) {
	a.mu.RLock()
	if a.library != nil {
		lib := a.library
		a.mu.RUnlock()
		return lib, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.library != nil {
		return a.library, nil
	}

	store, err := files.New(a.config.DataDir,
		files.WithBooksFile(a.config.BooksFile),
		files.WithMembersFile(a.config.MembersFile),
		files.WithLogger(a.logger),
	)
	if err != nil {
		return nil, errors.WrapResource("create", "store", a.config.DataDir, err)
	}

	lib, err := citylib.New(citylib.WithStore(store), citylib.WithLogger(a.logger))
	if err != nil {
		return nil, errors.WrapResource("create", "library", "", err)
	}

	a.library = lib
	return lib, nil
}

// Shutdown performs graceful shutdown of the application. If the library
// was opened it is closed, which saves the catalog one last time.
func (a *App) Shutdown(ctx context.Context) error {
	a.mu.RLock()
	lib := a.library
	a.mu.RUnlock()

	if lib == nil {
		return nil
	}
	if err := lib.Close(ctx); err != nil {
		a.logger.Error().Err(err).Msg("Failed to save catalog during shutdown")
		return err
	}
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithLibrary sets a custom library instance (useful for testing).
func WithLibrary(lib citylib.Library) Option {
	return func(a *App) error {
		a.library = lib
		return nil
	}
}
