// Package appcontext provides the shared application context interface
// used by all commands. This eliminates interface duplication across
// command packages and provides a single source of truth for app dependencies.
package appcontext

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/citylib"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/citylib/app implements this interface, providing
// dependency injection for commands while maintaining testability.
//
// Commands should accept this interface rather than the concrete App type,
// allowing for easier testing with mock implementations.
type Interface interface {
	// Library returns the shared library instance, loading the data
	// files on first use.
	Library() (citylib.Library, error)

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the output format (table, json, yaml, markdown)
	// for command output written to w.
	OutputFormat(w io.Writer) string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
