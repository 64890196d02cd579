// Package constants provides shared constants used throughout the citylib codebase.
// This includes file names, id seeds, file permissions and timeouts that
// should be consistent across the catalog store, persistence and CLI.
package constants

import "time"

// Catalog file constants
const (
	// BooksFile is the flat file holding one book record per line
	BooksFile = "books.txt"

	// MembersFile is the flat file holding one member record per line
	MembersFile = "members.txt"

	// DefaultDataDir is the directory the catalog files live in when none is configured
	DefaultDataDir = "."

	// RecordSeparator separates fields inside a single record line
	RecordSeparator = "|"

	// IDListSeparator separates issued book ids inside a member record
	IDListSeparator = ","
)

// Identifier constants
const (
	// FirstBookID is the id assigned to the first book of an empty catalog
	FirstBookID = 101

	// FirstMemberID is the id assigned to the first member of an empty catalog
	FirstMemberID = 201
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Timeout constants
const (
	// ShutdownTimeout bounds the final save performed on exit
	ShutdownTimeout = 5 * time.Second
)

// Path constants
const (
	// ConfigFileName is the base name of the optional config file (without extension)
	ConfigFileName = ".citylib"

	// EnvPrefix is the prefix for environment variables read by viper
	EnvPrefix = "CITYLIB"
)
