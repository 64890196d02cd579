package files

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/citylib/pkg/errors"
)

// Option is a function that configures a Store.
type Option func(*config) error

// WithBooksFile overrides the books file name inside the data directory.
func WithBooksFile(name string) Option {
	return func(cfg *config) error {
		if name == "" {
			return errors.NewValidationError("books_file", name, "file name is required")
		}
		cfg.booksFile = name
		return nil
	}
}

// WithMembersFile overrides the members file name inside the data directory.
func WithMembersFile(name string) Option {
	return func(cfg *config) error {
		if name == "" {
			return errors.NewValidationError("members_file", name, "file name is required")
		}
		cfg.membersFile = name
		return nil
	}
}

// WithLogger sets the logger used for load and save diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(cfg *config) error {
		cfg.logger = logger
		return nil
	}
}

// config is the configuration for a Store
type config struct {
	booksFile   string
	membersFile string
	logger      *zerolog.Logger
}
