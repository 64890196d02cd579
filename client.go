// Package citylib provides the main entry point for the City Library
// catalog. It wraps the in-memory catalog with write-through persistence
// to the flat books and members files, and with event hooks fired after
// each successful change.
//
// Every mutating call first applies the change in memory and then saves
// the whole catalog. A failed save is logged and returned, but the change
// itself stands, so the caller can retry with Save.
//
// Example usage:
//
//	lib, err := citylib.New(citylib.WithDataDir("./data"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer lib.Close(ctx)
//
//	lib.OnBookIssued(func(book catalogs.Book, member catalogs.Member) {
//	    log.Printf("%s borrowed %s", member.Name, book.Title)
//	})
//
//	bookID, _ := lib.AddBook(ctx, "Dune", "Frank Herbert", "SciFi")
//	memberID, _ := lib.AddMember(ctx, "Alice", "alice@example.com")
//	if err := lib.IssueBook(ctx, bookID, memberID); err != nil {
//	    log.Fatal(err)
//	}
package citylib

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/citylib/pkg/catalogs"
	"github.com/agentstation/citylib/pkg/catalogs/files"
	"github.com/agentstation/citylib/pkg/errors"
	"github.com/agentstation/citylib/pkg/logging"
)

// Compile-time interface check to ensure proper implementation.
var _ Library = (*client)(nil)

// Library manages a catalog with write-through persistence and event hooks.
type Library interface {

	// Catalog provides read access to books, members and categories
	Catalog

	// Circulation handles additions, issues and returns
	Circulation

	// Persistence handles saving the catalog
	Persistence

	// Hooks provides access to event callback registration
	Hooks
}

// client is the internal implementation of the Library interface.
type client struct {

	// options are the configured options for the client
	options *options

	// catalog is the single source of truth; store may be nil for an
	// in-memory library
	catalog *catalogs.Catalog
	store   *files.Store
	logger  *zerolog.Logger

	mu     sync.Mutex // guards closed and dirty, serializes saves
	closed bool
	dirty  bool // a change has not reached the data files

	hooks *hooks
}

// New creates a new Library with the given options. Unless a catalog is
// supplied with WithCatalog, the data files are loaded from the store.
func New(opts ...Option) (Library, error) {
	o := defaults()
	if err := o.apply(opts...); err != nil {
		return nil, errors.WrapResource("create", "library", "", err)
	}

	logger := o.logger
	if logger == nil {
		logger = logging.Default()
	}

	c := &client{
		options: o,
		logger:  logger,
		hooks:   newHooks(),
	}

	store := o.store
	if store == nil && o.dataDir != "" {
		var err error
		store, err = files.New(o.dataDir, files.WithLogger(logger))
		if err != nil {
			return nil, errors.WrapResource("create", "store", o.dataDir, err)
		}
	}
	c.store = store

	switch {
	case o.catalog != nil:
		c.catalog = o.catalog
	case store != nil:
		cat, err := store.Load(context.Background())
		if err != nil {
			return nil, errors.WrapResource("load", "catalog", store.Dir(), err)
		}
		c.catalog = cat
	default:
		c.catalog = catalogs.New()
	}

	return c, nil
}
