package citylib

import (
	"github.com/agentstation/citylib/pkg/catalogs"
)

// Catalog provides read access to the library's data. Every result is a
// copy.
type Catalog interface {
	Book(id int) (catalogs.Book, error)
	Member(id int) (catalogs.Member, error)
	Books() []catalogs.Book
	Members() []catalogs.Member
	Categories() []string
	Search(field catalogs.SearchField, term string) []catalogs.Book
	Sort(key catalogs.SortKey) []catalogs.Book
	Verify() error

	// ReadOnly returns a view of the catalog with no mutating methods.
	ReadOnly() catalogs.ReadOnly
}

// Book returns a copy of the book with the given id.
func (c *client) Book(id int) (catalogs.Book, error) { return c.catalog.Book(id) }

// Member returns a copy of the member with the given id.
func (c *client) Member(id int) (catalogs.Member, error) { return c.catalog.Member(id) }

// Books returns every book in ascending id order.
func (c *client) Books() []catalogs.Book { return c.catalog.ListBooks() }

// Members returns every member in ascending id order.
func (c *client) Members() []catalogs.Member { return c.catalog.ListMembers() }

// Categories returns every category ever recorded, sorted.
func (c *client) Categories() []string { return c.catalog.Categories() }

// Search returns books whose field contains term, ignoring case.
func (c *client) Search(field catalogs.SearchField, term string) []catalogs.Book {
	return c.catalog.Search(field, term)
}

// Sort returns all books ordered by key.
func (c *client) Sort(key catalogs.SortKey) []catalogs.Book { return c.catalog.Sort(key) }

// Verify checks the issued flags against the members' issued lists.
func (c *client) Verify() error { return c.catalog.Verify() }

// ReadOnly returns a read-only view of the live catalog.
func (c *client) ReadOnly() catalogs.ReadOnly { return catalogs.NewReadOnly(c.catalog) }
