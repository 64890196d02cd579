// Package catalogs provides the in-memory library catalog: books, members
// and the category registry, together with the record codec used to store
// them as flat text lines and the query engine used to search and sort them.
//
// The Catalog owns every collection. Callers only ever receive copies, and
// all mutation goes through AddBook, AddMember, IssueBook, ReturnBook and
// the loader entry points PutBook and PutMember.
//
// Example usage:
//
//	cat := catalogs.New()
//	bookID := cat.AddBook("Dune", "Frank Herbert", "SciFi")
//	memberID := cat.AddMember("Alice", "alice@example.com")
//	if err := cat.IssueBook(bookID, memberID); err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, book := range cat.Sort(catalogs.SortCategory) {
//	    fmt.Println(book)
//	}
package catalogs

import (
	"sync"

	"github.com/agentstation/citylib/pkg/constants"
	"github.com/agentstation/citylib/pkg/errors"
)

// Compile-time interface checks to ensure proper implementation.
var (
	_ Store  = (*Catalog)(nil)
	_ Reader = (*Catalog)(nil)
	_ Writer = (*Catalog)(nil)
	_ Loader = (*Catalog)(nil)
)

// Catalog is the library's single source of truth.
// One RWMutex guards all three collections and both id counters, so the
// book/member invariants are never observable half-applied.
type Catalog struct {
	mu           sync.RWMutex
	books        *Books
	members      *Members
	categories   *Categories
	nextBookID   int
	nextMemberID int
}

// New creates an empty catalog with the given options applied.
func New(opts ...Option) *Catalog {
	options := catalogDefaults().apply(opts...)

	cat := &Catalog{
		books:        NewBooks(),
		members:      NewMembers(),
		categories:   NewCategories(),
		nextBookID:   options.firstBookID,
		nextMemberID: options.firstMemberID,
	}

	for _, book := range options.books {
		cat.PutBook(book)
	}
	for _, member := range options.members {
		cat.PutMember(member)
	}

	return cat
}

// AddBook shelves a new, unissued book and returns its id.
func (c *Catalog) AddBook(title, author, category string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextBookID
	c.nextBookID++

	book := Book{
		ID:       id,
		Title:    sanitizeField(title),
		Author:   sanitizeField(author),
		Category: sanitizeField(category),
	}
	c.books.Set(book)
	c.categories.Add(book.Category)
	return id
}

// AddMember registers a new member with no books and returns its id.
func (c *Catalog) AddMember(name, email string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextMemberID
	c.nextMemberID++

	c.members.Set(Member{
		ID:    id,
		Name:  sanitizeField(name),
		Email: sanitizeField(email),
	})
	return id
}

// IssueBook lends a shelved book to a member.
// Failures leave the catalog untouched and are reported as a book
// NotFoundError, an ErrAlreadyIssued CirculationError or a member
// NotFoundError, checked in that order.
func (c *Catalog) IssueBook(bookID, memberID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	book, ok := c.books.Get(bookID)
	if !ok {
		return errors.NewBookNotFoundError(bookID)
	}
	if book.Issued {
		return errors.NewCirculationError("issue", bookID, memberID, errors.ErrAlreadyIssued)
	}
	member, ok := c.members.Get(memberID)
	if !ok {
		return errors.NewMemberNotFoundError(memberID)
	}

	book.Issued = true
	member.addIssued(bookID)
	return nil
}

// ReturnBook takes a book back from the member holding it.
// Checks run in order: book exists, book is issued, member exists,
// member holds the book.
func (c *Catalog) ReturnBook(bookID, memberID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	book, ok := c.books.Get(bookID)
	if !ok {
		return errors.NewBookNotFoundError(bookID)
	}
	if !book.Issued {
		return errors.NewCirculationError("return", bookID, memberID, errors.ErrNotIssued)
	}
	member, ok := c.members.Get(memberID)
	if !ok {
		return errors.NewMemberNotFoundError(memberID)
	}
	if !member.Holds(bookID) {
		return errors.NewCirculationError("return", bookID, memberID, errors.ErrNotHeldByMember)
	}

	book.Issued = false
	member.removeIssued(bookID)
	return nil
}

// PutBook inserts a persisted book under its own id, replacing any book
// already stored with that id. The next book id becomes the largest
// stored id plus one, so book.ID must be below math.MaxInt as DecodeBook
// guarantees.
func (c *Catalog) PutBook(book Book) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.books.Set(book)
	c.categories.Add(book.Category)
	c.nextBookID = c.books.MaxID() + 1
}

// PutMember inserts a persisted member under its own id. Duplicate issued
// ids are collapsed. The next member id becomes the largest stored id plus one.
func (c *Catalog) PutMember(member Member) {
	c.mu.Lock()
	defer c.mu.Unlock()

	deduped := Member{ID: member.ID, Name: member.Name, Email: member.Email}
	for _, id := range member.IssuedBookIDs {
		deduped.addIssued(id)
	}
	c.members.Set(deduped)
	c.nextMemberID = c.members.MaxID() + 1
}

// Book returns a copy of the book with the given id.
func (c *Catalog) Book(id int) (Book, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	book, ok := c.books.Get(id)
	if !ok {
		return Book{}, errors.NewBookNotFoundError(id)
	}
	return *book, nil
}

// Member returns a copy of the member with the given id.
func (c *Catalog) Member(id int) (Member, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	member, ok := c.members.Get(id)
	if !ok {
		return Member{}, errors.NewMemberNotFoundError(id)
	}
	return member.clone(), nil
}

// ListBooks returns every book in ascending id order.
func (c *Catalog) ListBooks() []Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.books.List()
}

// ListMembers returns every member in ascending id order.
func (c *Catalog) ListMembers() []Member {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.members.List()
}

// Categories returns every category ever seen on a book, sorted.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.categories.List()
}

// NextBookID returns the id the next AddBook will assign.
func (c *Catalog) NextBookID() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nextBookID
}

// NextMemberID returns the id the next AddMember will assign.
func (c *Catalog) NextMemberID() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nextMemberID
}

// Snapshot is a consistent copy of the catalog taken under one lock.
type Snapshot struct {
	Books      []Book   `json:"books" yaml:"books"`
	Members    []Member `json:"members" yaml:"members"`
	Categories []string `json:"categories" yaml:"categories"`
}

// Snapshot copies books, members and categories in one critical section.
func (c *Catalog) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Snapshot{
		Books:      c.books.List(),
		Members:    c.members.List(),
		Categories: c.categories.List(),
	}
}

// catalogDefaults returns the default options for a catalog.
func catalogDefaults() *catalogOptions {
	return &catalogOptions{
		firstBookID:   constants.FirstBookID,
		firstMemberID: constants.FirstMemberID,
	}
}
