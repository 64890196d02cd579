package catalogs

import (
	"maps"
	"slices"
)

// Books is an id-keyed collection of books.
// Books is not safe for concurrent use; Catalog serializes access to it.
type Books struct {
	books map[int]*Book
	maxID int
}

// BooksOption defines a function that configures a Books instance.
type BooksOption func(*Books)

// WithBooksCapacity sets the initial capacity of the books map.
func WithBooksCapacity(capacity int) BooksOption {
	return func(b *Books) {
		b.books = make(map[int]*Book, capacity)
	}
}

// NewBooks creates a new Books collection with optional configuration.
func NewBooks(opts ...BooksOption) *Books {
	b := &Books{
		books: make(map[int]*Book),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Get returns a book by id and whether it exists.
func (b *Books) Get(id int) (*Book, bool) {
	book, ok := b.books[id]
	return book, ok
}

// Set stores a copy of book under its id, replacing any previous entry.
func (b *Books) Set(book Book) {
	b.books[book.ID] = &book
	if len(b.books) == 1 || book.ID > b.maxID {
		b.maxID = book.ID
	}
}

// Exists checks if a book exists without returning it.
func (b *Books) Exists(id int) bool {
	_, ok := b.books[id]
	return ok
}

// Len returns the number of books.
func (b *Books) Len() int {
	return len(b.books)
}

// MaxID returns the largest id in the collection, or 0 when it is empty.
func (b *Books) MaxID() int {
	return b.maxID
}

// IDs returns all book ids in ascending order.
func (b *Books) IDs() []int {
	return slices.Sorted(maps.Keys(b.books))
}

// List returns copies of all books in ascending id order.
func (b *Books) List() []Book {
	list := make([]Book, 0, len(b.books))
	for _, id := range b.IDs() {
		list = append(list, *b.books[id])
	}
	return list
}
