package catalogs

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// SearchField selects which book field a search matches against.
type SearchField int

const (
	// SearchAny matches title, author or category.
	SearchAny SearchField = iota
	// SearchTitle matches the title only.
	SearchTitle
	// SearchAuthor matches the author only.
	SearchAuthor
	// SearchCategory matches the category only.
	SearchCategory
)

// String returns the lower-case name of the field.
func (f SearchField) String() string {
	switch f {
	case SearchTitle:
		return "title"
	case SearchAuthor:
		return "author"
	case SearchCategory:
		return "category"
	default:
		return "any"
	}
}

// ParseSearchField maps a menu digit (1-3) or a field name to a
// SearchField. Anything unrecognized searches all fields.
func ParseSearchField(s string) SearchField {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "title":
		return SearchTitle
	case "2", "author":
		return SearchAuthor
	case "3", "category":
		return SearchCategory
	default:
		return SearchAny
	}
}

// SortKey selects the ordering produced by Sort.
type SortKey int

const (
	// SortTitle orders by title.
	SortTitle SortKey = iota
	// SortAuthor orders by author.
	SortAuthor
	// SortCategory orders by category, then title.
	SortCategory
)

// String returns the lower-case name of the key.
func (k SortKey) String() string {
	switch k {
	case SortAuthor:
		return "author"
	case SortCategory:
		return "category"
	default:
		return "title"
	}
}

// ParseSortKey maps a menu digit (1-3) or a key name to a SortKey.
// Anything unrecognized sorts by title.
func ParseSortKey(s string) SortKey {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "2", "author":
		return SortAuthor
	case "3", "category":
		return SortCategory
	default:
		return SortTitle
	}
}

// Search returns the books whose selected field contains term, ignoring
// case, in ascending id order.
func (c *Catalog) Search(field SearchField, term string) []Book {
	return SearchBooks(c.ListBooks(), field, term)
}

// Sort returns every book ordered by key. The stored order is unchanged.
func (c *Catalog) Sort(key SortKey) []Book {
	return SortBooks(c.ListBooks(), key)
}

// SearchBooks filters books, preserving their order. An empty term matches
// every book.
func SearchBooks(books []Book, field SearchField, term string) []Book {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(term))

	contains := func(s string) bool {
		return strings.Contains(fold.String(s), needle)
	}

	matches := make([]Book, 0, len(books))
	for _, book := range books {
		var match bool
		switch field {
		case SearchTitle:
			match = contains(book.Title)
		case SearchAuthor:
			match = contains(book.Author)
		case SearchCategory:
			match = contains(book.Category)
		default:
			match = contains(book.Title) || contains(book.Author) || contains(book.Category)
		}
		if match {
			matches = append(matches, book)
		}
	}
	return matches
}

// SortBooks returns a sorted copy of books. Ordering is case-insensitive
// and stable, so equal keys keep their incoming relative order.
func SortBooks(books []Book, key SortKey) []Book {
	fold := cases.Fold()

	type keyed struct {
		book      Book
		primary   string
		secondary string
	}

	rows := make([]keyed, len(books))
	for i, book := range books {
		row := keyed{book: book}
		switch key {
		case SortAuthor:
			row.primary = fold.String(book.Author)
		case SortCategory:
			row.primary = fold.String(book.Category)
			row.secondary = fold.String(book.Title)
		default:
			row.primary = fold.String(book.Title)
		}
		rows[i] = row
	}

	slices.SortStableFunc(rows, func(a, b keyed) int {
		if c := strings.Compare(a.primary, b.primary); c != 0 {
			return c
		}
		return strings.Compare(a.secondary, b.secondary)
	})

	sorted := make([]Book, len(rows))
	for i, row := range rows {
		sorted[i] = row.book
	}
	return sorted
}
