package catalogs

import (
	"fmt"
	"strings"
)

// Book is a single title on the library's shelves.
// A book is Issued iff exactly one Member holds its ID.
type Book struct {
	ID       int    `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Author   string `json:"author" yaml:"author"`
	Category string `json:"category" yaml:"category"`
	Issued   bool   `json:"issued" yaml:"issued"`
}

// String renders the book the way the terminal lists it.
func (b Book) String() string {
	return fmt.Sprintf("ID:%d | %s | %s | %s | Issued:%t", b.ID, b.Title, b.Author, b.Category, b.Issued)
}

// Member is a registered borrower.
type Member struct {
	ID            int    `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	Email         string `json:"email" yaml:"email"`
	IssuedBookIDs []int  `json:"issued_book_ids" yaml:"issued_book_ids"`
}

// Holds reports whether the member currently has the book.
func (m Member) Holds(bookID int) bool {
	for _, id := range m.IssuedBookIDs {
		if id == bookID {
			return true
		}
	}
	return false
}

// String renders the member the way the terminal lists it.
func (m Member) String() string {
	ids := make([]string, len(m.IssuedBookIDs))
	for i, id := range m.IssuedBookIDs {
		ids[i] = fmt.Sprint(id)
	}
	return fmt.Sprintf("ID:%d | %s | %s | Issued:[%s]", m.ID, m.Name, m.Email, strings.Join(ids, ", "))
}

// clone returns a copy that shares no memory with m.
func (m Member) clone() Member {
	if m.IssuedBookIDs != nil {
		m.IssuedBookIDs = append([]int(nil), m.IssuedBookIDs...)
	}
	return m
}

// addIssued appends bookID unless it is already held.
func (m *Member) addIssued(bookID int) {
	if m.Holds(bookID) {
		return
	}
	m.IssuedBookIDs = append(m.IssuedBookIDs, bookID)
}

// removeIssued drops bookID, keeping the order of the remaining ids.
func (m *Member) removeIssued(bookID int) {
	kept := m.IssuedBookIDs[:0]
	for _, id := range m.IssuedBookIDs {
		if id != bookID {
			kept = append(kept, id)
		}
	}
	m.IssuedBookIDs = kept
}

// sanitizeField trims surrounding whitespace and replaces characters that
// would break the one-record-per-line file format.
func sanitizeField(s string) string {
	s = strings.NewReplacer("|", " ", "\r", " ", "\n", " ").Replace(s)
	return strings.TrimSpace(s)
}
