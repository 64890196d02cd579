package catalogs

// NewReadOnly creates a read-only view of an existing catalog.
// The view exposes no mutating methods, so it can be handed to export
// and reporting code without risking a write.
//
// Example:
//
//	view := NewReadOnly(cat)
//	for _, book := range view.Sort(SortAuthor) {
//	    fmt.Println(book)
//	}
func NewReadOnly(source Store) ReadOnly {
	return &readonly{source: source}
}

// ReadOnly is a Reader that can also verify the catalog.
type ReadOnly interface {
	Reader
	Verify() error
}

// Compile-time interface checks for readonly.
var (
	_ Reader   = (*readonly)(nil)
	_ ReadOnly = (*readonly)(nil)
)

// readonly wraps a catalog to make it read-only.
type readonly struct {
	source Store
}

// Book implements Reader.
func (r *readonly) Book(id int) (Book, error) { return r.source.Book(id) }

// Member implements Reader.
func (r *readonly) Member(id int) (Member, error) { return r.source.Member(id) }

// ListBooks implements Reader.
func (r *readonly) ListBooks() []Book { return r.source.ListBooks() }

// ListMembers implements Reader.
func (r *readonly) ListMembers() []Member { return r.source.ListMembers() }

// Categories implements Reader.
func (r *readonly) Categories() []string { return r.source.Categories() }

// Search implements Reader.
func (r *readonly) Search(field SearchField, term string) []Book {
	return r.source.Search(field, term)
}

// Sort implements Reader.
func (r *readonly) Sort(key SortKey) []Book { return r.source.Sort(key) }

// Snapshot implements Reader.
func (r *readonly) Snapshot() Snapshot { return r.source.Snapshot() }

// Verify implements ReadOnly.
func (r *readonly) Verify() error { return r.source.Verify() }
