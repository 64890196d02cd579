package catalogs

// Reader provides read-only access to catalog data.
type Reader interface {
	// Gets a book or member by id
	Book(id int) (Book, error)
	Member(id int) (Member, error)

	// Lists books and members in ascending id order
	ListBooks() []Book
	ListMembers() []Member
	Categories() []string

	// Query engine over a snapshot of the books
	Search(field SearchField, term string) []Book
	Sort(key SortKey) []Book

	// Consistent copy of everything
	Snapshot() Snapshot
}

// Writer provides the mutating catalog operations.
type Writer interface {
	AddBook(title, author, category string) int
	AddMember(name, email string) int
	IssueBook(bookID, memberID int) error
	ReturnBook(bookID, memberID int) error
}

// Loader inserts persisted records under their stored ids.
type Loader interface {
	PutBook(book Book)
	PutMember(member Member)
}

// Store is the complete interface combining all catalog capabilities.
type Store interface {
	Reader
	Writer
	Loader
	Verify() error
}
