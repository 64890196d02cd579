package catalogs

// catalogOptions is a struct that contains the options for the catalog.
type catalogOptions struct {
	firstBookID   int
	firstMemberID int
	books         []Book
	members       []Member
}

// apply applies the given options to the catalog options.
func (c *catalogOptions) apply(opts ...Option) *catalogOptions {
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures a catalog.
type Option func(*catalogOptions)

// WithFirstBookID sets the id assigned to the first book of an empty catalog.
func WithFirstBookID(id int) Option {
	return func(c *catalogOptions) {
		c.firstBookID = id
	}
}

// WithFirstMemberID sets the id assigned to the first member of an empty catalog.
func WithFirstMemberID(id int) Option {
	return func(c *catalogOptions) {
		c.firstMemberID = id
	}
}

// WithBooks seeds the catalog with persisted books, as if loaded with PutBook.
func WithBooks(books ...Book) Option {
	return func(c *catalogOptions) {
		c.books = append(c.books, books...)
	}
}

// WithMembers seeds the catalog with persisted members, as if loaded with PutMember.
func WithMembers(members ...Member) Option {
	return func(c *catalogOptions) {
		c.members = append(c.members, members...)
	}
}
