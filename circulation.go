package citylib

import (
	"context"

	"github.com/agentstation/citylib/pkg/catalogs"
	"github.com/agentstation/citylib/pkg/logging"
)

// Circulation handles the mutating library operations.
//
// AddBook and AddMember return the new id even when the follow-up save
// fails; the record exists in memory either way.
type Circulation interface {
	AddBook(ctx context.Context, title, author, category string) (int, error)
	AddMember(ctx context.Context, name, email string) (int, error)
	IssueBook(ctx context.Context, bookID, memberID int) error
	ReturnBook(ctx context.Context, bookID, memberID int) error
}

// AddBook shelves a new book and saves the catalog.
func (c *client) AddBook(ctx context.Context, title, author, category string) (int, error) {
	id := c.catalog.AddBook(title, author, category)
	ctx = logging.WithBook(c.withLogger(ctx, "add_book"), id)
	logging.FromContext(ctx).Debug().Msg("book added")

	if book, err := c.catalog.Book(id); err == nil {
		c.hooks.bookAdded(book)
	}
	return id, c.persist(ctx)
}

// AddMember registers a new member and saves the catalog.
func (c *client) AddMember(ctx context.Context, name, email string) (int, error) {
	id := c.catalog.AddMember(name, email)
	ctx = logging.WithMember(c.withLogger(ctx, "add_member"), id)
	logging.FromContext(ctx).Debug().Msg("member added")

	if member, err := c.catalog.Member(id); err == nil {
		c.hooks.memberAdded(member)
	}
	return id, c.persist(ctx)
}

// IssueBook lends a book to a member and saves the catalog. Rejected
// requests change nothing and are not saved.
func (c *client) IssueBook(ctx context.Context, bookID, memberID int) error {
	ctx = c.withLogger(ctx, "issue_book")
	ctx = logging.WithMember(logging.WithBook(ctx, bookID), memberID)

	if err := c.catalog.IssueBook(bookID, memberID); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("issue rejected")
		return err
	}
	logging.FromContext(ctx).Debug().Msg("book issued")

	book, member := c.pair(bookID, memberID)
	c.hooks.bookIssued(book, member)
	return c.persist(ctx)
}

// ReturnBook takes a book back from a member and saves the catalog.
func (c *client) ReturnBook(ctx context.Context, bookID, memberID int) error {
	ctx = c.withLogger(ctx, "return_book")
	ctx = logging.WithMember(logging.WithBook(ctx, bookID), memberID)

	if err := c.catalog.ReturnBook(bookID, memberID); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("return rejected")
		return err
	}
	logging.FromContext(ctx).Debug().Msg("book returned")

	book, member := c.pair(bookID, memberID)
	c.hooks.bookReturned(book, member)
	return c.persist(ctx)
}

// pair fetches copies of a book and member that are known to exist.
func (c *client) pair(bookID, memberID int) (catalogs.Book, catalogs.Member) {
	book, _ := c.catalog.Book(bookID)
	member, _ := c.catalog.Member(memberID)
	return book, member
}

// withLogger attaches the library logger and operation name to ctx.
func (c *client) withLogger(ctx context.Context, operation string) context.Context {
	return logging.WithOperation(logging.WithLogger(ctx, c.logger), operation)
}
