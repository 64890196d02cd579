package catalogs

import (
	"fmt"

	"github.com/agentstation/citylib/pkg/errors"
)

// Verify checks that the issued flag on every book agrees with the
// members' issued lists. It returns nil for a consistent catalog and
// otherwise one ValidationError per violation, joined.
func (c *Catalog) Verify() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var problems []error

	for _, member := range c.members.List() {
		for _, bookID := range member.IssuedBookIDs {
			book, ok := c.books.Get(bookID)
			switch {
			case !ok:
				problems = append(problems, errors.NewValidationError("issued_book_ids", bookID,
					fmt.Sprintf("member %d holds unknown book %d", member.ID, bookID)))
			case !book.Issued:
				problems = append(problems, errors.NewValidationError("issued", bookID,
					fmt.Sprintf("member %d holds book %d which is not marked issued", member.ID, bookID)))
			}
		}
	}

	for _, book := range c.books.List() {
		holders := c.members.Holders(book.ID)
		switch {
		case book.Issued && len(holders) == 0:
			problems = append(problems, errors.NewValidationError("issued", book.ID,
				fmt.Sprintf("book %d is issued but no member holds it", book.ID)))
		case len(holders) > 1:
			problems = append(problems, errors.NewValidationError("issued_book_ids", book.ID,
				fmt.Sprintf("book %d is held by %d members %v", book.ID, len(holders), holders)))
		}
	}

	return errors.Join(problems...)
}
