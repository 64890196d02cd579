// Package messages holds the user-facing wording shared by the interactive
// shell and the one-shot commands.
package messages

import (
	"fmt"

	"github.com/agentstation/citylib/pkg/errors"
)

// Fixed responses.
const (
	BookNotFound      = "Book not found."
	MemberNotFound    = "Member not found."
	AlreadyIssued     = "Book already issued."
	NotIssued         = "Book is not issued."
	NotHeldByMember   = "This member does not have the book."
	BookReturned      = "Book returned."
	NoBooksFound      = "No books found."
	NoBooks           = "No books."
	NoMembers         = "No members."
	InvalidInput      = "Invalid input."
	InvalidChoice     = "Invalid choice. Try again."
	SavedExiting      = "Saved. Exiting."
	SaveFailed        = "Error saving data."
	CatalogConsistent = "Catalog is consistent."
)

// BookAdded reports a new book id.
func BookAdded(id int) string { return fmt.Sprintf("Book added with ID: %d", id) }

// MemberAdded reports a new member id.
func MemberAdded(id int) string { return fmt.Sprintf("Member added with ID: %d", id) }

// BookIssued reports a successful issue.
func BookIssued(memberID int) string { return fmt.Sprintf("Book issued to member %d.", memberID) }

// ForError maps a catalog error to its user-facing line. ok is false for
// errors that have no fixed wording.
func ForError(err error) (msg string, ok bool) {
	switch {
	case err == nil:
		return "", false
	case errors.IsBookNotFound(err):
		return BookNotFound, true
	case errors.IsMemberNotFound(err):
		return MemberNotFound, true
	case errors.IsAlreadyIssued(err):
		return AlreadyIssued, true
	case errors.IsNotIssued(err):
		return NotIssued, true
	case errors.IsNotHeldByMember(err):
		return NotHeldByMember, true
	case errors.IsIOError(err):
		return SaveFailed, true
	case errors.IsValidationError(err):
		return InvalidInput, true
	default:
		return "", false
	}
}

// Error wraps err so it prints with its user-facing wording while still
// matching the original with errors.Is and errors.As.
func Error(err error) error {
	msg, ok := ForError(err)
	if !ok {
		return err
	}
	return &userError{msg: msg, err: err}
}

type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }

func (e *userError) Unwrap() error { return e.err }
