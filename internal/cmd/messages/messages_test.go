package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/citylib/pkg/catalogs"
	"github.com/agentstation/citylib/pkg/errors"
)

func TestForError(t *testing.T) {
	cat := catalogs.TestCatalog(t)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"book not found", cat.IssueBook(999, 201), BookNotFound},
		{"member not found", cat.IssueBook(101, 999), MemberNotFound},
		{"already issued", cat.IssueBook(102, 202), AlreadyIssued},
		{"not issued", cat.ReturnBook(101, 201), NotIssued},
		{"not held", cat.ReturnBook(102, 202), NotHeldByMember},
		{"io", errors.WrapResource("save", "catalog", "", errors.NewIOError("write", "books.txt", errors.New("disk full"))), SaveFailed},
		{"validation", errors.NewValidationError("book-id", "abc", "must be a number"), InvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := ForError(tt.err)
			assert.True(t, ok)
			assert.Equal(t, tt.want, msg)
		})
	}

	_, ok := ForError(errors.New("other"))
	assert.False(t, ok)
	_, ok = ForError(nil)
	assert.False(t, ok)
}

func TestFormatted(t *testing.T) {
	assert.Equal(t, "Book added with ID: 101", BookAdded(101))
	assert.Equal(t, "Member added with ID: 201", MemberAdded(201))
	assert.Equal(t, "Book issued to member 201.", BookIssued(201))
}

func TestError(t *testing.T) {
	cat := catalogs.TestCatalog(t)

	err := Error(cat.ReturnBook(102, 202))
	assert.EqualError(t, err, NotHeldByMember)
	assert.True(t, errors.IsNotHeldByMember(err))

	plain := errors.New("boom")
	assert.Same(t, plain, Error(plain))
	assert.NoError(t, Error(nil))
}
