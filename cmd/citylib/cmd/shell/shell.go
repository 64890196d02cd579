package shell

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/citylib"
	"github.com/agentstation/citylib/internal/cmd/messages"
	"github.com/agentstation/citylib/pkg/catalogs"
	"github.com/agentstation/citylib/pkg/errors"
)

const menu = `
Welcome to City Library Digital Management System
1. Add Book
2. Add Member
3. Issue Book
4. Return Book
5. Search Books
6. Sort Books
7. List All Books
8. List All Members
9. Exit
Enter your choice: `

// errEOF ends the session when input runs out mid-prompt.
var errEOF = errors.New("end of input")

// Shell is one interactive session over a library.
type Shell struct {
	lib    citylib.Library
	in     *lineReader
	out    io.Writer
	logger *zerolog.Logger
}

// New creates a shell reading commands from in and writing to out.
func New(lib citylib.Library, in io.Reader, out io.Writer, logger *zerolog.Logger) *Shell {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Shell{
		lib:    lib,
		in:     newLineReader(in),
		out:    out,
		logger: logger,
	}
}

// Run shows the menu until the user exits, input ends or ctx is cancelled.
// A cancelled context returns nil; the caller is expected to close the
// library, which saves any pending change.
func (s *Shell) Run(ctx context.Context) error {
	defer s.in.close()
	for {
		s.print(menu)
		choice, err := s.in.readLine(ctx)
		if err != nil {
			return s.stop(ctx, err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.addBook(ctx)
		case "2":
			err = s.addMember(ctx)
		case "3":
			err = s.issueBook(ctx)
		case "4":
			err = s.returnBook(ctx)
		case "5":
			err = s.searchBooks(ctx)
		case "6":
			err = s.sortBooks(ctx)
		case "7":
			s.listBooks()
		case "8":
			s.listMembers()
		case "9":
			return s.exit(ctx)
		default:
			s.println(messages.InvalidChoice)
		}
		if err != nil {
			return s.stop(ctx, err)
		}
	}
}

// stop handles a read failure: end of input exits normally, cancellation
// leaves the final save to the caller.
func (s *Shell) stop(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, errEOF):
		s.println("")
		return s.exit(ctx)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.println("")
		s.logger.Debug().Err(err).Msg("shell interrupted")
		return nil
	default:
		return err
	}
}

// exit always rewrites the data files, even after a session without
// changes.
func (s *Shell) exit(ctx context.Context) error {
	if err := s.lib.Save(ctx); err != nil {
		s.logger.Error().Err(err).Msg("final save failed")
		s.println(messages.SaveFailed)
	}
	s.println(messages.SavedExiting)
	return nil
}

func (s *Shell) addBook(ctx context.Context) error {
	title, err := s.prompt(ctx, "Enter Title: ")
	if err != nil {
		return err
	}
	author, err := s.prompt(ctx, "Enter Author: ")
	if err != nil {
		return err
	}
	category, err := s.prompt(ctx, "Enter Category: ")
	if err != nil {
		return err
	}

	id, err := s.lib.AddBook(ctx, title, author, category)
	s.reportSave(err)
	s.println(messages.BookAdded(id))
	return nil
}

func (s *Shell) addMember(ctx context.Context) error {
	name, err := s.prompt(ctx, "Enter Name: ")
	if err != nil {
		return err
	}
	email, err := s.prompt(ctx, "Enter Email: ")
	if err != nil {
		return err
	}

	id, err := s.lib.AddMember(ctx, name, email)
	s.reportSave(err)
	s.println(messages.MemberAdded(id))
	return nil
}

func (s *Shell) issueBook(ctx context.Context) error {
	bookID, ok, err := s.promptID(ctx, "Enter Book ID: ")
	if err != nil || !ok {
		return err
	}
	book, err := s.lib.Book(bookID)
	if err != nil {
		s.println(messages.BookNotFound)
		return nil
	}
	if book.Issued {
		s.println(messages.AlreadyIssued)
		return nil
	}

	memberID, ok, err := s.promptID(ctx, "Enter Member ID: ")
	if err != nil || !ok {
		return err
	}

	if !s.circulate(s.lib.IssueBook(ctx, bookID, memberID)) {
		return nil
	}
	s.println(messages.BookIssued(memberID))
	return nil
}

func (s *Shell) returnBook(ctx context.Context) error {
	bookID, ok, err := s.promptID(ctx, "Enter Book ID: ")
	if err != nil || !ok {
		return err
	}
	book, err := s.lib.Book(bookID)
	if err != nil {
		s.println(messages.BookNotFound)
		return nil
	}
	if !book.Issued {
		s.println(messages.NotIssued)
		return nil
	}

	memberID, ok, err := s.promptID(ctx, "Enter Member ID: ")
	if err != nil || !ok {
		return err
	}

	if !s.circulate(s.lib.ReturnBook(ctx, bookID, memberID)) {
		return nil
	}
	s.println(messages.BookReturned)
	return nil
}

// circulate prints the outcome of an issue or return and reports whether
// the change was applied. A failed save still counts as applied.
func (s *Shell) circulate(err error) bool {
	if err == nil {
		return true
	}
	if errors.IsIOError(err) {
		s.reportSave(err)
		return true
	}
	if msg, ok := messages.ForError(err); ok {
		s.println(msg)
		return false
	}
	s.logger.Error().Err(err).Msg("unexpected circulation error")
	s.println(messages.InvalidInput)
	return false
}

func (s *Shell) searchBooks(ctx context.Context) error {
	s.println("Search by: 1.Title  2.Author  3.Category")
	choice, err := s.prompt(ctx, "Choice: ")
	if err != nil {
		return err
	}
	term, err := s.prompt(ctx, "Enter search term: ")
	if err != nil {
		return err
	}

	found := s.lib.Search(catalogs.ParseSearchField(choice), term)
	if len(found) == 0 {
		s.println(messages.NoBooksFound)
		return nil
	}
	for _, book := range found {
		s.println(book.String())
	}
	return nil
}

func (s *Shell) sortBooks(ctx context.Context) error {
	s.println("Sort by: 1.Title  2.Author  3.Category")
	choice, err := s.prompt(ctx, "Choice: ")
	if err != nil {
		return err
	}

	for _, book := range s.lib.Sort(catalogs.ParseSortKey(choice)) {
		s.println(book.String())
	}
	return nil
}

func (s *Shell) listBooks() {
	books := s.lib.Books()
	if len(books) == 0 {
		s.println(messages.NoBooks)
		return
	}
	for _, book := range books {
		s.println(book.String())
	}
	s.println("Categories: [" + strings.Join(s.lib.Categories(), ", ") + "]")
}

func (s *Shell) listMembers() {
	members := s.lib.Members()
	if len(members) == 0 {
		s.println(messages.NoMembers)
		return
	}
	for _, member := range members {
		s.println(member.String())
	}
}

// prompt prints label and returns the trimmed reply.
func (s *Shell) prompt(ctx context.Context, label string) (string, error) {
	s.print(label)
	line, err := s.in.readLine(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptID reads an integer id. A reply that is not a number prints
// "Invalid input." and reports ok=false.
func (s *Shell) promptID(ctx context.Context, label string) (id int, ok bool, err error) {
	reply, err := s.prompt(ctx, label)
	if err != nil {
		return 0, false, err
	}
	id, convErr := strconv.Atoi(reply)
	if convErr != nil {
		s.println(messages.InvalidInput)
		return 0, false, nil
	}
	return id, true, nil
}

func (s *Shell) reportSave(err error) {
	if err == nil {
		return
	}
	s.logger.Error().Err(err).Msg("save failed")
	s.println(messages.SaveFailed)
}

func (s *Shell) print(text string) {
	_, _ = fmt.Fprint(s.out, text)
}

func (s *Shell) println(text string) {
	_, _ = fmt.Fprintln(s.out, text)
}
