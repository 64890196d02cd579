// Package files persists a library catalog as two flat text files, one
// record per line, in a data directory.
//
//	books.txt    101|Dune|Frank Herbert|SciFi|false
//	members.txt  201|Alice|alice@example.com|101,102
//
// Loading is forgiving: a missing file is created empty, an unreadable
// file leaves its collection empty, and malformed lines are skipped.
// Saving truncates and rewrites both files in ascending id order. Writes
// are not crash-atomic.
package files

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/citylib/pkg/catalogs"
	"github.com/agentstation/citylib/pkg/constants"
	"github.com/agentstation/citylib/pkg/errors"
	"github.com/agentstation/citylib/pkg/logging"
)

// maxLineSize bounds a single record line.
const maxLineSize = 1 << 20

// Store reads and writes the books and members files of one data directory.
type Store struct {
	dir         string
	booksFile   string
	membersFile string
	logger      *zerolog.Logger
}

// New creates a store rooted at dir. Nothing is touched on disk until
// Load or SaveAll is called.
func New(dir string, opts ...Option) (*Store, error) {
	if dir == "" {
		return nil, errors.NewValidationError("dir", dir, "data directory is required")
	}

	cfg := &config{
		booksFile:   constants.BooksFile,
		membersFile: constants.MembersFile,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying files option: %w", err)
		}
	}

	logger := cfg.logger
	if logger == nil {
		logger = logging.Default()
	}

	return &Store{
		dir:         dir,
		booksFile:   cfg.booksFile,
		membersFile: cfg.membersFile,
		logger:      logger,
	}, nil
}

// Dir returns the data directory.
func (s *Store) Dir() string { return s.dir }

// BooksPath returns the full path of the books file.
func (s *Store) BooksPath() string { return filepath.Join(s.dir, s.booksFile) }

// MembersPath returns the full path of the members file.
func (s *Store) MembersPath() string { return filepath.Join(s.dir, s.membersFile) }

// Load reads both files into a new catalog.
func (s *Store) Load(ctx context.Context) (*catalogs.Catalog, error) {
	cat := catalogs.New()
	if err := s.LoadInto(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// LoadInto reads books then members into dst. Only an unusable data
// directory or a cancelled context is reported as an error; per-file
// problems are logged and the affected collection is left empty.
func (s *Store) LoadInto(ctx context.Context, dst catalogs.Loader) error {
	if err := os.MkdirAll(s.dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", s.dir, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	books := readRecords(s.logger, s.BooksPath(), catalogs.DecodeBook)
	for _, book := range books {
		dst.PutBook(book)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	members := readRecords(s.logger, s.MembersPath(), catalogs.DecodeMember)
	for _, member := range members {
		dst.PutMember(member)
	}

	s.logger.Debug().
		Str("dir", s.dir).
		Int("books", len(books)).
		Int("members", len(members)).
		Msg("catalog loaded")
	return nil
}

// readRecords decodes every well-formed line of path. Nothing is
// returned when the file could not be read in full.
func readRecords[T any](logger *zerolog.Logger, path string, decode func(string) (T, bool)) []T {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		if err := touch(path); err != nil {
			logger.Error().Err(errors.WrapIO("create", path, err)).Msg("could not create data file")
		}
		return nil
	}
	if err != nil {
		logger.Error().Err(errors.WrapIO("open", path, err)).Msg("could not open data file")
		return nil
	}
	defer f.Close() //nolint:errcheck // read-only

	var records []T
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		record, ok := decode(strings.TrimSuffix(scanner.Text(), "\r"))
		if !ok {
			logger.Debug().Str("file", path).Int("line", lineNo).Msg("skipping malformed record")
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		logger.Error().Err(errors.WrapIO("read", path, err)).Msg("could not read data file")
		return nil
	}
	return records
}

// SaveAll truncates and rewrites both files from a consistent snapshot
// of src.
func (s *Store) SaveAll(ctx context.Context, src catalogs.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", s.dir, err)
	}

	snap := src.Snapshot()

	bookLines := make([]string, len(snap.Books))
	for i, book := range snap.Books {
		bookLines[i] = catalogs.EncodeBook(book)
	}
	memberLines := make([]string, len(snap.Members))
	for i, member := range snap.Members {
		memberLines[i] = catalogs.EncodeMember(member)
	}

	if err := writeLines(s.BooksPath(), bookLines); err != nil {
		return err
	}
	if err := writeLines(s.MembersPath(), memberLines); err != nil {
		return err
	}

	s.logger.Debug().
		Str("dir", s.dir).
		Int("books", len(bookLines)).
		Int("members", len(memberLines)).
		Msg("catalog saved")
	return nil
}

// writeLines replaces the contents of path with one line per entry.
func writeLines(path string, lines []string) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("open", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.WrapIO("close", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// touch creates an empty file if none exists.
func touch(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return err
	}
	return f.Close()
}
