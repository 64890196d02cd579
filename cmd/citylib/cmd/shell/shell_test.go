package shell

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/citylib"
	"github.com/agentstation/citylib/internal/appcontext"
	"github.com/agentstation/citylib/pkg/catalogs"
	"github.com/agentstation/citylib/pkg/constants"
	"github.com/agentstation/citylib/pkg/logging"
)

func newTestShell(t *testing.T, input string) (*Shell, citylib.Library, *bytes.Buffer) {
	t.Helper()
	lib, err := citylib.New(citylib.WithInMemory(), citylib.WithCatalog(catalogs.TestCatalog(t)))
	require.NoError(t, err)
	var out bytes.Buffer
	return New(lib, strings.NewReader(input), &out, logging.NewNopLogger()), lib, &out
}

func run(t *testing.T, input string) (citylib.Library, string) {
	t.Helper()
	sh, lib, out := newTestShell(t, input)
	require.NoError(t, sh.Run(context.Background()))
	return lib, out.String()
}

func TestShellMenu(t *testing.T) {
	_, out := run(t, "9\n")

	assert.True(t, strings.HasPrefix(out, "\nWelcome to City Library Digital Management System\n1. Add Book\n"))
	assert.Contains(t, out, "9. Exit\nEnter your choice: ")
	assert.True(t, strings.HasSuffix(out, "Saved. Exiting.\n"))
}

func TestShellAdd(t *testing.T) {
	t.Run("book", func(t *testing.T) {
		lib, out := run(t, "1\n  Neuromancer \nWilliam Gibson\nCyberpunk\n9\n")

		assert.Contains(t, out, "Enter Title: Enter Author: Enter Category: Book added with ID: 105\n")
		book, err := lib.Book(105)
		require.NoError(t, err)
		assert.Equal(t, "Neuromancer", book.Title)
		assert.Contains(t, lib.Categories(), "Cyberpunk")
	})

	t.Run("member", func(t *testing.T) {
		lib, out := run(t, "2\nCarol\ncarol@example.com\n9\n")

		assert.Contains(t, out, "Enter Name: Enter Email: Member added with ID: 203\n")
		member, err := lib.Member(203)
		require.NoError(t, err)
		assert.Equal(t, "carol@example.com", member.Email)
	})
}

func TestShellIssue(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		want       string
		askMember  bool
		wantIssued bool
	}{
		{"success", "3\n101\n202\n", "Book issued to member 202.", true, true},
		{"unknown book", "3\n999\n", "Book not found.", false, false},
		{"already issued", "3\n102\n", "Book already issued.", false, false},
		{"unknown member", "3\n101\n299\n", "Member not found.", true, false},
		{"bad book id", "3\nabc\n", "Invalid input.", false, false},
		{"bad member id", "3\n101\nxyz\n", "Invalid input.", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib, out := run(t, tt.input+"9\n")

			assert.Contains(t, out, tt.want+"\n")
			assert.Equal(t, tt.askMember, strings.Contains(out, "Enter Member ID: "))
			book, err := lib.Book(101)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIssued, book.Issued)
			assert.NoError(t, lib.Verify())
		})
	}
}

func TestShellReturn(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		askMember bool
	}{
		{"success", "4\n102\n201\n", "Book returned.", true},
		{"unknown book", "4\n999\n", "Book not found.", false},
		{"not issued", "4\n101\n", "Book is not issued.", false},
		{"unknown member", "4\n102\n299\n", "Member not found.", true},
		{"wrong member", "4\n102\n202\n", "This member does not have the book.", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib, out := run(t, tt.input+"9\n")

			assert.Contains(t, out, tt.want+"\n")
			assert.Equal(t, tt.askMember, strings.Contains(out, "Enter Member ID: "))

			book, err := lib.Book(102)
			require.NoError(t, err)
			assert.Equal(t, tt.name != "success", book.Issued)
			assert.NoError(t, lib.Verify())
		})
	}
}

func TestShellSearch(t *testing.T) {
	t.Run("by author", func(t *testing.T) {
		_, out := run(t, "5\n2\naustEN\n9\n")

		assert.Contains(t, out, "Search by: 1.Title  2.Author  3.Category\nChoice: Enter search term: ")
		assert.Contains(t, out, "ID:102 | Emma | Jane Austen | Classic | Issued:true\n")
		assert.Contains(t, out, "ID:104 | Persuasion | Jane Austen | Classic | Issued:false\n")
		assert.NotContains(t, out, "ID:101 |")
	})

	t.Run("no match", func(t *testing.T) {
		_, out := run(t, "5\n1\nzzz\n9\n")
		assert.Contains(t, out, "No books found.\n")
	})

	t.Run("unknown field searches everything", func(t *testing.T) {
		_, out := run(t, "5\n7\nscifi\n9\n")
		assert.Contains(t, out, "ID:101 |")
		assert.Contains(t, out, "ID:103 |")
	})
}

func TestShellSort(t *testing.T) {
	_, out := run(t, "6\n2\n9\n")

	herbert := strings.Index(out, "ID:101 |")
	asimov := strings.Index(out, "ID:103 |")
	emma := strings.Index(out, "ID:102 |")
	require.NotEqual(t, -1, herbert)
	assert.Less(t, herbert, asimov)
	assert.Less(t, asimov, emma)
}

func TestShellList(t *testing.T) {
	t.Run("books", func(t *testing.T) {
		_, out := run(t, "7\n9\n")
		assert.Contains(t, out, "ID:104 | Persuasion | Jane Austen | Classic | Issued:false\nCategories: [Classic, SciFi]\n")
	})

	t.Run("members", func(t *testing.T) {
		_, out := run(t, "8\n9\n")
		assert.Contains(t, out, "ID:201 | Alice | alice@example.com | Issued:[102]\n")
		assert.Contains(t, out, "ID:202 | Bob | bob@example.com | Issued:[]\n")
	})

	t.Run("empty", func(t *testing.T) {
		lib, err := citylib.New(citylib.WithInMemory())
		require.NoError(t, err)
		var out bytes.Buffer
		require.NoError(t, New(lib, strings.NewReader("7\n8\n9\n"), &out, nil).Run(context.Background()))
		assert.Contains(t, out.String(), "No books.\n")
		assert.Contains(t, out.String(), "No members.\n")
	})
}

func TestShellInvalidChoice(t *testing.T) {
	_, out := run(t, "42\n\n9\n")
	assert.Equal(t, 2, strings.Count(out, "Invalid choice. Try again.\n"))
}

func TestShellEndOfInput(t *testing.T) {
	t.Run("at menu", func(t *testing.T) {
		_, out := run(t, "")
		assert.True(t, strings.HasSuffix(out, "Saved. Exiting.\n"))
	})

	t.Run("mid prompt", func(t *testing.T) {
		lib, out := run(t, "1\nHalf")
		assert.True(t, strings.HasSuffix(out, "Saved. Exiting.\n"))
		assert.Len(t, lib.Books(), 4)
	})
}

func TestShellCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	sh, _, out := newTestShell(t, "")
	sh.in = newLineReader(pr)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sh.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("shell did not stop after cancel")
	}
	assert.NotContains(t, out.String(), "Saved. Exiting.")
}

func TestShellReleasesReader(t *testing.T) {
	waitStopped := func(t *testing.T, lr *lineReader) {
		t.Helper()
		select {
		case <-lr.stopped:
		case <-time.After(5 * time.Second):
			t.Fatal("line reader still running after the shell returned")
		}
	}

	t.Run("input left after exit", func(t *testing.T) {
		sh, _, _ := newTestShell(t, "9\n1\nmore\n")
		require.NoError(t, sh.Run(context.Background()))
		waitStopped(t, sh.in)
	})

	t.Run("line arriving after cancel", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer pw.Close()

		sh, _, _ := newTestShell(t, "")
		sh.in = newLineReader(pr)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.NoError(t, sh.Run(ctx))

		go func() { _, _ = pw.Write([]byte("1\n")) }()
		waitStopped(t, sh.in)
	})
}

func TestShellPersists(t *testing.T) {
	dir := t.TempDir()
	lib, err := citylib.New(citylib.WithDataDir(dir), citylib.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	var out bytes.Buffer
	input := "1\nDune\nFrank Herbert\nSciFi\n2\nAlice\nalice@example.com\n3\n101\n201\n9\n"
	require.NoError(t, New(lib, strings.NewReader(input), &out, nil).Run(context.Background()))

	books, err := os.ReadFile(filepath.Join(dir, constants.BooksFile))
	require.NoError(t, err)
	assert.Equal(t, "101|Dune|Frank Herbert|SciFi|true\n", string(books))

	members, err := os.ReadFile(filepath.Join(dir, constants.MembersFile))
	require.NoError(t, err)
	assert.Equal(t, "201|Alice|alice@example.com|101\n", string(members))
}

func TestCommand(t *testing.T) {
	app := &appcontext.Mock{}
	var out bytes.Buffer

	root := &cobra.Command{Use: "citylib"}
	root.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	root.AddCommand(NewCommand(app))
	root.SetArgs([]string{"shell"})
	root.SetIn(strings.NewReader("8\n9\n"))
	root.SetOut(&out)

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "No members.\n")
	assert.Contains(t, out.String(), "Saved. Exiting.\n")
}

func TestShellExitRewritesFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, constants.BooksFile)
	require.NoError(t, os.WriteFile(path, []byte("101|Dune|Herbert|SciFi|false\ngarbage\n"), constants.FilePermissions))

	lib, err := citylib.New(citylib.WithDataDir(dir), citylib.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, New(lib, strings.NewReader("9\n"), &out, nil).Run(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "101|Dune|Herbert|SciFi|false\n", string(data))
}
