package catalogs

import (
	"testing"
)

// TestBook creates a test book with sensible defaults.
// The t.Helper() call ensures stack traces point to the test, not this function.
func TestBook(t testing.TB) Book {
	t.Helper()
	return Book{
		ID:       101,
		Title:    "Dune",
		Author:   "Frank Herbert",
		Category: "SciFi",
	}
}

// TestMember creates a test member with sensible defaults.
func TestMember(t testing.TB) Member {
	t.Helper()
	return Member{
		ID:    201,
		Name:  "Alice",
		Email: "alice@example.com",
	}
}

// TestCatalog creates a catalog with a small shelf and two members.
// Book 102 is issued to member 201.
//
//	101 Dune            Frank Herbert  SciFi
//	102 Emma            Jane Austen    Classic
//	103 Foundation      Isaac Asimov   SciFi
//	104 Persuasion      Jane Austen    Classic
func TestCatalog(t testing.TB) *Catalog {
	t.Helper()

	cat := New()
	cat.AddBook("Dune", "Frank Herbert", "SciFi")
	cat.AddBook("Emma", "Jane Austen", "Classic")
	cat.AddBook("Foundation", "Isaac Asimov", "SciFi")
	cat.AddBook("Persuasion", "Jane Austen", "Classic")
	cat.AddMember("Alice", "alice@example.com")
	cat.AddMember("Bob", "bob@example.com")

	if err := cat.IssueBook(102, 201); err != nil {
		t.Fatalf("failed to issue test book: %v", err)
	}
	return cat
}
