package catalogs_test

import (
	"fmt"
	"log"

	"github.com/agentstation/citylib/pkg/catalogs"
)

// Example demonstrates basic catalog creation and circulation
func Example() {
	cat := catalogs.New()

	bookID := cat.AddBook("Dune", "Frank Herbert", "SciFi")
	memberID := cat.AddMember("Alice", "alice@example.com")

	if err := cat.IssueBook(bookID, memberID); err != nil {
		log.Fatal(err)
	}

	book, _ := cat.Book(bookID)
	member, _ := cat.Member(memberID)
	fmt.Println(book)
	fmt.Println(member)
	// Output:
	// ID:101 | Dune | Frank Herbert | SciFi | Issued:true
	// ID:201 | Alice | alice@example.com | Issued:[101]
}

// Example_search demonstrates a case-insensitive search by author
func Example_search() {
	cat := catalogs.New()
	cat.AddBook("Emma", "Jane Austen", "Classic")
	cat.AddBook("Dune", "Frank Herbert", "SciFi")
	cat.AddBook("Persuasion", "Jane Austen", "Classic")

	for _, book := range cat.Search(catalogs.SearchAuthor, "AUSTEN") {
		fmt.Println(book.ID, book.Title)
	}
	// Output:
	// 101 Emma
	// 103 Persuasion
}

// Example_sort demonstrates sorting by category
func Example_sort() {
	cat := catalogs.New()
	cat.AddBook("Foundation", "Isaac Asimov", "SciFi")
	cat.AddBook("Persuasion", "Jane Austen", "Classic")
	cat.AddBook("Dune", "Frank Herbert", "SciFi")

	for _, book := range cat.Sort(catalogs.SortCategory) {
		fmt.Printf("%s: %s\n", book.Category, book.Title)
	}
	// Output:
	// Classic: Persuasion
	// SciFi: Dune
	// SciFi: Foundation
}

// Example_records demonstrates the flat record format
func Example_records() {
	line := catalogs.EncodeBook(catalogs.Book{ID: 101, Title: "Dune", Author: "Frank Herbert", Category: "SciFi"})
	fmt.Println(line)

	member, ok := catalogs.DecodeMember("201|Alice|alice@example.com|101,102")
	fmt.Println(ok, member.IssuedBookIDs)

	_, ok = catalogs.DecodeBook("not a record")
	fmt.Println(ok)
	// Output:
	// 101|Dune|Frank Herbert|SciFi|false
	// true [101 102]
	// false
}
