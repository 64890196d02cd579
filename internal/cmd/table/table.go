// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strconv"
	"strings"

	"github.com/agentstation/citylib/pkg/catalogs"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// BooksToTableData converts books to table format.
func BooksToTableData(books []catalogs.Book) Data {
	rows := make([][]string, 0, len(books))
	for _, book := range books {
		rows = append(rows, []string{
			strconv.Itoa(book.ID),
			book.Title,
			book.Author,
			book.Category,
			FormatIssued(book.Issued),
		})
	}

	return Data{
		Headers:         []string{"ID", "Title", "Author", "Category", "Issued"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft, AlignCenter},
	}
}

// MembersToTableData converts members to table format.
func MembersToTableData(members []catalogs.Member) Data {
	rows := make([][]string, 0, len(members))
	for _, member := range members {
		rows = append(rows, []string{
			strconv.Itoa(member.ID),
			member.Name,
			member.Email,
			FormatIDs(member.IssuedBookIDs),
		})
	}

	return Data{
		Headers:         []string{"ID", "Name", "Email", "Issued Books"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft},
	}
}

// CategoriesToTableData converts categories to a one-column table with
// the number of books in each.
func CategoriesToTableData(categories []string, books []catalogs.Book) Data {
	counts := make(map[string]int, len(categories))
	for _, book := range books {
		counts[book.Category]++
	}

	rows := make([][]string, 0, len(categories))
	for _, category := range categories {
		rows = append(rows, []string{category, strconv.Itoa(counts[category])})
	}

	return Data{
		Headers:         []string{"Category", "Books"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// BookDetails renders one book as a property table.
func BookDetails(book catalogs.Book, holder *catalogs.Member) Data {
	rows := [][]string{
		{"ID", strconv.Itoa(book.ID)},
		{"Title", book.Title},
		{"Author", book.Author},
		{"Category", book.Category},
		{"Issued", FormatIssued(book.Issued)},
	}
	if holder != nil {
		rows = append(rows, []string{"Held By", strconv.Itoa(holder.ID) + " (" + holder.Name + ")"})
	}
	return Data{Headers: []string{"Property", "Value"}, Rows: rows}
}

// MemberDetails renders one member as a property table.
func MemberDetails(member catalogs.Member) Data {
	return Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"ID", strconv.Itoa(member.ID)},
			{"Name", member.Name},
			{"Email", member.Email},
			{"Issued Books", FormatIDs(member.IssuedBookIDs)},
		},
	}
}

// FormatIssued renders the issued flag.
func FormatIssued(issued bool) string {
	if issued {
		return "yes"
	}
	return "no"
}

// FormatIDs renders an id list, or "-" when empty.
func FormatIDs(ids []int) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}
