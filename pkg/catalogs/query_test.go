package catalogs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func bookIDs(books []Book) []int {
	ids := make([]int, len(books))
	for i, b := range books {
		ids[i] = b.ID
	}
	return ids
}

func TestSearch(t *testing.T) {
	cat := TestCatalog(t)

	tests := []struct {
		name  string
		field SearchField
		term  string
		want  []int
	}{
		{"title case-insensitive", SearchTitle, "dUNE", []int{101}},
		{"title substring", SearchTitle, "ion", []int{103, 104}},
		{"author", SearchAuthor, "austen", []int{102, 104}},
		{"category", SearchCategory, "sci", []int{101, 103}},
		{"any field", SearchAny, "an", []int{101, 102, 104}},
		{"term is trimmed", SearchAuthor, "  asimov ", []int{103}},
		{"empty term matches all", SearchTitle, "", []int{101, 102, 103, 104}},
		{"no match", SearchTitle, "zzz", []int{}},
		{"field does not leak", SearchTitle, "austen", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bookIDs(cat.Search(tt.field, tt.term)))
		})
	}
}

func TestSearchProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		word := rapid.StringMatching(`[a-zA-Z ]{0,8}`)
		books := rapid.SliceOfN(rapid.Custom(func(t *rapid.T) Book {
			return Book{
				Title:    word.Draw(t, "title"),
				Author:   word.Draw(t, "author"),
				Category: word.Draw(t, "category"),
			}
		}), 0, 12).Draw(t, "books")
		for i := range books {
			books[i].ID = 101 + i
		}
		field := SearchField(rapid.IntRange(0, 3).Draw(t, "field"))
		term := rapid.StringMatching(`[a-zA-Z]{0,3}`).Draw(t, "term")

		got := SearchBooks(books, field, term)

		needle := strings.ToLower(term)
		has := func(s string) bool { return strings.Contains(strings.ToLower(s), needle) }
		var want []int
		for _, b := range books {
			var match bool
			switch field {
			case SearchTitle:
				match = has(b.Title)
			case SearchAuthor:
				match = has(b.Author)
			case SearchCategory:
				match = has(b.Category)
			default:
				match = has(b.Title) || has(b.Author) || has(b.Category)
			}
			if match {
				want = append(want, b.ID)
			}
		}
		if want == nil {
			want = []int{}
		}
		assert.Equal(t, want, bookIDs(got))
	})
}

func TestSort(t *testing.T) {
	cat := TestCatalog(t)

	assert.Equal(t, []int{101, 102, 103, 104}, bookIDs(cat.Sort(SortTitle)))
	assert.Equal(t, []int{101, 103, 102, 104}, bookIDs(cat.Sort(SortAuthor)))
	assert.Equal(t, []int{102, 104, 101, 103}, bookIDs(cat.Sort(SortCategory)))

	// stored order is untouched
	assert.Equal(t, []int{101, 102, 103, 104}, bookIDs(cat.ListBooks()))
}

func TestSortRules(t *testing.T) {
	t.Run("case-insensitive", func(t *testing.T) {
		books := []Book{{ID: 1, Title: "banana"}, {ID: 2, Title: "Apple"}, {ID: 3, Title: "cherry"}}
		assert.Equal(t, []int{2, 1, 3}, bookIDs(SortBooks(books, SortTitle)))
	})

	t.Run("stable on ties", func(t *testing.T) {
		books := []Book{
			{ID: 1, Title: "b", Author: "Same"},
			{ID: 2, Title: "a", Author: "same"},
			{ID: 3, Title: "c", Author: "SAME"},
		}
		assert.Equal(t, []int{1, 2, 3}, bookIDs(SortBooks(books, SortAuthor)))
	})

	t.Run("category breaks ties on title", func(t *testing.T) {
		books := []Book{
			{ID: 1, Title: "Zed", Category: "x"},
			{ID: 2, Title: "alpha", Category: "X"},
			{ID: 3, Title: "Mid", Category: "a"},
		}
		assert.Equal(t, []int{3, 2, 1}, bookIDs(SortBooks(books, SortCategory)))
	})

	t.Run("input untouched", func(t *testing.T) {
		books := []Book{{ID: 1, Title: "b"}, {ID: 2, Title: "a"}}
		_ = SortBooks(books, SortTitle)
		assert.Equal(t, []int{1, 2}, bookIDs(books))
	})
}

func TestSortProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		titles := rapid.SliceOfN(rapid.StringMatching(`[a-zA-Z]{0,6}`), 0, 15).Draw(t, "titles")
		books := make([]Book, len(titles))
		for i, title := range titles {
			books[i] = Book{ID: i, Title: title}
		}

		sorted := SortBooks(books, SortTitle)
		assert.Len(t, sorted, len(books))
		for i := 1; i < len(sorted); i++ {
			a, b := strings.ToLower(sorted[i-1].Title), strings.ToLower(sorted[i].Title)
			if a > b {
				t.Fatalf("out of order at %d: %q > %q", i, a, b)
			}
			if a == b && sorted[i-1].ID > sorted[i].ID {
				t.Fatalf("unstable at %d", i)
			}
		}
	})
}

func TestParseSearchField(t *testing.T) {
	tests := map[string]SearchField{
		"1":        SearchTitle,
		"title":    SearchTitle,
		"2":        SearchAuthor,
		" Author ": SearchAuthor,
		"3":        SearchCategory,
		"CATEGORY": SearchCategory,
		"":         SearchAny,
		"9":        SearchAny,
		"any":      SearchAny,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseSearchField(in), "input %q", in)
	}
	assert.Equal(t, "category", SearchCategory.String())
	assert.Equal(t, "any", SearchField(42).String())
}

func TestParseSortKey(t *testing.T) {
	tests := map[string]SortKey{
		"1":        SortTitle,
		"title":    SortTitle,
		"2":        SortAuthor,
		"author":   SortAuthor,
		"3":        SortCategory,
		"Category": SortCategory,
		"x":        SortTitle,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseSortKey(in), "input %q", in)
	}
	assert.Equal(t, "author", SortAuthor.String())
}
