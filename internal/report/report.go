// Package report renders a full catalog export as markdown, YAML or JSON.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	jsoniter "github.com/json-iterator/go"
	md "github.com/nao1215/markdown"

	"github.com/agentstation/citylib/internal/cmd/table"
	"github.com/agentstation/citylib/pkg/catalogs"
)

// Export formats.
const (
	FormatMarkdown = "markdown"
	FormatYAML     = "yaml"
	FormatJSON     = "json"
)

// Report is the document written by Write.
type Report struct {
	Title      string            `json:"title" yaml:"title"`
	Summary    Summary           `json:"summary" yaml:"summary"`
	Books      []catalogs.Book   `json:"books" yaml:"books"`
	Members    []catalogs.Member `json:"members" yaml:"members"`
	Categories []CategoryCount   `json:"categories" yaml:"categories"`
}

// Summary holds headline counts.
type Summary struct {
	Books      int `json:"books" yaml:"books"`
	Issued     int `json:"issued" yaml:"issued"`
	Available  int `json:"available" yaml:"available"`
	Members    int `json:"members" yaml:"members"`
	Categories int `json:"categories" yaml:"categories"`
}

// CategoryCount pairs a category with the number of books filed under it.
type CategoryCount struct {
	Name  string `json:"name" yaml:"name"`
	Books int    `json:"books" yaml:"books"`
}

// New builds a report from a catalog snapshot.
func New(title string, snap catalogs.Snapshot) Report {
	counts := make(map[string]int, len(snap.Categories))
	issued := 0
	for _, book := range snap.Books {
		counts[book.Category]++
		if book.Issued {
			issued++
		}
	}

	categories := make([]CategoryCount, 0, len(snap.Categories))
	for _, name := range snap.Categories {
		categories = append(categories, CategoryCount{Name: name, Books: counts[name]})
	}

	return Report{
		Title: title,
		Summary: Summary{
			Books:      len(snap.Books),
			Issued:     issued,
			Available:  len(snap.Books) - issued,
			Members:    len(snap.Members),
			Categories: len(snap.Categories),
		},
		Books:      snap.Books,
		Members:    snap.Members,
		Categories: categories,
	}
}

// Write renders r to w in the given format.
func Write(w io.Writer, r Report, format string) error {
	switch strings.ToLower(format) {
	case FormatMarkdown, "md", "":
		return writeMarkdown(w, r)
	case FormatYAML, "yml":
		data, err := yaml.MarshalWithOptions(r, yaml.Indent(2), yaml.IndentSequence(false))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case FormatJSON:
		encoder := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(r)
	default:
		return fmt.Errorf("invalid export format %q: must be one of: markdown, yaml, json", format)
	}
}

func writeMarkdown(w io.Writer, r Report) error {
	doc := md.NewMarkdown(w)

	doc.H1(r.Title).LF()
	doc.BulletList(
		fmt.Sprintf("%s %d (%d issued, %d available)", md.Bold("Books:"), r.Summary.Books, r.Summary.Issued, r.Summary.Available),
		fmt.Sprintf("%s %d", md.Bold("Members:"), r.Summary.Members),
		fmt.Sprintf("%s %d", md.Bold("Categories:"), r.Summary.Categories),
	).LF()

	doc.H2("Books").LF()
	if len(r.Books) == 0 {
		doc.PlainText(md.Italic("No books.")).LF()
	} else {
		books := table.BooksToTableData(r.Books)
		doc.Table(md.TableSet{Header: books.Headers, Rows: books.Rows}).LF()
	}

	doc.H2("Members").LF()
	if len(r.Members) == 0 {
		doc.PlainText(md.Italic("No members.")).LF()
	} else {
		members := table.MembersToTableData(r.Members)
		doc.Table(md.TableSet{Header: members.Headers, Rows: members.Rows}).LF()
	}

	doc.H2("Categories").LF()
	if len(r.Categories) == 0 {
		doc.PlainText(md.Italic("No categories.")).LF()
	} else {
		items := make([]string, len(r.Categories))
		for i, c := range r.Categories {
			items[i] = c.Name + " (" + strconv.Itoa(c.Books) + ")"
		}
		doc.BulletList(items...).LF()
	}

	doc.HorizontalRule()
	doc.PlainText(md.Italic("Generated by citylib"))

	return doc.Build()
}
