package books

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/citylib/internal/appcontext"
	"github.com/agentstation/citylib/internal/cmd/globals"
	"github.com/agentstation/citylib/internal/cmd/messages"
	"github.com/agentstation/citylib/internal/cmd/output"
	"github.com/agentstation/citylib/internal/cmd/table"
	"github.com/agentstation/citylib/pkg/catalogs"
)

func newListCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List every book in id order",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := app.Library()
			if err != nil {
				return err
			}
			limit, _ := cmd.Flags().GetInt("limit")
			return writeBooks(cmd, app, globals.Limit(lib.Books(), limit), messages.NoBooks)
		},
	}
	cmd.Flags().IntP("limit", "l", 0, "Limit number of results")
	return cmd
}

// writeBooks renders books in the configured format. Tabular output
// prints empty instead of an empty table.
func writeBooks(cmd *cobra.Command, app appcontext.Interface, books []catalogs.Book, empty string) error {
	format := output.Format(app.OutputFormat(cmd.OutOrStdout()))
	if output.IsTabular(format) && len(books) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), empty)
		return err
	}
	if books == nil {
		books = []catalogs.Book{}
	}

	app.Logger().Debug().Int("count", len(books)).Msg("writing books")
	return output.Write(cmd.OutOrStdout(), format, table.BooksToTableData(books), books)
}
