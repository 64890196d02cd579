package books

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/citylib/internal/appcontext"
	"github.com/agentstation/citylib/internal/cmd/globals"
	"github.com/agentstation/citylib/internal/cmd/messages"
	"github.com/agentstation/citylib/internal/cmd/output"
	"github.com/agentstation/citylib/internal/cmd/table"
	"github.com/agentstation/citylib/pkg/catalogs"
)

func newShowCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "show <book-id>",
		Short: "Show one book and who holds it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := globals.ParseID("book-id", args[0])
			if err != nil {
				return messages.Error(err)
			}

			lib, err := app.Library()
			if err != nil {
				return err
			}
			book, err := lib.Book(id)
			if err != nil {
				return messages.Error(err)
			}

			holder := findHolder(lib.Members(), id)
			return output.Write(cmd.OutOrStdout(), output.Format(app.OutputFormat(cmd.OutOrStdout())),
				table.BookDetails(book, holder), book)
		},
	}
}

// findHolder returns the member holding bookID, if any.
func findHolder(members []catalogs.Member, bookID int) *catalogs.Member {
	for i := range members {
		if members[i].Holds(bookID) {
			return &members[i]
		}
	}
	return nil
}
