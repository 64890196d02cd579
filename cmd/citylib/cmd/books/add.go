package books

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/citylib/internal/appcontext"
	"github.com/agentstation/citylib/internal/cmd/messages"
	"github.com/agentstation/citylib/internal/cmd/output"
	"github.com/agentstation/citylib/internal/cmd/table"
)

type addFlags struct {
	title    string
	author   string
	category string
}

func newAddCommand(app appcontext.Interface) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the shelves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := app.Library()
			if err != nil {
				return err
			}

			id, saveErr := lib.AddBook(cmd.Context(), flags.title, flags.author, flags.category)
			book, err := lib.Book(id)
			if err != nil {
				return err
			}

			format := output.Format(app.OutputFormat(cmd.OutOrStdout()))
			if output.IsTabular(format) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), messages.BookAdded(id))
			} else if err := output.Write(cmd.OutOrStdout(), format, table.BookDetails(book, nil), book); err != nil {
				return err
			}
			return messages.Error(saveErr)
		},
	}

	cmd.Flags().StringVar(&flags.title, "title", "", "Book title")
	cmd.Flags().StringVar(&flags.author, "author", "", "Book author")
	cmd.Flags().StringVar(&flags.category, "category", "", "Book category")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("author")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
