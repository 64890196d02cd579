package books

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/citylib/internal/appcontext"
	"github.com/agentstation/citylib/internal/cmd/globals"
	"github.com/agentstation/citylib/internal/cmd/messages"
	"github.com/agentstation/citylib/pkg/catalogs"
)

func newSearchCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Find books by a case-insensitive substring",
		Long: `Search lists the books whose title, author or category contains the
term, ignoring case. --by narrows the match to one field. An empty term
matches every book.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := app.Library()
			if err != nil {
				return err
			}

			flags := globals.ParseList(cmd)
			term := strings.Join(args, " ")
			found := lib.Search(catalogs.ParseSearchField(flags.By), term)
			return writeBooks(cmd, app, globals.Limit(found, flags.Limit), messages.NoBooksFound)
		},
	}
	globals.AddListFlags(cmd, catalogs.SearchAny.String(), "Field to match: title, author, category, any")
	return cmd
}
