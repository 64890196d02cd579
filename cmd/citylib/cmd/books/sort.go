package books

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/citylib/internal/appcontext"
	"github.com/agentstation/citylib/internal/cmd/globals"
	"github.com/agentstation/citylib/internal/cmd/messages"
	"github.com/agentstation/citylib/pkg/catalogs"
)

func newSortCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "List books ordered by title, author or category",
		Long: `Sort lists every book ordered case-insensitively by the --by key.
Category order breaks ties by title. The stored order is not changed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := app.Library()
			if err != nil {
				return err
			}

			flags := globals.ParseList(cmd)
			sorted := lib.Sort(catalogs.ParseSortKey(flags.By))
			return writeBooks(cmd, app, globals.Limit(sorted, flags.Limit), messages.NoBooks)
		},
	}
	globals.AddListFlags(cmd, catalogs.SortTitle.String(), "Sort key: title, author, category")
	return cmd
}
