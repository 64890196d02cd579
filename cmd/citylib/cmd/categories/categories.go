// Package categories provides the categories command.
package categories

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/citylib/internal/appcontext"
	"github.com/agentstation/citylib/internal/cmd/messages"
	"github.com/agentstation/citylib/internal/cmd/output"
	"github.com/agentstation/citylib/internal/cmd/table"
	"github.com/agentstation/citylib/internal/report"
)

// NewCommand creates the categories command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		GroupID: "core",
		Short:   "List every category with its book count",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := app.Library()
			if err != nil {
				return err
			}

			snap := lib.ReadOnly().Snapshot()
			format := output.Format(app.OutputFormat(cmd.OutOrStdout()))
			if output.IsTabular(format) && len(snap.Categories) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), messages.NoBooks)
				return err
			}

			counts := report.New("", snap).Categories
			return output.Write(cmd.OutOrStdout(), format,
				table.CategoriesToTableData(snap.Categories, snap.Books), counts)
		},
	}
}
