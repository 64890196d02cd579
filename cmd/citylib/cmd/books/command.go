// Package books provides the one-shot book commands.
package books

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/citylib/internal/appcontext"
)

// NewCommand creates the books command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "books",
		GroupID: "core",
		Short:   "Add, list, search and sort books",
		Aliases: []string{"book"},
		Example: `  citylib books add --title Dune --author "Frank Herbert" --category SciFi
  citylib books list
  citylib books search austen --by author
  citylib books sort --by category
  citylib books show 101`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newAddCommand(app))
	cmd.AddCommand(newListCommand(app))
	cmd.AddCommand(newSearchCommand(app))
	cmd.AddCommand(newSortCommand(app))
	cmd.AddCommand(newShowCommand(app))

	return cmd
}
