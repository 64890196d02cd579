// Package shell provides the interactive numbered-menu front end.
package shell

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/citylib/internal/appcontext"
)

// NewCommand creates the shell command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "shell",
		GroupID: "core",
		Short:   "Run the interactive menu",
		Long: `Shell runs the numbered menu for adding books and members, issuing
and returning books, and searching, sorting and listing the catalog.

Every change is saved to the data files immediately. Choosing 9, closing
stdin or pressing Ctrl-C saves once more and exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunE(app, cmd)
		},
	}
}

// RunE runs the shell on the command's stdin and stdout. It is shared with
// the root command, which starts the shell when no subcommand is given.
func RunE(app appcontext.Interface, cmd *cobra.Command) error {
	lib, err := app.Library()
	if err != nil {
		return err
	}
	return New(lib, cmd.InOrStdin(), cmd.OutOrStdout(), app.Logger()).Run(cmd.Context())
}
