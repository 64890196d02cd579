package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/agentstation/citylib/cmd/citylib/cmd/books"
	"github.com/agentstation/citylib/cmd/citylib/cmd/categories"
	"github.com/agentstation/citylib/cmd/citylib/cmd/circulation"
	"github.com/agentstation/citylib/cmd/citylib/cmd/export"
	"github.com/agentstation/citylib/cmd/citylib/cmd/members"
	"github.com/agentstation/citylib/cmd/citylib/cmd/shell"
	"github.com/agentstation/citylib/cmd/citylib/cmd/verify"
	"github.com/agentstation/citylib/pkg/constants"
	"github.com/agentstation/citylib/pkg/errors"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(shell.NewCommand(a))
	rootCmd.AddCommand(books.NewCommand(a))
	rootCmd.AddCommand(members.NewCommand(a))
	rootCmd.AddCommand(circulation.NewIssueCommand(a))
	rootCmd.AddCommand(circulation.NewReturnCommand(a))
	rootCmd.AddCommand(categories.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(export.NewCommand(a))
	rootCmd.AddCommand(verify.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.NewVersionCommand())
	rootCmd.AddCommand(a.NewManCommand())
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "citylib %s\n", a.version)
			if a.config.Verbose {
				_, _ = fmt.Fprintf(out, "  commit:   %s\n", a.commit)
				_, _ = fmt.Fprintf(out, "  built:    %s\n", a.date)
				_, _ = fmt.Fprintf(out, "  built by: %s\n", a.builtBy)
			}
		},
	}
}

// NewManCommand creates the man command.
func (a *App) NewManCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:    "man",
		Short:  "Generate man pages",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
				return errors.WrapIO("create", dir, err)
			}

			header := &doc.GenManHeader{
				Title:   "CITYLIB",
				Section: "1",
				Source:  "citylib " + a.version,
				Manual:  "City Library Manual",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return errors.WrapIO("write", dir, err)
			}

			a.logger.Debug().Str("dir", dir).Msg("man pages generated")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Man pages written to %s\n", dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "man", "Directory to write man pages to")
	return cmd
}
