// Package members provides the one-shot member commands.
package members

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

// NewCommand creates the members command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "members",
		GroupID: "core",
		Short:   "Register and list members",
		Aliases: []string{"member"},
		Example: `  citylib members add --name Alice --email alice@example.com
  citylib members list
  citylib members show 201`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newAddCommand(app))
	cmd.AddCommand(newListCommand(app))
	cmd.AddCommand(newShowCommand(app))

	return cmd
}

func newAddCommand(app appcontext.Interface) *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := app.Library()
			if err != nil {
				return err
			}

			id, saveErr := lib.AddMember(cmd.Context(), name, email)
			member, err := lib.Member(id)
			if err != nil {
				return err
			}

			format := output.Format(app.OutputFormat(cmd.OutOrStdout()))
			if output.IsTabular(format) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), messages.MemberAdded(id))
			} else if err := output.Write(cmd.OutOrStdout(), format, table.MemberDetails(member), member); err != nil {
				return err
			}
			return messages.Error(saveErr)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Member name")
	cmd.Flags().StringVar(&email, "email", "", "Member email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newListCommand(app appcontext.Interface) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List every member in id order",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := app.Library()
			if err != nil {
				return err
			}

			members := globals.Limit(lib.Members(), limit)
			format := output.Format(app.OutputFormat(cmd.OutOrStdout()))
			if output.IsTabular(format) && len(members) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), messages.NoMembers)
				return err
			}
			if members == nil {
				members = []catalogs.Member{}
			}
			return output.Write(cmd.OutOrStdout(), format, table.MembersToTableData(members), members)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Limit number of results")
	return cmd
}

func newShowCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "show <member-id>",
		Short: "Show one member and the books they hold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := globals.ParseID("member-id", args[0])
			if err != nil {
				return messages.Error(err)
			}

			lib, err := app.Library()
			if err != nil {
				return err
			}
			member, err := lib.Member(id)
			if err != nil {
				return messages.Error(err)
			}

			return output.Write(cmd.OutOrStdout(), output.Format(app.OutputFormat(cmd.OutOrStdout())),
				table.MemberDetails(member), member)
		},
	}
}
