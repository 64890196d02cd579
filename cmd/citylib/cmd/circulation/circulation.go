// Package circulation provides the issue and return commands.
package circulation

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/citylib"
	"github.com/agentstation/citylib/internal/appcontext"
	"github.com/agentstation/citylib/internal/cmd/globals"
	"github.com/agentstation/citylib/internal/cmd/messages"
	"github.com/agentstation/citylib/pkg/errors"
)

// NewIssueCommand creates the issue command with app dependencies.
func NewIssueCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "issue <book-id> <member-id>",
		GroupID: "core",
		Short:   "Lend a book to a member",
		Example: `  citylib issue 101 201`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, args, func(ctx context.Context, lib citylib.Library, bookID, memberID int) (string, error) {
				return messages.BookIssued(memberID), lib.IssueBook(ctx, bookID, memberID)
			})
		},
	}
}

// NewReturnCommand creates the return command with app dependencies.
func NewReturnCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "return <book-id> <member-id>",
		GroupID: "core",
		Short:   "Take a book back from a member",
		Example: `  citylib return 101 201`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, args, func(ctx context.Context, lib citylib.Library, bookID, memberID int) (string, error) {
				return messages.BookReturned, lib.ReturnBook(ctx, bookID, memberID)
			})
		},
	}
}

type transition func(ctx context.Context, lib citylib.Library, bookID, memberID int) (string, error)

// run parses both ids and applies op. A failed save still prints the
// success line because the change stands in memory.
func run(cmd *cobra.Command, app appcontext.Interface, args []string, op transition) error {
	bookID, err := globals.ParseID("book-id", args[0])
	if err != nil {
		return messages.Error(err)
	}
	memberID, err := globals.ParseID("member-id", args[1])
	if err != nil {
		return messages.Error(err)
	}

	lib, err := app.Library()
	if err != nil {
		return err
	}

	done, err := op(cmd.Context(), lib, bookID, memberID)
	if err != nil && !errors.IsIOError(err) {
		return messages.Error(err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), done)
	return messages.Error(err)
}
