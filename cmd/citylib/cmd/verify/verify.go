// Package verify provides the catalog consistency check command.
package verify

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/citylib/internal/appcontext"
	"github.com/agentstation/citylib/internal/cmd/messages"
	"github.com/agentstation/citylib/pkg/errors"
)

// NewCommand creates the verify command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "verify",
		GroupID: "management",
		Short:   "Check that issued flags agree with member records",
		Long: `Verify loads the data files and checks that every issued book is held
by exactly one member and that every book a member holds exists and is
marked issued. Each problem is printed on its own line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := app.Library()
			if err != nil {
				return err
			}

			verr := lib.Verify()
			if verr == nil {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), messages.CatalogConsistent)
				return err
			}

			problems := unjoin(verr)
			for _, p := range problems {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "  "+problemText(p))
			}
			return fmt.Errorf("catalog has %d consistency problems", len(problems))
		},
	}
}

// unjoin splits an errors.Join result back into its parts.
func unjoin(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

func problemText(err error) string {
	var verr *errors.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return err.Error()
}
