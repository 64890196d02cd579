// Package export provides the catalog report command.
package export

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/citylib/internal/appcontext"
	"github.com/agentstation/citylib/internal/cmd/constants"
	"github.com/agentstation/citylib/internal/cmd/globals"
	"github.com/agentstation/citylib/internal/report"
	"github.com/agentstation/citylib/pkg/errors"
)

// Title heads every exported report.
const Title = "City Library Catalog"

// NewCommand creates the export command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:     "export",
		GroupID: "management",
		Short:   "Write a full catalog report",
		Long: `Export writes a report with summary counts, every book, every member
and the category breakdown. --format selects markdown (the default),
yaml or json. --out writes to a file instead of stdout.`,
		Example: `  citylib export > catalog.md
  citylib export -o yaml --out catalog.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := app.Library()
			if err != nil {
				return err
			}

			format := globals.Parse(cmd).Format
			if format == "" || format == constants.FormatTable {
				format = report.FormatMarkdown
			}
			r := report.New(Title, lib.ReadOnly().Snapshot())

			if out == "" {
				return report.Write(cmd.OutOrStdout(), r, format)
			}
			if err := writeFile(out, r, format); err != nil {
				return err
			}
			app.Logger().Info().Str("path", out).Str("format", format).Msg("catalog exported")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported catalog to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write the report to this file")
	return cmd
}

func writeFile(path string, r report.Report, format string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.WrapIO("close", path, cerr)
		}
	}()

	return report.Write(f, r, format)
}
