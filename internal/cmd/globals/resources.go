package globals

import "github.com/spf13/cobra"

// ListFlags holds flags shared by the book listing commands.
type ListFlags struct {
	By    string
	Limit int
}

// ParseList extracts list flags from a command.
// The command must have had AddListFlags called on it, otherwise this will panic.
func ParseList(cmd *cobra.Command) *ListFlags {
	return &ListFlags{
		By:    mustGetString(cmd, "by"),
		Limit: mustGetInt(cmd, "limit"),
	}
}

// AddListFlags adds --by and --limit to a command. byUsage describes the
// accepted --by values for that command.
func AddListFlags(cmd *cobra.Command, byDefault, byUsage string) *ListFlags {
	flags := &ListFlags{}

	cmd.Flags().StringVar(&flags.By, "by", byDefault, byUsage)
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0,
		"Limit number of results")

	return flags
}

// Limit truncates items to at most n entries; n <= 0 means no limit.
func Limit[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
