package globals

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/citylib/pkg/errors"
)

func TestParse(t *testing.T) {
	root := &cobra.Command{Use: "root"}
	root.PersistentFlags().String("format", "", "")
	root.PersistentFlags().Bool("quiet", false, "")
	root.PersistentFlags().Bool("verbose", false, "")
	root.PersistentFlags().Bool("no-color", false, "")

	child := &cobra.Command{Use: "child", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(child)

	root.SetArgs([]string{"child", "--format", "yaml", "--quiet"})
	require.NoError(t, root.Execute())

	flags := Parse(child)
	assert.Equal(t, "yaml", flags.Format)
	assert.True(t, flags.Quiet)
	assert.False(t, flags.Verbose)
}

func TestListFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "list", Run: func(*cobra.Command, []string) {}}
	AddListFlags(cmd, "title", "sort key")

	require.NoError(t, cmd.ParseFlags([]string{"--by", "author", "-l", "2"}))
	flags := ParseList(cmd)
	assert.Equal(t, "author", flags.By)
	assert.Equal(t, 2, flags.Limit)

	assert.Equal(t, []int{1, 2}, Limit([]int{1, 2, 3}, 2))
	assert.Equal(t, []int{1, 2, 3}, Limit([]int{1, 2, 3}, 0))
}

func TestParseID(t *testing.T) {
	id, err := ParseID("book-id", " 101 ")
	require.NoError(t, err)
	assert.Equal(t, 101, id)

	_, err = ParseID("book-id", "abc")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
