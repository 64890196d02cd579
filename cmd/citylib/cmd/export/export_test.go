package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/citylib"
	"github.com/agentstation/citylib/internal/appcontext"
	"github.com/agentstation/citylib/pkg/catalogs"
	"github.com/agentstation/citylib/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	lib, err := citylib.New(citylib.WithInMemory(), citylib.WithCatalog(catalogs.TestCatalog(t)))
	require.NoError(t, err)
	app := &appcontext.Mock{LibraryFunc: func() (citylib.Library, error) { return lib, nil }}

	root := &cobra.Command{Use: "citylib", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().StringP("format", "o", "", "")
	root.AddGroup(&cobra.Group{ID: "management", Title: "Management Commands:"})
	root.AddCommand(NewCommand(app))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(append([]string{"export"}, args...))
	err = root.Execute()
	return out.String(), err
}

func TestExport(t *testing.T) {
	t.Run("markdown by default", func(t *testing.T) {
		out, err := execute(t)
		require.NoError(t, err)
		assert.Contains(t, out, "# City Library Catalog")
		assert.Contains(t, out, "## Books")
		assert.Contains(t, out, "Persuasion")
		assert.Contains(t, out, "Classic (2)")
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, "--format", "json")
		require.NoError(t, err)
		assert.Contains(t, out, `"title": "City Library Catalog"`)
		assert.Contains(t, out, `"issued": 1`)
		assert.Contains(t, out, `"available": 3`)
	})

	t.Run("yaml to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		out, err := execute(t, "-o", "yaml", "--out", path)
		require.NoError(t, err)
		assert.Equal(t, "Exported catalog to "+path+"\n", out)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "title: City Library Catalog")
		assert.Contains(t, string(data), "members: 2")
	})

	t.Run("unwritable file", func(t *testing.T) {
		_, err := execute(t, "--out", filepath.Join(t.TempDir(), "missing", "catalog.md"))
		require.Error(t, err)
		assert.True(t, errors.IsIOError(err))
	})
}
