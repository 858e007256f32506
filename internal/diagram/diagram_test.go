package diagram

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildIsDeterministic(t *testing.T) {
	require.Equal(t, Build().String(), Build().String(),
		"same schema must produce identical graph text")
}

func TestBuildContainsAllTables(t *testing.T) {
	src := Build().String()
	require.True(t, strings.HasPrefix(src, "digraph"))
	for _, table := range Tables() {
		require.Contains(t, src, table.Name)
		for _, col := range table.Columns {
			require.Contains(t, src, `PORT="`+col.Name+`"`, "every column cell needs a connection point")
		}
	}
}

func TestBuildDrawsOneEdgePerForeignKey(t *testing.T) {
	src := Build().String()
	require.Len(t, References(), 6)
	require.Equal(t, 6, strings.Count(src, `arrowhead="none"`),
		"each foreign key becomes one plain connecting line")
}

func TestBuildNodeStyling(t *testing.T) {
	src := Build().String()
	require.Contains(t, src, `rankdir="LR"`)
	require.Contains(t, src, `splines="ortho"`)
	require.Contains(t, src, `bgcolor="white"`)
	require.Contains(t, src, `BGCOLOR="deepskyblue"`)
	require.Contains(t, src, `shape="plaintext"`)
}

func TestRenderWritesImageAndCleansUp(t *testing.T) {
	if _, err := exec.LookPath("dot"); err != nil {
		t.Skip("graphviz dot binary not installed")
	}

	path := filepath.Join(t.TempDir(), "diagram.png")
	require.NoError(t, Render(Build(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))

	_, err = os.Stat(strings.TrimSuffix(path, ".png") + ".gv")
	require.True(t, os.IsNotExist(err), "intermediate graph source should be removed")

	// Rendering again overwrites the image in place.
	require.NoError(t, Render(Build(), path))
}

func TestRenderFailsOnUnwritablePath(t *testing.T) {
	err := Render(Build(), filepath.Join(t.TempDir(), "missing", "nested", "diagram.png"))
	require.Error(t, err)
}
