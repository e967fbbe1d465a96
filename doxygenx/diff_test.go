package doxygenx

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.eggybyte.com/eggdoc/core/errors"
	"go.eggybyte.com/eggdoc/testingx"
)

func TestGenerator_ConfigPath(t *testing.T) {
	g, outDir := newTestGenerator(t, nil)

	path, err := g.ConfigPath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, ConfigFileName), path)

	path, err = g.ConfigPath("conf/Doxyfile")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(g.baseDir, "conf", "Doxyfile"), path)

	abs := filepath.Join(t.TempDir(), "Doxyfile")
	path, err = g.ConfigPath(abs)
	require.NoError(t, err)
	assert.Equal(t, abs, path)
}

func TestGenerator_Diff(t *testing.T) {
	values := NewValues()
	require.NoError(t, values.SetInt("TAB_SIZE", 4))
	g, _ := newTestGenerator(t, values)

	path, reused, err := g.LocateOrBuild("")
	require.NoError(t, err)
	require.False(t, reused)

	t.Run("up to date", func(t *testing.T) {
		diff, err := g.Diff(path)
		require.NoError(t, err)
		assert.Empty(t, diff)
	})

	t.Run("changed option", func(t *testing.T) {
		changed := NewValues()
		require.NoError(t, changed.SetInt("TAB_SIZE", 2))
		other := NewGenerator(g.baseDir, g.outputDir, changed, nil)

		diff, err := other.Diff(path)
		require.NoError(t, err)
		assert.Contains(t, diff, "--- "+path)
		assert.Contains(t, diff, "+++ generated")
		assert.Contains(t, diff, "-TAB_SIZE               = 4\n")
		assert.Contains(t, diff, "+TAB_SIZE               = 2\n")
		assert.NotContains(t, diff, "PROJECT_NAME")
	})

	t.Run("missing file", func(t *testing.T) {
		diff, err := g.Diff(filepath.Join(t.TempDir(), "absent.config"))
		require.NoError(t, err)
		assert.Contains(t, diff, "+TAB_SIZE               = 4\n")
		for _, line := range strings.Split(diff, "\n") {
			assert.False(t, strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"), "unexpected removal %q", line)
		}
	})

	t.Run("unreadable path", func(t *testing.T) {
		dir := t.TempDir()
		_, err := g.Diff(dir)
		testingx.AssertError(t, err, errors.CodeConfigBuild)
	})

	t.Run("file is not rewritten", func(t *testing.T) {
		before, err := os.ReadFile(path)
		require.NoError(t, err)
		changed := NewValues()
		require.NoError(t, changed.SetBool("QUIET", true))
		_, err = NewGenerator(g.baseDir, g.outputDir, changed, nil).Diff(path)
		require.NoError(t, err)
		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}
