package doxygenx

import (
	"io/fs"
	"os"

	"github.com/pmezard/go-difflib/difflib"

	"go.eggybyte.com/eggdoc/core/errors"
)

// Diff returns a unified diff from the file at path to the configuration
// this generator would write. A missing file diffs as empty. The result is
// empty when the file is up to date.
func (g *Generator) Diff(path string) (string, error) {
	const op = "doxygenx.Diff"

	current, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", errors.Build(errors.CodeConfigBuild).
			WithOp(op).
			WithErr(err).
			WithMsgf("read %s", path).
			WithDetails("path", path).
			Err()
	}

	want, err := g.Content()
	if err != nil {
		return "", err
	}

	var before []string
	if len(current) > 0 {
		before = difflib.SplitLines(string(current))
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        before,
		B:        difflib.SplitLines(string(want)),
		FromFile: path,
		ToFile:   "generated",
		Context:  1,
	})
}
