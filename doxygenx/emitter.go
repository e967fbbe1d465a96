package doxygenx

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.eggybyte.com/eggdoc/core/errors"
	"go.eggybyte.com/eggdoc/core/log"
)

// ConfigFileName is the name of the generated file inside the output directory.
const ConfigFileName = "doxygen.config"

// keyWidth is the column width keys are padded to. Longer keys are not truncated.
const keyWidth = 22

// Generator writes doxygen configuration files from a Values set.
type Generator struct {
	baseDir   string
	outputDir string
	values    *Values
	logger    log.Logger
}

// NewGenerator returns a generator for the project rooted at baseDir.
// A relative outputDir is resolved against baseDir. A nil logger discards output.
func NewGenerator(baseDir, outputDir string, values *Values, logger log.Logger) *Generator {
	if logger == nil {
		logger = log.Nop()
	}
	return &Generator{
		baseDir:   baseDir,
		outputDir: outputDir,
		values:    values,
		logger:    logger,
	}
}

// OutputDirectory returns the absolute output directory.
func (g *Generator) OutputDirectory() (string, error) {
	return g.absPath(g.outputDir)
}

func (g *Generator) absPath(p string) (string, error) {
	if !filepath.IsAbs(p) {
		p = filepath.Join(g.baseDir, p)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", errors.Wrapf(errors.CodeConfigBuild, "doxygenx.Generator", err, "resolve %s", p)
	}
	return abs, nil
}

// ConfigPath returns the absolute path LocateOrBuild uses for explicitPath:
// explicitPath resolved against the base directory, or doxygen.config inside
// the output directory when explicitPath is empty.
func (g *Generator) ConfigPath(explicitPath string) (string, error) {
	if explicitPath != "" {
		return g.absPath(explicitPath)
	}
	outDir, err := g.OutputDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(outDir, ConfigFileName), nil
}

// LocateOrBuild returns the configuration file to run doxygen with.
//
// With an explicit path that exists, the file is returned untouched and
// reused is true. With an explicit path that does not exist, the file is
// built there. Without an explicit path, doxygen.config is built inside the
// output directory. Relative explicit paths are resolved against the base
// directory. The returned path is absolute.
func (g *Generator) LocateOrBuild(explicitPath string) (path string, reused bool, err error) {
	if explicitPath != "" {
		path, err = g.ConfigPath(explicitPath)
		if err != nil {
			return "", false, err
		}
		info, statErr := os.Stat(path)
		switch {
		case statErr == nil && info.IsDir():
			return "", false, errors.Build(errors.CodeConfigBuild).
				WithOp("doxygenx.LocateOrBuild").
				WithMsgf("configuration file %s is a directory", path).
				WithDetails("path", path).
				Err()
		case statErr == nil:
			g.logger.Info("using existing configuration file", log.Str("path", path))
			return path, true, nil
		case !errors.Is(statErr, fs.ErrNotExist):
			return "", false, errors.Build(errors.CodeConfigBuild).
				WithOp("doxygenx.LocateOrBuild").
				WithErr(statErr).
				WithMsgf("stat %s", path).
				WithDetails("path", path).
				Err()
		}
	} else {
		if path, err = g.ConfigPath(""); err != nil {
			return "", false, err
		}
	}

	if err := g.Build(path); err != nil {
		return "", false, err
	}
	return path, false, nil
}

// Build writes the full configuration to path, creating parent directories.
// An existing file is truncated. A partially written file is left in place on error.
func (g *Generator) Build(path string) (err error) {
	const op = "doxygenx.Build"
	fail := func(cause error, format string, args ...any) error {
		return errors.Build(errors.CodeConfigBuild).
			WithOp(op).
			WithErr(cause).
			WithMsgf(format, args...).
			WithDetails("path", path).
			Err()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fail(err, "create directory for %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fail(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fail(cerr, "close %s", path)
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := g.WriteTo(w); err != nil {
		return fail(err, "write %s", path)
	}
	if err := w.Flush(); err != nil {
		return fail(err, "write %s", path)
	}

	g.logger.Info("configuration file written", log.Str("path", path), log.Int("options", len(registry)))
	return nil
}

// WriteTo writes every option in declaration order: the description line,
// the KEY = VALUE line with the key padded to 22 columns, and a blank line.
// OUTPUT_DIRECTORY defaults to the absolute output directory.
func (g *Generator) WriteTo(w io.Writer) (int64, error) {
	outDir, err := g.OutputDirectory()
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	for _, opt := range registry {
		val := resolve(opt, g.values)
		if opt.Key == "OUTPUT_DIRECTORY" && strings.TrimSpace(g.values.String(opt.Key)) == "" {
			val = outDir
		}
		writeEntry(&buf, opt.Description, opt.Key, val)
	}

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// Content returns the configuration text WriteTo would write.
func (g *Generator) Content() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := g.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeEntry(buf *bytes.Buffer, desc, key, val string) {
	buf.WriteString(desc)
	buf.WriteByte('\n')
	fmt.Fprintf(buf, "%-*s = %s\n", keyWidth, key, val)
	buf.WriteByte('\n')
}
