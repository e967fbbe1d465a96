package doxygenx

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"go.eggybyte.com/eggdoc/core/errors"
)

var entryPattern = regexp.MustCompile(`^(\w+)\s*=\s*(.*)$`)

// ParseConfig reads KEY = VALUE lines from r.
// Blank lines and lines starting with '#' are skipped, as are lines that
// do not match the KEY = VALUE form. Later duplicates win.
func ParseConfig(r io.Reader) (map[string]string, error) {
	entries := make(map[string]string)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		m := entryPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		entries[m[1]] = m[2]
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "doxygenx.ParseConfig", err)
	}
	return entries, nil
}

// ReadConfigFile parses the configuration file at path.
func ReadConfigFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		code := errors.CodeInternal
		if os.IsNotExist(err) {
			code = errors.CodeNotFound
		}
		return nil, errors.Build(code).
			WithOp("doxygenx.ReadConfigFile").
			WithErr(err).
			WithDetails("path", path).
			Err()
	}
	defer f.Close()

	return ParseConfig(f)
}
