// core/rollfile/select.go
package rollfile

import (
	"os"
	"path/filepath"
	"sort"
)

// DefaultSuffix is the extension die files are expected to carry.
const DefaultSuffix = ".txt"

// Select resolves inputPath to a deterministic list of die-file paths.
// A directory is widened to its top-level "*<suffix>" entries; anything
// else is treated as a literal path or glob pattern. Candidates that are
// not regular files, or whose extension is not exactly suffix, are
// silently skipped. An empty result is not an error.
func Select(inputPath, suffix string) ([]string, error) {
	abs, err := filepath.Abs(inputPath)
	if err != nil {
		return nil, err
	}

	pattern := abs
	if fi, err := os.Stat(abs); err == nil && fi.IsDir() {
		pattern = filepath.Join(abs, "*"+suffix)
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, m := range matches {
		fi, err := os.Stat(m)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		if filepath.Ext(m) != suffix {
			continue
		}
		paths = append(paths, m)
	}
	// Glob order is lexical already; keep it explicit for determinism.
	sort.Strings(paths)
	return paths, nil
}
