// Package lint checks existing file names against a naming convention.
// It walks a directory, decodes each basename with the profile's unsolve
// direction, and reports which files do not comply.
package lint

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xileflig/naming/internal/convention"
)

// Violation is one file whose name the profile could not decode.
type Violation struct {
	Path string
	Err  error
}

// Report aggregates the outcome of a directory scan.
type Report struct {
	Profile    string
	Total      int
	Compliant  int
	Violations []Violation
}

// Clean reports whether every scanned file complied.
func (r *Report) Clean() bool { return len(r.Violations) == 0 }

// Scan walks dir, strips each file's extension, and runs the profile's
// unsolve on the basename. Hidden files and directories (dot-prefixed)
// are skipped. Results are in lexicographic path order for deterministic
// output.
func Scan(dir string, p *convention.Profile) (*Report, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") && path != dir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	report := &Report{Profile: p.Name()}
	for _, path := range paths {
		report.Total++
		base := filepath.Base(path)
		base = strings.TrimSuffix(base, filepath.Ext(base))
		if _, err := p.Unsolve(base); err != nil {
			report.Violations = append(report.Violations, Violation{Path: path, Err: err})
			continue
		}
		report.Compliant++
	}
	return report, nil
}
