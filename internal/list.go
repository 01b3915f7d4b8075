package syspath

import (
	"errors"
	"fmt"
	"slices"

	"github.com/battyone/sys/internal/fspath"
	"github.com/battyone/sys/internal/sysfs"
	"github.com/gobwas/glob"
)

var (
	errInvalidPattern = errors.New("invalid pattern")
	errListFailed     = errors.New("directory listing failed")
)

func compilePattern(pattern string) (glob.Glob, error) {
	if pattern == "" {
		return nil, nil
	}
	matcher, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidPattern, err)
	}
	return matcher, nil
}

// Entry is a directory entry along with its type.
type Entry struct {
	Name string
	Type sysfs.FileType
}

// List returns the entries of directory dir whose name matches pattern, sorted by name. An empty
// pattern matches every entry. Symbolic links are not followed when typing entries.
func List(r *fspath.Resolver, dir fspath.Path, pattern string) ([]Entry, error) {
	matcher, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}

	names, err := r.OpenDir(dir).Names()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errListFailed, err)
	}
	slices.Sort(names)

	var entries []Entry
	for _, name := range names {
		if matcher != nil && !matcher.Match(name) {
			continue
		}
		ft, err := r.SymlinkStatus(dir.Join(name))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errListFailed, err)
		}
		entries = append(entries, Entry{Name: name, Type: ft})
	}
	return entries, nil
}
