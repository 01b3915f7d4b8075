package syspath

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/battyone/sys/internal/fspath"
	"github.com/battyone/sys/internal/sysfs"
)

var (
	// DefaultWalkDepth is the maximum depth explored by Walk when unspecified.
	DefaultWalkDepth = 4

	// skippedDirs contains directory names which Walk never descends into.
	skippedDirs = []string{".git", "node_modules"}
)

// Walk returns the paths of all entries under root whose name matches pattern, in depth-first
// lexical order. Entries directly in root are at depth 1; directories at maxDepth are listed but
// not descended into. Symbolic links are never followed.
func Walk(
	ctx context.Context,
	r *fspath.Resolver,
	root fspath.Path,
	maxDepth int,
	pattern string,
) ([]fspath.Path, error) {
	matcher, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}

	var found []fspath.Path
	var visit func(dir fspath.Path, depth int) error
	visit = func(dir fspath.Path, depth int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		entries, err := List(r, dir, "")
		if err != nil {
			return err
		}
		for _, entry := range entries {
			child := dir.Join(entry.Name)
			if matcher == nil || matcher.Match(entry.Name) {
				found = append(found, child)
			}
			if entry.Type != sysfs.FileTypeDirectory || depth >= maxDepth ||
				slices.Contains(skippedDirs, entry.Name) {
				continue
			}
			if err := visit(child, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := visit(root, 1); err != nil {
		return nil, err
	}

	slog.Debug(fmt.Sprintf("Found %d entries.", len(found)), slog.String("root", root.String()))
	return found, nil
}
