package syspath

import (
	"context"
	"log/slog"

	"github.com/battyone/sys/internal/except"
	"github.com/battyone/sys/internal/fspath"
	"github.com/battyone/sys/internal/group"
)

// Resolution is the outcome of canonicalizing a single path.
type Resolution struct {
	Input  fspath.Path
	Output fspath.Path
	Err    error
}

// CanonicalizeAll canonicalizes paths concurrently against base. Results are in input order.
func CanonicalizeAll(
	ctx context.Context,
	r *fspath.Resolver,
	paths []fspath.Path,
	base fspath.Path,
) []Resolution {
	results := make([]Resolution, len(paths))
	var g group.Group
	for i, p := range paths {
		g.Go(func() {
			out, err := r.Canonical(ctx, p, base)
			if err != nil {
				slog.Debug(
					"Canonicalization failed.",
					dataAttrs(except.LogPathAttr(p)),
					except.LogErrAttr(err),
				)
			}
			results[i] = Resolution{Input: p, Output: out, Err: err}
		})
	}
	g.Wait()
	return results
}
