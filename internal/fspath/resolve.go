package fspath

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/battyone/sys/internal/except"
	"github.com/battyone/sys/internal/sysfs"
)

// DefaultMaxRescans bounds the number of symbolic links Canonical expands.
const DefaultMaxRescans = 40

var (
	getenv = os.Getenv
	args   = func() []string { return os.Args }
)

// Resolver performs the path operations which consult the filesystem.
type Resolver struct {
	oracle     sysfs.Oracle
	platform   Platform
	maxRescans int
}

// ResolverOption customizes a Resolver.
type ResolverOption func(*Resolver)

// WithPlatform sets the platform of the paths built from the oracle's answers. It defaults to
// Native.
func WithPlatform(pl Platform) ResolverOption {
	return func(r *Resolver) { r.platform = pl }
}

// WithMaxRescans sets the number of symbolic link expansions after which Canonical gives up.
func WithMaxRescans(n int) ResolverOption {
	return func(r *Resolver) { r.maxRescans = n }
}

// NewResolver returns a resolver querying oracle.
func NewResolver(oracle sysfs.Oracle, opts ...ResolverOption) *Resolver {
	r := &Resolver{oracle: oracle, platform: Native, maxRescans: DefaultMaxRescans}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default resolves paths against the host filesystem.
var Default = NewResolver(sysfs.OS)

// Oracle returns the resolver's underlying filesystem.
func (r *Resolver) Oracle() sysfs.Oracle {
	return r.oracle
}

// CurrentPath returns the process' working directory.
func (r *Resolver) CurrentPath() (Path, error) {
	cwd, err := r.oracle.Getwd()
	if err != nil {
		return Path{}, fmt.Errorf("%w: %v", ErrStatus, err)
	}
	return r.platform.New(cwd), nil
}

// Absolute composes p with base. A relative (or empty) base is first made absolute against the
// current directory.
func (r *Resolver) Absolute(p, base Path) (Path, error) {
	if !base.IsAbsolute() {
		cwd, err := r.CurrentPath()
		if err != nil {
			return Path{}, err
		}
		base = base.Absolute(cwd)
	}
	return p.Absolute(base), nil
}

// Canonical returns the absolute form of p, relative to base, without symbolic links nor "." and
// ".." elements. The path must exist.
func (r *Resolver) Canonical(ctx context.Context, p, base Path) (Path, error) {
	source, err := r.Absolute(p, base)
	if err != nil {
		return Path{}, err
	}
	ft, err := r.oracle.SymlinkStatus(source.text)
	if err != nil {
		return Path{}, fmt.Errorf("%w: %v", ErrStatus, err)
	}
	if ft == sysfs.FileTypeNotFound {
		return Path{}, fmt.Errorf("%w: %s", ErrNotFound, source)
	}

	for rescans := 0; ; rescans++ {
		if err := ctx.Err(); err != nil {
			return Path{}, err
		}
		result, next, err := r.expand(source)
		if err != nil {
			return Path{}, err
		}
		if next == nil {
			result.MakePreferred()
			slog.Debug(
				"Canonicalized path.",
				except.LogPathAttr(p),
				slog.String("result", result.text),
			)
			return result, nil
		}
		if rescans >= r.maxRescans {
			return Path{}, fmt.Errorf("%w: %s", ErrSymlinkLoop, p)
		}
		source = *next
	}
}

// expand rebuilds source one element at a time, dropping "." and applying "..". When it reaches a
// symbolic link, it returns the source to rescan instead.
func (r *Resolver) expand(source Path) (Path, *Path, error) {
	result := source.with("")
	for it := source.Begin(); !it.AtEnd(); it.Next() {
		elem := it.Elem()
		switch elem.text {
		case ".":
			continue
		case "..":
			if result.HasRelativePath() {
				result.RemoveFilename()
			}
			continue
		}
		result.AppendPath(elem)

		ft, err := r.oracle.SymlinkStatus(result.text)
		if err != nil {
			return Path{}, nil, fmt.Errorf("%w: %v", ErrStatus, err)
		}
		if ft != sysfs.FileTypeSymlink {
			continue
		}
		target, err := r.oracle.ReadSymlink(result.text)
		if err != nil {
			return Path{}, nil, fmt.Errorf("%w: %v", ErrStatus, err)
		}

		next := source.with(target).Absolute(result.ParentPath())
		for it.Next(); !it.AtEnd(); it.Next() {
			next.AppendPath(it.Elem())
		}
		slog.Debug(
			"Expanded symbolic link.",
			slog.String("link", result.text),
			slog.String("target", target),
		)
		return result, &next, nil
	}
	return result, nil, nil
}

// MakeAbsolute replaces p with its absolute form, see Absolute.
func (r *Resolver) MakeAbsolute(p *Path, base Path) error {
	abs, err := r.Absolute(*p, base)
	if err != nil {
		return err
	}
	p.AssignPath(abs)
	return nil
}

// MakeCanonical replaces p with its canonical form, see Canonical. The path is left untouched on
// error.
func (r *Resolver) MakeCanonical(ctx context.Context, p *Path, base Path) error {
	canon, err := r.Canonical(ctx, *p, base)
	if err != nil {
		return err
	}
	p.AssignPath(canon)
	return nil
}

// Status returns the type of p's entry, following symbolic links.
func (r *Resolver) Status(p Path) (sysfs.FileType, error) {
	return r.oracle.Status(p.text)
}

// SymlinkStatus returns the type of p's entry, without following a final symbolic link.
func (r *Resolver) SymlinkStatus(p Path) (sysfs.FileType, error) {
	return r.oracle.SymlinkStatus(p.text)
}

// Exists returns true iff p designates a directory.
func (r *Resolver) Exists(p Path) bool {
	ft, err := r.Status(p)
	if err != nil {
		slog.Debug("Status query failed.", except.LogPathAttr(p), except.LogErrAttr(err))
	}
	return ft == sysfs.FileTypeDirectory
}

// Create creates a single directory.
func (r *Resolver) Create(p Path) bool {
	return r.oracle.Mkdir(p.text)
}

// CreateAll creates a directory along with any missing ancestors. It returns true if the
// directory exists afterwards.
func (r *Resolver) CreateAll(p Path) bool {
	if p.Empty() {
		return false
	}
	if name := p.Filename().text; name == "." || name == ".." {
		return r.CreateAll(p.ParentPath())
	}
	if ft, _ := r.Status(p); ft == sysfs.FileTypeDirectory {
		return true
	}
	if parent := p.ParentPath(); !parent.Empty() {
		if ft, _ := r.Status(parent); ft == sysfs.FileTypeNotFound && !r.CreateAll(parent) {
			return false
		}
	}
	return r.Create(p)
}

// Remove removes a single empty directory.
func (r *Resolver) Remove(p Path) bool {
	return r.oracle.Rmdir(p.text)
}

// OpenDir returns a cursor over the entries of directory p.
func (r *Resolver) OpenDir(p Path) *sysfs.Dir {
	return r.oracle.OpenDir(p.text)
}

// ExecutablePath returns the directory containing the running program, or an empty path if it
// cannot be determined. When the oracle cannot locate the program's image, the program name is
// searched for relative to the working directory and then to each PATH entry.
func (r *Resolver) ExecutablePath(ctx context.Context) Path {
	if fp, err := r.oracle.Executable(); err == nil {
		exe, err := r.Canonical(ctx, r.platform.New(fp), Path{})
		if err == nil {
			return *exe.RemoveFilename()
		}
		slog.Warn("Executable canonicalization failed.", slog.String("path", fp), except.LogErrAttr(err))
	}

	argv := args()
	if len(argv) == 0 || argv[0] == "" {
		return r.platform.New("")
	}
	name := r.platform.New(argv[0])
	bases := append([]Path{{}}, r.platform.SplitList(getenv("PATH"))...)
	for _, base := range bases {
		exe, err := r.Canonical(ctx, name, base)
		if err != nil {
			continue
		}
		if ft, _ := r.Status(exe); ft == sysfs.FileTypeRegular {
			return *exe.RemoveFilename()
		}
	}
	return r.platform.New("")
}
