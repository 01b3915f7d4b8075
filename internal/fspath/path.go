package fspath

import (
	"strings"
)

// Path is a filesystem path. Its zero value is the empty path on the Native platform.
//
// Paths are values: decomposition methods return new paths and never modify their receiver.
// Modifiers (Append, RemoveFilename, ...) act in place and invalidate the path's iterators.
type Path struct {
	text     string
	platform Platform
	version  uint64
}

// New returns a path using the Native platform's conventions.
func New(s string) Path {
	return Native.New(s)
}

// Platform returns the conventions used to interpret the path.
func (p Path) Platform() Platform {
	if p.platform.flavor == nil {
		return Native
	}
	return p.platform
}

func (p Path) with(s string) Path {
	return Path{text: s, platform: p.platform}
}

// String returns the path's textual form, unmodified.
func (p Path) String() string {
	return p.text
}

// Len returns the length in bytes of the path's textual form.
func (p Path) Len() int {
	return len(p.text)
}

// Empty returns true iff the path has no characters.
func (p Path) Empty() bool {
	return p.text == ""
}

// Equal returns true iff both paths have identical text. No normalization is performed.
func (p Path) Equal(q Path) bool {
	return p.text == q.text
}

// EqualString is like Equal, comparing against raw text.
func (p Path) EqualString(s string) bool {
	return p.text == s
}

func (p *Path) touch() {
	p.version++
}

// Clear empties the path.
func (p *Path) Clear() *Path {
	p.text = ""
	p.touch()
	return p
}

// Assign replaces the path's text.
func (p *Path) Assign(s string) *Path {
	p.text = s
	p.touch()
	return p
}

// AssignPath replaces the path's text and platform with q's.
func (p *Path) AssignPath(q Path) *Path {
	p.text = q.text
	p.platform = q.platform
	p.touch()
	return p
}

// Swap exchanges the contents of both paths.
func (p *Path) Swap(q *Path) {
	p.text, q.text = q.text, p.text
	p.platform, q.platform = q.platform, p.platform
	p.touch()
	q.touch()
}

func (p *Path) appendSeparatorIfNeeded() {
	pl := p.Platform()
	n := len(p.text)
	if n > 0 && !pl.isDriveElement(p.text) && !pl.isSeparator(p.text[n-1]) {
		p.text += string(pl.preferred)
	}
}

// Append extends the path with s, inserting the preferred separator unless the path is empty,
// already ends with a separator (or drive colon), or s starts with a separator. Appending an empty
// string is a no-op.
func (p *Path) Append(s string) *Path {
	if s == "" {
		return p
	}
	if !p.Platform().isSeparator(s[0]) {
		p.appendSeparatorIfNeeded()
	}
	p.text += s
	p.touch()
	return p
}

// AppendPath is like Append using q's text. The path may be appended to itself.
func (p *Path) AppendPath(q Path) *Path {
	return p.Append(q.text)
}

// Concat appends s verbatim, without inserting any separator.
func (p *Path) Concat(s string) *Path {
	p.text += s
	p.touch()
	return p
}

// Join returns a copy of the path with each element appended in turn.
func (p Path) Join(elems ...string) Path {
	q := p.with(p.text)
	for _, elem := range elems {
		q.Append(elem)
	}
	return q
}

// MakePreferred converts generic separators to the platform's preferred one.
func (p *Path) MakePreferred() *Path {
	if pl := p.Platform(); pl.preferred != GenericSeparator {
		p.text = strings.ReplaceAll(p.text, string(GenericSeparator), string(pl.preferred))
		p.touch()
	}
	return p
}

// RemoveFilename truncates the path to its parent path.
func (p *Path) RemoveFilename() *Path {
	end := p.Platform().parentPathEnd(p.text)
	if end == none {
		end = 0
	}
	p.text = p.text[:end]
	p.touch()
	return p
}

// RemoveTrailingSeparator drops a single trailing separator, if any.
func (p *Path) RemoveTrailingSeparator() *Path {
	if n := len(p.text); n > 0 && p.Platform().isSeparator(p.text[n-1]) {
		p.text = p.text[:n-1]
		p.touch()
	}
	return p
}

// ReplaceExtension replaces the filename's extension with ext, a leading dot being added if
// missing. An empty ext removes the extension.
func (p *Path) ReplaceExtension(ext string) *Path {
	if old := p.Extension(); !old.Empty() {
		p.text = p.text[:len(p.text)-old.Len()]
	}
	if ext != "" && ext[0] != '.' {
		p.text += "."
	}
	p.text += ext
	p.touch()
	return p
}

// RootName returns the path's root name, e.g. "C:" or "//server".
func (p Path) RootName() Path {
	pl := p.Platform()
	c := pl.begin(p.text)
	if c.pos != len(p.text) && pl.isRootNameElement(c.elem) {
		return p.with(c.elem)
	}
	return p.with("")
}

// RootDirectory returns the separator marking the path as rooted, if any.
func (p Path) RootDirectory() Path {
	pos := p.Platform().rootDirectoryStart(p.text, len(p.text))
	if pos == none {
		return p.with("")
	}
	return p.with(p.text[pos : pos+1])
}

// RootPath returns the concatenation of the root name and root directory.
func (p Path) RootPath() Path {
	return p.with(p.RootName().text + p.RootDirectory().text)
}

// RelativePath returns the path after its root path.
func (p Path) RelativePath() Path {
	pl := p.Platform()
	s := p.text
	c := pl.begin(s)
	for c.pos != len(s) && (pl.isSeparator(c.elem[0]) || pl.isDriveElement(c.elem)) {
		c = pl.increment(s, c)
	}
	return p.with(s[c.pos:])
}

// ParentPath returns the path without its last element. Trailing separators are ignored so that
// the parent of "a/b/" is "a/b".
func (p Path) ParentPath() Path {
	end := p.Platform().parentPathEnd(p.text)
	if end == none {
		return p.with("")
	}
	return p.with(p.text[:end])
}

// Filename returns the path's last element. A trailing non-root separator yields ".".
func (p Path) Filename() Path {
	pl := p.Platform()
	s := p.text
	pos := pl.filenamePos(s, len(s))
	if len(s) > 0 && pos > 0 && pl.isSeparator(s[pos]) && !pl.isRootSeparator(s, pos) {
		return p.with(".")
	}
	return p.with(s[pos:])
}

// Stem returns the filename without its extension.
func (p Path) Stem() Path {
	name := p.Filename().text
	if name == "." || name == ".." {
		return p.with(name)
	}
	if pos := strings.LastIndexByte(name, '.'); pos > 0 {
		return p.with(name[:pos])
	}
	return p.with(name)
}

// Extension returns the filename's suffix starting at its last dot. Filenames starting with their
// only dot, such as ".bashrc", have no extension.
func (p Path) Extension() Path {
	name := p.Filename().text
	if name == "." || name == ".." {
		return p.with("")
	}
	if pos := strings.LastIndexByte(name, '.'); pos > 0 {
		return p.with(name[pos:])
	}
	return p.with("")
}

func (p Path) HasRootName() bool      { return !p.RootName().Empty() }
func (p Path) HasRootDirectory() bool { return !p.RootDirectory().Empty() }
func (p Path) HasRootPath() bool      { return !p.RootPath().Empty() }
func (p Path) HasRelativePath() bool  { return !p.RelativePath().Empty() }
func (p Path) HasParentPath() bool    { return !p.ParentPath().Empty() }
func (p Path) HasFilename() bool      { return !p.Filename().Empty() }
func (p Path) HasStem() bool          { return !p.Stem().Empty() }
func (p Path) HasExtension() bool     { return !p.Extension().Empty() }

// IsAbsolute returns true if the path designates the same location regardless of the current
// directory. Windows paths need both a root name and a root directory.
func (p Path) IsAbsolute() bool {
	if p.Platform().hasDrives() {
		return p.HasRootName() && p.HasRootDirectory()
	}
	return p.HasRootDirectory()
}

// IsRelative is the negation of IsAbsolute.
func (p Path) IsRelative() bool {
	return !p.IsAbsolute()
}

// Absolute composes the path with base, which should itself be absolute. It does not access the
// filesystem.
func (p Path) Absolute(base Path) Path {
	if p.Empty() {
		return p.with(base.text)
	}
	rootName := p.RootName()
	hasRootDir := p.HasRootDirectory()
	switch {
	case !rootName.Empty() && hasRootDir:
		return p
	case !rootName.Empty():
		res := rootName
		res.Append(base.RootDirectory().text)
		if strings.EqualFold(base.RootName().text, rootName.text) {
			res.Append(base.RelativePath().text)
		}
		res.Append(p.RelativePath().text)
		return res
	case hasRootDir:
		res := base.RootName()
		if res.Empty() {
			return p
		}
		res.platform = p.platform
		res.Append(p.text)
		return res
	default:
		res := p.with(base.text)
		res.Append(p.text)
		return res
	}
}
