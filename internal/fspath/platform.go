// Package fspath implements portable filesystem paths. A Path is a plain string interpreted
// according to a Platform's conventions; decomposition is purely lexical and never touches the
// filesystem. Operations which do, such as canonicalization, live on a Resolver.
package fspath

import "strings"

// GenericSeparator is recognized as a separator on every platform.
const GenericSeparator = '/'

type flavor interface {
	isSeparator(c byte) bool
	// hasDrives returns true if a root name can end with a colon, e.g. "C:".
	hasDrives() bool
}

type posixFlavor struct{}

func (posixFlavor) isSeparator(c byte) bool { return c == '/' }
func (posixFlavor) hasDrives() bool         { return false }

type windowsFlavor struct{}

func (windowsFlavor) isSeparator(c byte) bool { return c == '/' || c == '\\' }
func (windowsFlavor) hasDrives() bool         { return true }

// Platform holds the lexical conventions of an operating system family's paths.
type Platform struct {
	flavor
	name          string
	preferred     byte
	listSeparator byte
}

var (
	// Posix paths only use forward slashes, and may start with a "//name" network root.
	Posix = Platform{flavor: posixFlavor{}, name: "posix", preferred: '/', listSeparator: ':'}
	// Windows paths accept both slashes, prefer backslashes, and may start with a drive ("C:") or
	// network ("\\server") root name.
	Windows = Platform{flavor: windowsFlavor{}, name: "windows", preferred: '\\', listSeparator: ';'}
)

// Platforms returns all supported platforms.
func Platforms() []Platform {
	return []Platform{Posix, Windows}
}

// LookupPlatform returns the platform with the given name, "native" designating Native.
func LookupPlatform(name string) (Platform, bool) {
	switch strings.ToLower(name) {
	case "", "native":
		return Native, true
	case Posix.name:
		return Posix, true
	case Windows.name:
		return Windows, true
	}
	return Platform{}, false
}

// Name returns the platform's identifier, e.g. "posix".
func (pl Platform) Name() string {
	return pl.name
}

// String implements fmt.Stringer.
func (pl Platform) String() string {
	return pl.name
}

// PreferredSeparator returns the separator used when a path gets extended.
func (pl Platform) PreferredSeparator() byte {
	return pl.preferred
}

// IsSeparator returns true if c separates elements on this platform.
func (pl Platform) IsSeparator(c byte) bool {
	return pl.isSeparator(c)
}

// ListSeparator returns the character separating entries of PATH-style lists.
func (pl Platform) ListSeparator() byte {
	return pl.listSeparator
}

// SplitList splits a PATH-style list into paths, trimming spaces and dropping empty entries.
func (pl Platform) SplitList(list string) []Path {
	var paths []Path
	for _, entry := range strings.Split(list, string(pl.listSeparator)) {
		if entry = strings.TrimSpace(entry); entry != "" {
			paths = append(paths, pl.New(entry))
		}
	}
	return paths
}

// New returns a path interpreted with this platform's conventions.
func (pl Platform) New(s string) Path {
	return Path{text: s, platform: pl}
}
