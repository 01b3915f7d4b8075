// Package sysfs queries the host filesystem on behalf of path operations. All filesystem access
// goes through an Oracle so that callers can substitute an in-memory tree in tests.
package sysfs

import (
	"errors"
)

// Oracle answers the filesystem questions path resolution needs. Implementations must be safe for
// concurrent use.
type Oracle interface {
	// SymlinkStatus returns the type of the entry at fp without following a final symbolic link. A
	// missing entry is reported as FileTypeNotFound with a nil error.
	SymlinkStatus(fp string) (FileType, error)
	// Status is like SymlinkStatus but follows symbolic links.
	Status(fp string) (FileType, error)
	// ReadSymlink returns the raw target of the symbolic link at fp.
	ReadSymlink(fp string) (string, error)
	// Getwd returns the process' current working directory.
	Getwd() (string, error)
	// Executable returns the location of the running program's image, if it can be determined
	// without searching PATH.
	Executable() (string, error)
	// Mkdir creates a single directory, returning true on success.
	Mkdir(fp string) bool
	// Rmdir removes a single empty directory, returning true on success.
	Rmdir(fp string) bool
	// OpenDir returns a cursor over the names in directory fp. Failures are reported by the cursor.
	OpenDir(fp string) *Dir
}

var errExecutableUnknown = errors.New("executable location unknown")

// OS is the Oracle backed by the host operating system.
var OS Oracle = &OSOracle{}

// OSOracle implements Oracle using the host's system calls. Its zero value is ready to use.
type OSOracle struct{}

var _ Oracle = (*OSOracle)(nil)

// OpenDir implements Oracle.
func (o *OSOracle) OpenDir(fp string) *Dir {
	return openOSDir(fp)
}
