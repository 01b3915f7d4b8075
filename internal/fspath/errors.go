package fspath

import "errors"

var (
	// ErrNotFound is returned when canonicalizing a path which does not exist.
	ErrNotFound = errors.New("path not found")
	// ErrStatus wraps failures of the underlying filesystem queries.
	ErrStatus = errors.New("status query failed")
	// ErrSymlinkLoop is returned when symbolic link expansion does not terminate.
	ErrSymlinkLoop = errors.New("too many levels of symbolic links")
	// ErrStaleIterator is reported by iterators whose path was modified.
	ErrStaleIterator = errors.New("path modified during iteration")
)
