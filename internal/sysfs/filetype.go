package sysfs

import "io/fs"

// FileType classifies a filesystem entry as reported by an Oracle.
type FileType int

//go:generate go run github.com/dmarkham/enumer -type=FileType -trimprefix FileType -transform snake
const (
	// The query failed for a reason other than the entry not existing.
	FileTypeStatusError FileType = iota
	// No entry exists at the queried path. This is a normal outcome, not an error.
	FileTypeNotFound
	FileTypeRegular
	FileTypeDirectory
	FileTypeSymlink
	FileTypeBlock
	FileTypeCharacter
	FileTypeFifo
	FileTypeSocket
	// A Windows reparse point which is neither a symbolic link nor a mount point.
	FileTypeReparse
	FileTypeUnknown
)

// IsSymlink returns true iff the type denotes a symbolic link.
func (t FileType) IsSymlink() bool {
	return t == FileTypeSymlink
}

// Exists returns true iff the query found an entry, whatever its type.
func (t FileType) Exists() bool {
	return t != FileTypeStatusError && t != FileTypeNotFound
}

// modeFileType maps portable file mode bits to a FileType.
func modeFileType(mode fs.FileMode) FileType {
	switch {
	case mode.IsRegular():
		return FileTypeRegular
	case mode.IsDir():
		return FileTypeDirectory
	case mode&fs.ModeSymlink != 0:
		return FileTypeSymlink
	case mode&fs.ModeDevice != 0 && mode&fs.ModeCharDevice != 0:
		return FileTypeCharacter
	case mode&fs.ModeDevice != 0:
		return FileTypeBlock
	case mode&fs.ModeNamedPipe != 0:
		return FileTypeFifo
	case mode&fs.ModeSocket != 0:
		return FileTypeSocket
	default:
		return FileTypeUnknown
	}
}
