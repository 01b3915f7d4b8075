//go:build unix

package sysfs

import (
	"errors"
	"io/fs"

	"golang.org/x/sys/unix"
)

func statError(op, fp string, err error) (FileType, error) {
	if errors.Is(err, unix.ENOENT) || errors.Is(err, unix.ENOTDIR) {
		return FileTypeNotFound, nil
	}
	return FileTypeStatusError, &fs.PathError{Op: op, Path: fp, Err: err}
}

func unixFileType(mode uint32) FileType {
	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		return FileTypeRegular
	case unix.S_IFDIR:
		return FileTypeDirectory
	case unix.S_IFLNK:
		return FileTypeSymlink
	case unix.S_IFBLK:
		return FileTypeBlock
	case unix.S_IFCHR:
		return FileTypeCharacter
	case unix.S_IFIFO:
		return FileTypeFifo
	case unix.S_IFSOCK:
		return FileTypeSocket
	default:
		return FileTypeUnknown
	}
}

// SymlinkStatus implements Oracle.
func (o *OSOracle) SymlinkStatus(fp string) (FileType, error) {
	var st unix.Stat_t
	if err := unix.Lstat(fp, &st); err != nil {
		return statError("lstat", fp, err)
	}
	return unixFileType(uint32(st.Mode)), nil
}

// Status implements Oracle.
func (o *OSOracle) Status(fp string) (FileType, error) {
	var st unix.Stat_t
	if err := unix.Stat(fp, &st); err != nil {
		return statError("stat", fp, err)
	}
	return unixFileType(uint32(st.Mode)), nil
}

// ReadSymlink implements Oracle.
func (o *OSOracle) ReadSymlink(fp string) (string, error) {
	for size := 128; ; size *= 2 {
		buf := make([]byte, size)
		n, err := unix.Readlink(fp, buf)
		if err != nil {
			return "", &fs.PathError{Op: "readlink", Path: fp, Err: err}
		}
		if n < size {
			return string(buf[:n]), nil
		}
	}
}

// Getwd implements Oracle.
func (o *OSOracle) Getwd() (string, error) {
	return unix.Getwd()
}

// Mkdir implements Oracle.
func (o *OSOracle) Mkdir(fp string) bool {
	return unix.Mkdir(fp, 0o777) == nil
}

// Rmdir implements Oracle.
func (o *OSOracle) Rmdir(fp string) bool {
	return unix.Rmdir(fp) == nil
}
