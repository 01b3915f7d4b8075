//go:build windows

package sysfs

import (
	"errors"
	"io/fs"
	"os"
	"syscall"

	"golang.org/x/sys/windows"
)

var notFoundErrnos = []syscall.Errno{
	windows.ERROR_FILE_NOT_FOUND,
	windows.ERROR_PATH_NOT_FOUND,
	windows.ERROR_INVALID_NAME,
	windows.ERROR_INVALID_DRIVE,
	windows.ERROR_NOT_READY,
	windows.ERROR_INVALID_PARAMETER,
	windows.ERROR_BAD_PATHNAME,
	windows.ERROR_BAD_NETPATH,
}

func statError(op, fp string, err error) (FileType, error) {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		for _, candidate := range notFoundErrnos {
			if errno == candidate {
				return FileTypeNotFound, nil
			}
		}
		// The file exists but is locked by another process.
		if errno == windows.ERROR_SHARING_VIOLATION {
			return FileTypeUnknown, nil
		}
	}
	return FileTypeStatusError, &fs.PathError{Op: op, Path: fp, Err: err}
}

// SymlinkStatus implements Oracle.
func (o *OSOracle) SymlinkStatus(fp string) (FileType, error) {
	ptr, err := windows.UTF16PtrFromString(fp)
	if err != nil {
		return FileTypeStatusError, &fs.PathError{Op: "lstat", Path: fp, Err: err}
	}
	attrs, err := windows.GetFileAttributes(ptr)
	if err != nil {
		return statError("lstat", fp, err)
	}
	switch {
	case attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0:
		if info, err := os.Lstat(fp); err == nil && info.Mode()&fs.ModeSymlink != 0 {
			return FileTypeSymlink, nil
		}
		return FileTypeReparse, nil
	case attrs&windows.FILE_ATTRIBUTE_DIRECTORY != 0:
		return FileTypeDirectory, nil
	default:
		return FileTypeRegular, nil
	}
}

// Status implements Oracle.
func (o *OSOracle) Status(fp string) (FileType, error) {
	info, err := os.Stat(fp)
	if err != nil {
		return statError("stat", fp, err)
	}
	return modeFileType(info.Mode()), nil
}

// ReadSymlink implements Oracle.
func (o *OSOracle) ReadSymlink(fp string) (string, error) {
	return os.Readlink(fp)
}

// Getwd implements Oracle.
func (o *OSOracle) Getwd() (string, error) {
	return os.Getwd()
}

// Mkdir implements Oracle.
func (o *OSOracle) Mkdir(fp string) bool {
	ptr, err := windows.UTF16PtrFromString(fp)
	if err != nil {
		return false
	}
	return windows.CreateDirectory(ptr, nil) == nil
}

// Rmdir implements Oracle.
func (o *OSOracle) Rmdir(fp string) bool {
	ptr, err := windows.UTF16PtrFromString(fp)
	if err != nil {
		return false
	}
	return windows.RemoveDirectory(ptr) == nil
}
