//go:build !unix && !windows

package sysfs

import (
	"errors"
	"io/fs"
	"os"
)

func statError(err error) (FileType, error) {
	if errors.Is(err, fs.ErrNotExist) {
		return FileTypeNotFound, nil
	}
	return FileTypeStatusError, err
}

// SymlinkStatus implements Oracle.
func (o *OSOracle) SymlinkStatus(fp string) (FileType, error) {
	info, err := os.Lstat(fp)
	if err != nil {
		return statError(err)
	}
	return modeFileType(info.Mode()), nil
}

// Status implements Oracle.
func (o *OSOracle) Status(fp string) (FileType, error) {
	info, err := os.Stat(fp)
	if err != nil {
		return statError(err)
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
	return os.Mkdir(fp, 0o777) == nil
}

// Rmdir implements Oracle.
func (o *OSOracle) Rmdir(fp string) bool {
	info, err := os.Lstat(fp)
	if err != nil || !info.IsDir() {
		return false
	}
	return os.Remove(fp) == nil
}
