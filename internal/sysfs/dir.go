package sysfs

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/battyone/sys/internal/except"
)

const dirBatchSize = 64

// Dir is a forward-only cursor over the names of a directory's entries. The "." and ".." entries
// are never returned. A Dir must be closed once the caller is done with it.
type Dir struct {
	read  func(n int) ([]string, error)
	close func() error
	buf   []string
	err   error
	done  bool
}

func failedDir(err error) *Dir {
	return &Dir{err: err, done: true}
}

func openOSDir(fp string) *Dir {
	file, err := os.Open(fp)
	if err != nil {
		return failedDir(err)
	}
	return &Dir{read: file.Readdirnames, close: file.Close}
}

// Next returns the next entry's name. The second return value is false once the directory is
// exhausted or after a read error, which can be retrieved with Err.
func (d *Dir) Next() (string, bool) {
	for {
		if len(d.buf) > 0 {
			name := d.buf[0]
			d.buf = d.buf[1:]
			if name == "." || name == ".." {
				continue
			}
			return name, true
		}
		if d.done {
			return "", false
		}
		names, err := d.read(dirBatchSize)
		d.buf = names
		if err != nil {
			d.done = true
			if !errors.Is(err, io.EOF) {
				d.err = err
			}
		}
	}
}

// Err returns the first error encountered while opening or reading the directory.
func (d *Dir) Err() error {
	return d.err
}

// Close releases the directory's handle. It is safe to call multiple times.
func (d *Dir) Close() error {
	d.done = true
	d.buf = nil
	if d.close == nil {
		return nil
	}
	err := d.close()
	d.close = nil
	if err != nil {
		slog.Warn("Directory close failed.", except.LogErrAttr(err))
	}
	return err
}

// Names drains the cursor and closes it.
func (d *Dir) Names() ([]string, error) {
	defer d.Close()
	var names []string
	for {
		name, ok := d.Next()
		if !ok {
			break
		}
		names = append(names, name)
	}
	return names, d.Err()
}
