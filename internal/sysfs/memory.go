package sysfs

import (
	"errors"
	"io"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"
)

const maxMemoryHops = 40

var (
	errMemoryLoop       = errors.New("too many levels of symbolic links")
	errMemoryNotSymlink = errors.New("not a symbolic link")
	errMemoryNotDir     = errors.New("not a directory")
)

type memoryEntry struct {
	kind   FileType
	target string
}

// Memory is an in-memory Oracle. Paths use POSIX syntax, backslashes being treated as
// separators. The tree initially only contains the root directory, which is also the working
// directory.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	failing map[string]error
	cwd     string
	exe     string
}

var _ Oracle = (*Memory)(nil)

// NewMemory returns an empty in-memory tree.
func NewMemory() *Memory {
	return &Memory{
		entries: map[string]memoryEntry{"/": {kind: FileTypeDirectory}},
		failing: make(map[string]error),
		cwd:     "/",
	}
}

func memoryKey(fp string) string {
	return path.Clean("/" + strings.ReplaceAll(fp, `\`, "/"))
}

func (m *Memory) add(fp string, entry memoryEntry) {
	key := memoryKey(fp)
	for dir := path.Dir(key); dir != "/"; dir = path.Dir(dir) {
		if _, ok := m.entries[dir]; !ok {
			m.entries[dir] = memoryEntry{kind: FileTypeDirectory}
		}
	}
	m.entries[key] = entry
}

// AddDir adds a directory at absolute path fp, along with any missing ancestors.
func (m *Memory) AddDir(fp string) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.add(fp, memoryEntry{kind: FileTypeDirectory})
	return m
}

// AddFile adds a regular file at absolute path fp, along with any missing ancestors.
func (m *Memory) AddFile(fp string) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.add(fp, memoryEntry{kind: FileTypeRegular})
	return m
}

// AddSymlink adds a symbolic link at absolute path fp pointing to target, which is stored as is.
func (m *Memory) AddSymlink(fp, target string) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.add(fp, memoryEntry{kind: FileTypeSymlink, target: target})
	return m
}

// SetCwd sets the working directory used to resolve relative paths.
func (m *Memory) SetCwd(fp string) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cwd = memoryKey(fp)
	return m
}

// SetExecutable sets the value returned by Executable.
func (m *Memory) SetExecutable(fp string) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exe = fp
	return m
}

// Fail makes every query on the exact string fp fail with err.
func (m *Memory) Fail(fp string, err error) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failing[fp] = err
	return m
}

// lookup returns the key of the entry fp designates, or an empty key if there is none. Symbolic
// links in intermediate components are always followed, the final one only when follow is set.
func (m *Memory) lookup(fp string, follow bool, hops *int) (string, error) {
	fp = strings.ReplaceAll(fp, `\`, "/")
	if fp == "" {
		return "", nil
	}
	if !strings.HasPrefix(fp, "/") {
		fp = m.cwd + "/" + fp
	}
	var names []string
	for _, name := range strings.Split(fp, "/") {
		if name != "" {
			names = append(names, name)
		}
	}

	cur := "/"
	for i, name := range names {
		switch name {
		case ".":
			continue
		case "..":
			cur = path.Dir(cur)
			continue
		}
		last := i == len(names)-1
		next := path.Join(cur, name)
		entry, ok := m.entries[next]
		if !ok {
			return "", nil
		}
		if entry.kind == FileTypeSymlink && (follow || !last) {
			*hops++
			if *hops > maxMemoryHops {
				return "", errMemoryLoop
			}
			target := entry.target
			if !strings.HasPrefix(strings.ReplaceAll(target, `\`, "/"), "/") {
				target = cur + "/" + target
			}
			resolved, err := m.lookup(target, true, hops)
			if err != nil || resolved == "" {
				return "", err
			}
			next = resolved
			entry = m.entries[next]
		}
		if !last && entry.kind != FileTypeDirectory {
			return "", nil
		}
		cur = next
	}
	return cur, nil
}

func (m *Memory) status(op, fp string, follow bool) (FileType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err, ok := m.failing[fp]; ok {
		return FileTypeStatusError, &fs.PathError{Op: op, Path: fp, Err: err}
	}
	var hops int
	key, err := m.lookup(fp, follow, &hops)
	if err != nil {
		return FileTypeStatusError, &fs.PathError{Op: op, Path: fp, Err: err}
	}
	if key == "" {
		return FileTypeNotFound, nil
	}
	return m.entries[key].kind, nil
}

// SymlinkStatus implements Oracle.
func (m *Memory) SymlinkStatus(fp string) (FileType, error) {
	return m.status("lstat", fp, false)
}

// Status implements Oracle.
func (m *Memory) Status(fp string) (FileType, error) {
	return m.status("stat", fp, true)
}

// ReadSymlink implements Oracle.
func (m *Memory) ReadSymlink(fp string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err, ok := m.failing[fp]; ok {
		return "", &fs.PathError{Op: "readlink", Path: fp, Err: err}
	}
	var hops int
	key, err := m.lookup(fp, false, &hops)
	if err != nil {
		return "", &fs.PathError{Op: "readlink", Path: fp, Err: err}
	}
	if key == "" {
		return "", &fs.PathError{Op: "readlink", Path: fp, Err: fs.ErrNotExist}
	}
	entry := m.entries[key]
	if entry.kind != FileTypeSymlink {
		return "", &fs.PathError{Op: "readlink", Path: fp, Err: errMemoryNotSymlink}
	}
	return entry.target, nil
}

// Getwd implements Oracle.
func (m *Memory) Getwd() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cwd, nil
}

// Executable implements Oracle.
func (m *Memory) Executable() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.exe == "" {
		return "", errExecutableUnknown
	}
	return m.exe, nil
}

// Mkdir implements Oracle.
func (m *Memory) Mkdir(fp string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.failing[fp]; ok {
		return false
	}
	dir, name := path.Split(strings.TrimRight(strings.ReplaceAll(fp, `\`, "/"), "/"))
	if name == "" || name == "." || name == ".." {
		return false
	}
	if dir == "" {
		dir = "."
	}
	var hops int
	parent, err := m.lookup(dir, true, &hops)
	if err != nil || parent == "" || m.entries[parent].kind != FileTypeDirectory {
		return false
	}
	key := path.Join(parent, name)
	if _, ok := m.entries[key]; ok {
		return false
	}
	m.entries[key] = memoryEntry{kind: FileTypeDirectory}
	return true
}

func (m *Memory) children(key string) []string {
	var names []string
	for other := range m.entries {
		if other != "/" && path.Dir(other) == key {
			names = append(names, path.Base(other))
		}
	}
	slices.Sort(names)
	return names
}

// Rmdir implements Oracle.
func (m *Memory) Rmdir(fp string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.failing[fp]; ok {
		return false
	}
	var hops int
	key, err := m.lookup(fp, false, &hops)
	if err != nil || key == "" || key == "/" || m.entries[key].kind != FileTypeDirectory {
		return false
	}
	if len(m.children(key)) > 0 {
		return false
	}
	delete(m.entries, key)
	return true
}

// OpenDir implements Oracle. The returned cursor lists a snapshot of the directory's entries in
// lexical order.
func (m *Memory) OpenDir(fp string) *Dir {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err, ok := m.failing[fp]; ok {
		return failedDir(&fs.PathError{Op: "open", Path: fp, Err: err})
	}
	var hops int
	key, err := m.lookup(fp, true, &hops)
	switch {
	case err != nil:
		return failedDir(&fs.PathError{Op: "open", Path: fp, Err: err})
	case key == "":
		return failedDir(&fs.PathError{Op: "open", Path: fp, Err: fs.ErrNotExist})
	case m.entries[key].kind != FileTypeDirectory:
		return failedDir(&fs.PathError{Op: "open", Path: fp, Err: errMemoryNotDir})
	}
	names := m.children(key)
	return &Dir{read: func(n int) ([]string, error) {
		if len(names) == 0 {
			return nil, io.EOF
		}
		n = min(n, len(names))
		batch := names[:n]
		names = names[n:]
		return batch, nil
	}}
}
