package sysfs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStatus(t *testing.T) {
	mem := NewMemory().
		AddFile("/a/b/file.txt").
		AddDir("/a/empty").
		AddSymlink("/a/abs", "/a/b").
		AddSymlink("/a/rel", "b/file.txt").
		AddSymlink("/a/dangling", "missing").
		AddSymlink("/loop1", "/loop2").
		AddSymlink("/loop2", "/loop1")

	for fp, want := range map[string]FileType{
		"/":                FileTypeDirectory,
		"/a":               FileTypeDirectory,
		"/a/b/file.txt":    FileTypeRegular,
		"/a/abs":           FileTypeSymlink,
		"/a/abs/file.txt":  FileTypeRegular,
		"/a/dangling":      FileTypeSymlink,
		"/missing":         FileTypeNotFound,
		"/a/b/file.txt/x":  FileTypeNotFound,
		"":                 FileTypeNotFound,
		`\a\b`:             FileTypeDirectory,
		"/a/b/../empty/./": FileTypeDirectory,
	} {
		t.Run("lstat "+fp, func(t *testing.T) {
			got, err := mem.SymlinkStatus(fp)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	for fp, want := range map[string]FileType{
		"/a/abs":      FileTypeDirectory,
		"/a/rel":      FileTypeRegular,
		"/a/dangling": FileTypeNotFound,
	} {
		t.Run("stat "+fp, func(t *testing.T) {
			got, err := mem.Status(fp)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	t.Run("loop", func(t *testing.T) {
		got, err := mem.Status("/loop1")
		require.ErrorIs(t, err, errMemoryLoop)
		assert.Equal(t, FileTypeStatusError, got)
	})

	t.Run("injected failure", func(t *testing.T) {
		boom := errors.New("boom")
		mem.Fail("/a/empty", boom)
		got, err := mem.SymlinkStatus("/a/empty")
		require.ErrorIs(t, err, boom)
		assert.Equal(t, FileTypeStatusError, got)
	})
}

func TestMemoryRelative(t *testing.T) {
	mem := NewMemory().AddFile("/home/user/notes").SetCwd("/home/user")

	got, err := mem.Status("notes")
	require.NoError(t, err)
	assert.Equal(t, FileTypeRegular, got)

	got, err = mem.Status("../user/notes")
	require.NoError(t, err)
	assert.Equal(t, FileTypeRegular, got)

	cwd, err := mem.Getwd()
	require.NoError(t, err)
	assert.Equal(t, "/home/user", cwd)
}

func TestMemoryReadSymlink(t *testing.T) {
	mem := NewMemory().AddFile("/file").AddSymlink("/link", "../file")

	target, err := mem.ReadSymlink("/link")
	require.NoError(t, err)
	assert.Equal(t, "../file", target)

	_, err = mem.ReadSymlink("/file")
	require.ErrorIs(t, err, errMemoryNotSymlink)
}

func TestMemoryMkdirRmdir(t *testing.T) {
	mem := NewMemory().AddFile("/file")

	assert.True(t, mem.Mkdir("/dir"))
	assert.False(t, mem.Mkdir("/dir"), "already exists")
	assert.False(t, mem.Mkdir("/missing/child"), "parent missing")
	assert.False(t, mem.Mkdir("/file/child"), "parent is a file")
	assert.True(t, mem.Mkdir("/dir/child/"))

	assert.False(t, mem.Rmdir("/dir"), "not empty")
	assert.False(t, mem.Rmdir("/file"), "not a directory")
	assert.False(t, mem.Rmdir("/"))
	assert.True(t, mem.Rmdir("/dir/child"))
	assert.True(t, mem.Rmdir("/dir"))

	got, err := mem.Status("/dir")
	require.NoError(t, err)
	assert.Equal(t, FileTypeNotFound, got)
}

func TestMemoryExecutable(t *testing.T) {
	mem := NewMemory()
	_, err := mem.Executable()
	require.ErrorIs(t, err, errExecutableUnknown)

	mem.SetExecutable("/usr/bin/tool")
	fp, err := mem.Executable()
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/tool", fp)
}
