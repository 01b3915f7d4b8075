package fspath

import (
	"context"
	"errors"
	"testing"

	"github.com/battyone/sys/internal/effect"
	"github.com/battyone/sys/internal/sysfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(mem *sysfs.Memory, opts ...ResolverOption) *Resolver {
	return NewResolver(mem, append([]ResolverOption{WithPlatform(Posix)}, opts...)...)
}

func TestCanonical(t *testing.T) {
	ctx := context.Background()
	mem := sysfs.NewMemory().
		AddFile("/a/b/x").
		AddDir("/a/c").
		AddSymlink("/link", "/a/b").
		AddSymlink("/a/rel", "../a/b").
		AddSymlink("/x/l1", "l2").
		AddSymlink("/x/l2", "/a/c").
		AddSymlink("/loop1", "/loop2").
		AddSymlink("/loop2", "/loop1").
		SetCwd("/a")
	r := newTestResolver(mem)

	for _, tc := range []struct {
		path string
		base string
		want string
	}{
		{"/a/./b/../c", "", "/a/c"},
		{"/link/x", "", "/a/b/x"},
		{"/a/rel", "", "/a/b"},
		{"/x/l1", "", "/a/c"},
		{"/x/l1/", "", "/a/c"},
		{"/..", "", "/"},
		{"/", "", "/"},
		{"b", "", "/a/b"},
		{"x", "/a/b", "/a/b/x"},
		{"../link/x", "/a", "/a/b/x"},
	} {
		t.Run(tc.path, func(t *testing.T) {
			got, err := r.Canonical(ctx, Posix.New(tc.path), Posix.New(tc.base))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}

	t.Run("missing", func(t *testing.T) {
		_, err := r.Canonical(ctx, Posix.New("/missing"), Path{})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("loop", func(t *testing.T) {
		_, err := r.Canonical(ctx, Posix.New("/loop1"), Path{})
		require.ErrorIs(t, err, ErrSymlinkLoop)
	})

	t.Run("rescan limit", func(t *testing.T) {
		_, err := newTestResolver(mem, WithMaxRescans(1)).Canonical(ctx, Posix.New("/x/l1"), Path{})
		require.ErrorIs(t, err, ErrSymlinkLoop)

		got, err := newTestResolver(mem, WithMaxRescans(2)).Canonical(ctx, Posix.New("/x/l1"), Path{})
		require.NoError(t, err)
		assert.Equal(t, "/a/c", got.String())
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := r.Canonical(ctx, Posix.New("/a"), Path{})
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("status failure", func(t *testing.T) {
		mem := sysfs.NewMemory().AddFile("/a/b").Fail("/a", errors.New("boom"))
		_, err := newTestResolver(mem).Canonical(ctx, Posix.New("/a/b"), Path{})
		require.ErrorIs(t, err, ErrStatus)
	})

	t.Run("idempotent", func(t *testing.T) {
		once, err := r.Canonical(ctx, Posix.New("/x/l1"), Path{})
		require.NoError(t, err)
		twice, err := r.Canonical(ctx, once, Path{})
		require.NoError(t, err)
		assert.True(t, once.Equal(twice))
	})
}

func TestResolverAbsolute(t *testing.T) {
	r := newTestResolver(sysfs.NewMemory().SetCwd("/w"))

	got, err := r.Absolute(Posix.New("a"), Posix.New("b"))
	require.NoError(t, err)
	assert.Equal(t, "/w/b/a", got.String())

	got, err = r.Absolute(Posix.New("a"), Path{})
	require.NoError(t, err)
	assert.Equal(t, "/w/a", got.String())

	cwd, err := r.CurrentPath()
	require.NoError(t, err)
	assert.Equal(t, "/w", cwd.String())
}

func TestDirectories(t *testing.T) {
	mem := sysfs.NewMemory().AddFile("/file")
	r := newTestResolver(mem)

	t.Run("create all", func(t *testing.T) {
		assert.True(t, r.CreateAll(Posix.New("/x/y/z")))
		assert.True(t, r.Exists(Posix.New("/x/y/z")))
		assert.True(t, r.CreateAll(Posix.New("/x/y/z")), "already exists")
		assert.True(t, r.CreateAll(Posix.New("/x/w/")))
		assert.True(t, r.Exists(Posix.New("/x/w")))
		assert.False(t, r.CreateAll(Posix.New("/file/sub")))
		assert.False(t, r.CreateAll(Path{}))
	})

	t.Run("exists", func(t *testing.T) {
		assert.False(t, r.Exists(Posix.New("/file")), "not a directory")
		assert.False(t, r.Exists(Posix.New("/missing")))
	})

	t.Run("create remove", func(t *testing.T) {
		p := Posix.New("/d")
		assert.True(t, r.Create(p))
		assert.False(t, r.Create(p))
		names, err := r.OpenDir(Posix.New("/")).Names()
		require.NoError(t, err)
		assert.Contains(t, names, "d")
		assert.True(t, r.Remove(p))
		assert.False(t, r.Exists(p))
	})

	t.Run("status", func(t *testing.T) {
		ft, err := r.Status(Posix.New("/file"))
		require.NoError(t, err)
		assert.Equal(t, sysfs.FileTypeRegular, ft)

		ft, err = r.SymlinkStatus(Posix.New("/missing"))
		require.NoError(t, err)
		assert.Equal(t, sysfs.FileTypeNotFound, ft)
	})
}

func TestExecutablePath(t *testing.T) {
	ctx := context.Background()

	t.Run("oracle", func(t *testing.T) {
		mem := sysfs.NewMemory().AddFile("/opt/tool/bin/tool").SetExecutable("/opt/tool/bin/tool")
		assert.Equal(t, "/opt/tool/bin", newTestResolver(mem).ExecutablePath(ctx).String())
	})

	t.Run("path search", func(t *testing.T) {
		defer effect.Swap(&args, func() []string { return []string{"tool"} })()
		defer effect.Swap(&getenv, func(string) string { return "/nope:/usr/local/bin" })()
		mem := sysfs.NewMemory().AddFile("/usr/local/bin/tool").AddDir("/nope")
		assert.Equal(t, "/usr/local/bin", newTestResolver(mem).ExecutablePath(ctx).String())
	})

	t.Run("relative name", func(t *testing.T) {
		defer effect.Swap(&args, func() []string { return []string{"./bin/tool"} })()
		defer effect.Swap(&getenv, func(string) string { return "" })()
		mem := sysfs.NewMemory().AddFile("/work/bin/tool").SetCwd("/work")
		assert.Equal(t, "/work/bin", newTestResolver(mem).ExecutablePath(ctx).String())
	})

	t.Run("unknown", func(t *testing.T) {
		defer effect.Swap(&args, func() []string { return nil })()
		assert.True(t, newTestResolver(sysfs.NewMemory()).ExecutablePath(ctx).Empty())
	})
}

func TestMakeHelpers(t *testing.T) {
	ctx := context.Background()
	mem := sysfs.NewMemory().AddDir("/a/b").AddSymlink("/l", "/a/b").SetCwd("/a")
	r := newTestResolver(mem)

	p := Posix.New("b")
	require.NoError(t, r.MakeAbsolute(&p, Path{}))
	assert.Equal(t, "/a/b", p.String())

	q := Posix.New("/l/../b")
	require.NoError(t, r.MakeCanonical(ctx, &q, Path{}))
	assert.Equal(t, "/a/b", q.String())

	missing := Posix.New("/missing")
	require.ErrorIs(t, r.MakeCanonical(ctx, &missing, Path{}), ErrNotFound)
	assert.Equal(t, "/missing", missing.String())
}
