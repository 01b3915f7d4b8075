package syspath

import (
	"context"
	"testing"

	"github.com/battyone/sys/internal/fspath"
	"github.com/battyone/sys/internal/sysfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeAll(t *testing.T) {
	mem := sysfs.NewMemory().
		AddDir("/data/current").
		AddSymlink("/data/latest", "current").
		AddFile("/data/current/log")
	r := fspath.NewResolver(mem, fspath.WithPlatform(fspath.Posix))

	inputs := []fspath.Path{
		fspath.Posix.New("latest/log"),
		fspath.Posix.New("/missing"),
		fspath.Posix.New("./current/../latest"),
	}
	got := CanonicalizeAll(context.Background(), r, inputs, fspath.Posix.New("/data"))
	require.Len(t, got, 3)

	require.NoError(t, got[0].Err)
	assert.Equal(t, "/data/current/log", got[0].Output.String())
	assert.True(t, got[0].Input.Equal(inputs[0]))

	require.ErrorIs(t, got[1].Err, fspath.ErrNotFound)
	assert.True(t, got[1].Output.Empty())

	require.NoError(t, got[2].Err)
	assert.Equal(t, "/data/current", got[2].Output.String())
}

func TestCanonicalizeAllEmpty(t *testing.T) {
	r := fspath.NewResolver(sysfs.NewMemory())
	assert.Empty(t, CanonicalizeAll(context.Background(), r, nil, fspath.Path{}))
}
