package sysfs

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir(t *testing.T) {
	t.Run("lists entries", func(t *testing.T) {
		mem := NewMemory().AddFile("/d/b").AddFile("/d/a").AddDir("/d/c/nested")
		names, err := mem.OpenDir("/d").Names()
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, names)
	})

	t.Run("empty", func(t *testing.T) {
		mem := NewMemory().AddDir("/d")
		dir := mem.OpenDir("/d")
		defer dir.Close()
		_, ok := dir.Next()
		assert.False(t, ok)
		require.NoError(t, dir.Err())
	})

	t.Run("missing", func(t *testing.T) {
		dir := NewMemory().OpenDir("/missing")
		_, ok := dir.Next()
		assert.False(t, ok)
		require.ErrorIs(t, dir.Err(), fs.ErrNotExist)
		require.NoError(t, dir.Close())
	})

	t.Run("skips dot entries", func(t *testing.T) {
		batches := [][]string{{".", "x"}, {"..", "y"}}
		dir := &Dir{read: func(int) ([]string, error) {
			if len(batches) == 0 {
				return nil, errors.New("boom")
			}
			batch := batches[0]
			batches = batches[1:]
			return batch, nil
		}}
		names, err := dir.Names()
		assert.Equal(t, []string{"x", "y"}, names)
		require.EqualError(t, err, "boom")
	})

	t.Run("many entries", func(t *testing.T) {
		mem := NewMemory()
		var want []string
		for i := 0; i < 2*dirBatchSize+3; i++ {
			name := string(rune('a'+i/26)) + string(rune('a'+i%26))
			mem.AddFile("/d/" + name)
			want = append(want, name)
		}
		names, err := mem.OpenDir("/d").Names()
		require.NoError(t, err)
		assert.Equal(t, want, names)
	})
}
