package syspath

import (
	"bytes"
	"strings"
	"testing"

	"github.com/battyone/sys/internal/fspath"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	got := Describe(fspath.Windows.New(`C:\src\main.go`))
	want := Description{
		Path:          `C:\src\main.go`,
		Platform:      "windows",
		RootName:      "C:",
		RootDirectory: `\`,
		RootPath:      `C:\`,
		RelativePath:  `src\main.go`,
		ParentPath:    `C:\src`,
		Filename:      "main.go",
		Stem:          "main",
		Extension:     ".go",
		Absolute:      true,
		Elements:      []string{"C:", "/", "src", "main.go"},
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestWriteDescriptions(t *testing.T) {
	descs := []Description{Describe(fspath.Posix.New("/a/b.txt")), Describe(fspath.Posix.New("c"))}

	t.Run("header", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, WriteDescriptions(&out, descs, true))
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 3)
		assert.True(t, strings.HasPrefix(lines[0], "PATH"))
		assert.Equal(t, []string{`"/a/b.txt"`, `""`, `"/"`, `"a/b.txt"`, `"/a"`, `"b.txt"`, `"b"`, `".txt"`, "true"}, strings.Fields(lines[1]))
	})

	t.Run("plain", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, WriteDescriptions(&out, descs, false))
		assert.Len(t, strings.Split(strings.TrimSpace(out.String()), "\n"), 2)
	})
}

func TestWriteElements(t *testing.T) {
	p := fspath.Posix.New("/a/b/")

	var out bytes.Buffer
	require.NoError(t, WriteElements(&out, p, false))
	assert.Equal(t, "\"/\"\n\"a\"\n\"b\"\n\".\"\n", out.String())

	out.Reset()
	require.NoError(t, WriteElements(&out, p, true))
	assert.Equal(t, "\".\"\n\"b\"\n\"a\"\n\"/\"\n", out.String())
}
