package syspath

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/battyone/sys/internal/fspath"
)

// Description is the lexical decomposition of a path.
type Description struct {
	Path          string
	Platform      string
	RootName      string
	RootDirectory string
	RootPath      string
	RelativePath  string
	ParentPath    string
	Filename      string
	Stem          string
	Extension     string
	Absolute      bool
	Elements      []string
}

// Describe decomposes a path. It never accesses the filesystem.
func Describe(p fspath.Path) Description {
	return Description{
		Path:          p.String(),
		Platform:      p.Platform().Name(),
		RootName:      p.RootName().String(),
		RootDirectory: p.RootDirectory().String(),
		RootPath:      p.RootPath().String(),
		RelativePath:  p.RelativePath().String(),
		ParentPath:    p.ParentPath().String(),
		Filename:      p.Filename().String(),
		Stem:          p.Stem().String(),
		Extension:     p.Extension().String(),
		Absolute:      p.IsAbsolute(),
		Elements:      p.Strings(),
	}
}

var descriptionHeader = []string{
	"PATH", "ROOT NAME", "ROOT DIR", "RELATIVE", "PARENT", "FILENAME", "STEM", "EXT", "ABSOLUTE",
}

func (d Description) cells() []string {
	return []string{
		strconv.Quote(d.Path),
		strconv.Quote(d.RootName),
		strconv.Quote(d.RootDirectory),
		strconv.Quote(d.RelativePath),
		strconv.Quote(d.ParentPath),
		strconv.Quote(d.Filename),
		strconv.Quote(d.Stem),
		strconv.Quote(d.Extension),
		strconv.FormatBool(d.Absolute),
	}
}

// WriteDescriptions prints one tab-aligned row per description, optionally preceded by a header.
func WriteDescriptions(w io.Writer, descs []Description, header bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if header {
		fmt.Fprintln(tw, strings.Join(descriptionHeader, "\t"))
	}
	for _, desc := range descs {
		fmt.Fprintln(tw, strings.Join(desc.cells(), "\t"))
	}
	return tw.Flush()
}

// WriteElements prints a path's elements, one per line, in forward or backward order.
func WriteElements(w io.Writer, p fspath.Path, backward bool) error {
	seq := p.Elements()
	if backward {
		seq = p.Backward()
	}
	for elem := range seq {
		if _, err := fmt.Fprintln(w, strconv.Quote(elem.String())); err != nil {
			return err
		}
	}
	return nil
}
