package fspath

import "iter"

// cursor identifies an element of a path's text: elem starts at pos. The end position has
// pos == len(text) and an empty elem.
type cursor struct {
	pos  int
	elem string
}

func (pl Platform) begin(s string) cursor {
	pos, size := pl.firstElement(s)
	return cursor{pos: pos, elem: pl.generic(s[pos : pos+size])}
}

func (pl Platform) increment(s string, c cursor) cursor {
	sep := pl.isSeparator
	pos := c.pos + len(c.elem)
	if pos >= len(s) {
		return cursor{pos: len(s)}
	}
	e := c.elem
	wasNet := len(e) > 2 && sep(e[0]) && sep(e[1]) && !sep(e[2])
	if sep(s[pos]) {
		// The root directory following a root name is its own element.
		if wasNet || pl.isDriveElement(e) {
			return cursor{pos: pos, elem: string(GenericSeparator)}
		}
		for pos < len(s) && sep(s[pos]) {
			pos++
		}
		if pos == len(s) && !pl.isRootSeparator(s, pos-1) {
			return cursor{pos: pos - 1, elem: "."}
		}
	}
	end := pl.indexSeparator(s, pos)
	if end == none {
		end = len(s)
	}
	return cursor{pos: pos, elem: s[pos:end]}
}

func (pl Platform) decrement(s string, c cursor) cursor {
	n := len(s)
	if c.pos == n && n > 1 && pl.isSeparator(s[n-1]) && !pl.isRootSeparator(s, n-1) {
		return cursor{pos: n - 1, elem: "."}
	}
	end := c.pos
	rootPos := pl.rootDirectoryStart(s, end)
	for end > 0 && end-1 != rootPos && pl.isSeparator(s[end-1]) {
		end--
	}
	pos := pl.filenamePos(s, end)
	if first := pl.begin(s); pos <= first.pos {
		return first
	}
	return cursor{pos: pos, elem: pl.generic(s[pos:end])}
}

// Iterator walks a path's elements: its root name, its root directory (always reported as "/"),
// each filename, and "." for a trailing separator. Iterators become stale once their path is
// modified, after which they no longer move.
type Iterator struct {
	owner   *Path
	version uint64
	cursor
}

// Begin returns an iterator positioned on the path's first element.
func (p *Path) Begin() Iterator {
	return Iterator{owner: p, version: p.version, cursor: p.Platform().begin(p.text)}
}

// End returns an iterator positioned past the path's last element.
func (p *Path) End() Iterator {
	return Iterator{owner: p, version: p.version, cursor: cursor{pos: len(p.text)}}
}

func (it *Iterator) stale() bool {
	return it.owner.version != it.version
}

// Err returns ErrStaleIterator if the underlying path was modified since the iterator's creation.
func (it *Iterator) Err() error {
	if it.stale() {
		return ErrStaleIterator
	}
	return nil
}

// AtEnd returns true if the iterator is past the last element.
func (it *Iterator) AtEnd() bool {
	return it.pos >= len(it.owner.text)
}

// Elem returns the current element, empty at the end.
func (it *Iterator) Elem() Path {
	return it.owner.with(it.elem)
}

// Next moves to the following element. It returns false if the iterator was already at the end or
// is stale.
func (it *Iterator) Next() bool {
	if it.stale() || it.AtEnd() {
		return false
	}
	it.cursor = it.owner.Platform().increment(it.owner.text, it.cursor)
	return true
}

// Prev moves to the preceding element. It returns false if the iterator was already on the first
// element or is stale.
func (it *Iterator) Prev() bool {
	if it.stale() {
		return false
	}
	pl := it.owner.Platform()
	if first, _ := pl.firstElement(it.owner.text); it.pos <= first {
		return false
	}
	it.cursor = pl.decrement(it.owner.text, it.cursor)
	return true
}

// Equal returns true if both iterators are over the same path and at the same position.
func (it Iterator) Equal(other Iterator) bool {
	return it.owner == other.owner && it.pos == other.pos
}

// Elements yields the path's elements in order.
func (p *Path) Elements() iter.Seq[Path] {
	return func(yield func(Path) bool) {
		it := p.Begin()
		for !it.AtEnd() {
			if !yield(it.Elem()) || !it.Next() {
				return
			}
		}
	}
}

// Backward yields the path's elements in reverse order.
func (p *Path) Backward() iter.Seq[Path] {
	return func(yield func(Path) bool) {
		it := p.End()
		for it.Prev() {
			if !yield(it.Elem()) {
				return
			}
		}
	}
}

// Strings returns the path's elements' text.
func (p Path) Strings() []string {
	var elems []string
	for elem := range p.Elements() {
		elems = append(elems, elem.text)
	}
	return elems
}
