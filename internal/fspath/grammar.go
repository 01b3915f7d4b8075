package fspath

import "strings"

// Positions returned by the helpers below use none when absent.
const none = -1

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// indexSeparator returns the position of the first separator in s at or after from.
func (pl Platform) indexSeparator(s string, from int) int {
	for i := from; i < len(s); i++ {
		if pl.isSeparator(s[i]) {
			return i
		}
	}
	return none
}

// lastSeparator returns the position of the last separator in s[:end].
func (pl Platform) lastSeparator(s string, end int) int {
	for i := end - 1; i >= 0; i-- {
		if pl.isSeparator(s[i]) {
			return i
		}
	}
	return none
}

// isDriveElement returns true if elem is a root name ending with a colon.
func (pl Platform) isDriveElement(elem string) bool {
	return pl.hasDrives() && elem != "" && elem[len(elem)-1] == ':'
}

// rootDirectoryStart returns the position of the root directory separator within s[:size].
func (pl Platform) rootDirectoryStart(s string, size int) int {
	sep := pl.isSeparator
	switch {
	case pl.hasDrives() && size > 2 && s[1] == ':' && sep(s[2]):
		return 2
	case size == 2 && sep(s[0]) && sep(s[1]):
		return none
	case pl.hasDrives() && size > 4 && sep(s[0]) && sep(s[1]) && s[2] == '?' && sep(s[3]):
		if pos := pl.indexSeparator(s, 4); pos != none && pos < size {
			return pos
		}
		return none
	case size > 2 && sep(s[0]) && sep(s[1]) && !sep(s[2]):
		if pos := pl.indexSeparator(s, 2); pos != none && pos < size {
			return pos
		}
		return none
	case size > 0 && sep(s[0]):
		return 0
	}
	return none
}

// filenamePos returns the start of the last element of s[:end].
func (pl Platform) filenamePos(s string, end int) int {
	sep := pl.isSeparator
	if end == 2 && sep(s[0]) && sep(s[1]) {
		return 0
	}
	if end > 0 && sep(s[end-1]) {
		return end - 1
	}
	pos := pl.lastSeparator(s, end)
	if pl.hasDrives() && pos == none && end > 1 {
		pos = strings.LastIndexByte(s[:end-1], ':')
	}
	if pos == none || (pos == 1 && sep(s[0])) {
		return 0
	}
	return pos + 1
}

// isRootSeparator returns true if the run of separators ending at pos is the root directory.
func (pl Platform) isRootSeparator(s string, pos int) bool {
	sep := pl.isSeparator
	for pos > 0 && sep(s[pos-1]) {
		pos--
	}
	if pos == 0 {
		return true
	}
	if pl.hasDrives() && pos == 2 && isAlpha(s[0]) && s[1] == ':' {
		return true
	}
	if pos < 3 || !sep(s[0]) || !sep(s[1]) {
		return false
	}
	return pl.indexSeparator(s, 2) == pos
}

// firstElement returns the position and size of the first element of s. A leading run of
// separators yields its last separator, a network root name yields the whole name.
func (pl Platform) firstElement(s string) (int, int) {
	sep := pl.isSeparator
	n := len(s)
	if n == 0 {
		return 0, 0
	}
	cur, size := 0, 0
	if n >= 2 && sep(s[0]) && sep(s[1]) && (n == 2 || !sep(s[2])) {
		cur, size = 2, 2
	} else if sep(s[0]) {
		for cur+1 < n && sep(s[cur+1]) {
			cur++
		}
		return cur, 1
	}
	for cur < n && !sep(s[cur]) && !(pl.hasDrives() && s[cur] == ':') {
		cur++
		size++
	}
	if pl.hasDrives() && cur < n && s[cur] == ':' {
		size++
	}
	return 0, size
}

// parentPathEnd returns the length of s's parent path, or none if s has no parent.
func (pl Platform) parentPathEnd(s string) int {
	end := pl.filenamePos(s, len(s))
	wasSep := len(s) > 0 && pl.isSeparator(s[end])
	rootPos := pl.rootDirectoryStart(s, end)
	for end > 0 && end-1 != rootPos && pl.isSeparator(s[end-1]) {
		end--
	}
	if end == 1 && rootPos == 0 && wasSep {
		return none
	}
	return end
}

// isRootNameElement returns true if elem, the first element of a path, is a root name.
func (pl Platform) isRootNameElement(elem string) bool {
	return (len(elem) > 1 && pl.isSeparator(elem[0]) && pl.isSeparator(elem[1])) ||
		pl.isDriveElement(elem)
}

// generic returns elem with a lone preferred separator replaced by the generic one.
func (pl Platform) generic(elem string) string {
	if len(elem) == 1 && elem[0] == pl.preferred {
		return string(GenericSeparator)
	}
	return elem
}
