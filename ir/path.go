package ir

import (
	"strings"
)

// PathSep separates the segments of a dotted path.
const PathSep = "."

// Path returns the dotted path of y from its root.
func (y *Node) Path() string {
	if y.Parent == nil {
		return ""
	}
	pp := y.Parent.Path()
	if pp == "" {
		return y.ParentField
	}
	return pp + PathSep + y.ParentField
}

// GetPath looks up a dotted path below y and returns the node found if it
// has type t.
//
// A single trailing separator names the object itself, so "m328p." finds
// the object stored under "m328p".  At each level the whole remaining path
// is first tried as a key, so flattened keys such as "flash.size" are found
// before the path is split.
func (y *Node) GetPath(path string, t Type) *Node {
	path = strings.TrimSuffix(path, PathSep)
	res := y.getPath(path)
	if res == nil || res.Type != t {
		return nil
	}
	return res
}

func (y *Node) getPath(path string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	if path == "" {
		return y
	}
	if v := Get(y, path); v != nil {
		return v
	}
	off := 0
	for {
		i := strings.Index(path[off:], PathSep)
		if i == -1 {
			return nil
		}
		off += i
		if child := Get(y, path[:off]); child != nil {
			if res := child.getPath(path[off+1:]); res != nil {
				return res
			}
		}
		off++
	}
}
