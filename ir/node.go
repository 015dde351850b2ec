package ir

import (
	"iter"
	"slices"
)

// Node is an element of a document: a string leaf, a numeric text leaf, or
// an object with ordered, unique keys.
//
// Numeric leaves hold the canonical text of the number in Number, so the
// original radix and any leading '~' are preserved.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []string
	Values      []*Node

	String string
	Number string
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromNumber(text string) *Node {
	return &Node{Type: NumberType, Number: text}
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

// Text returns the text of a leaf.
func (y *Node) Text() string {
	if y.Type == NumberType {
		return y.Number
	}
	return y.String
}

func (y *Node) Len() int {
	return len(y.Fields)
}

// Clone returns a standalone deep copy of y with no parent.
func (y *Node) Clone() *Node {
	res := y.CloneTo(&Node{})
	res.Parent = nil
	res.ParentIndex = 0
	res.ParentField = ""
	return res
}

// CloneTo deep copies y into dst.  The copy keeps y's parent linkage; the
// children of the copy point at dst.
func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.String = y.String
	dst.Number = y.Number
	dst.Fields = slices.Clone(y.Fields)
	dst.Values = make([]*Node, len(y.Values))
	for i, yv := range y.Values {
		dstI := yv.CloneTo(&Node{})
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = y.Fields[i]
		dst.Values[i] = dstI
	}
	return dst
}

func Get(y *Node, field string) *Node {
	if y == nil {
		return nil
	}
	i := slices.Index(y.Fields, field)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

// GetString returns the text of the string leaf at field.
func GetString(y *Node, field string) (string, bool) {
	v := Get(y, field)
	if v == nil || v.Type != StringType {
		return "", false
	}
	return v.String, true
}

// Insert adds v under key unless key is already present, in which case y is
// left unchanged and false is returned.  y owns v afterwards.
func (y *Node) Insert(key string, v *Node) bool {
	if y.Type != ObjectType || slices.Contains(y.Fields, key) {
		return false
	}
	v.Parent = y
	v.ParentIndex = len(y.Values)
	v.ParentField = key
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, v)
	return true
}

// All iterates the key/value pairs of an object in insertion order.
func (y *Node) All() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		for i, f := range y.Fields {
			if !yield(f, y.Values[i]) {
				return
			}
		}
	}
}

// Apply adds to dst a copy of every field of src that dst does not already
// have.  Fields present in dst are never overwritten.
func Apply(dst, src *Node) int {
	return ApplyWithPrefix(dst, src, "")
}

// ApplyWithPrefix is Apply with each of src's keys prefixed by prefix and a
// '.' before the lookup in dst, flattening src into dst.  An empty prefix
// adds no delimiter.
func ApplyWithPrefix(dst, src *Node, prefix string) int {
	if prefix != "" {
		prefix += "."
	}
	n := 0
	for k, v := range src.All() {
		if dst.Insert(prefix+k, v.Clone()) {
			n++
		}
	}
	return n
}

// Equal reports whether two nodes hold the same kinds, keys, order and text.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type || a.String != b.String || a.Number != b.Number {
		return false
	}
	if !slices.Equal(a.Fields, b.Fields) {
		return false
	}
	for i := range a.Values {
		if !Equal(a.Values[i], b.Values[i]) {
			return false
		}
	}
	return true
}
