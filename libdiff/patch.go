package libdiff

import (
	"fmt"
	"slices"
	"strings"

	"github.com/JonMackey/HexLoaderUtility/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies changes to a copy of doc.  A change whose From does not
// match doc, or an insert of a key doc already has, is an error.
func Patch(doc *ir.Node, changes []Change) (*ir.Node, error) {
	res := doc.Clone()
	for _, c := range changes {
		parent, key, err := locate(res, c.Key, c.Kind == Insert)
		if err != nil {
			return nil, err
		}
		cur := ir.Get(parent, key)
		switch c.Kind {
		case Insert:
			if !parent.Insert(key, c.To.Clone()) {
				return nil, fmt.Errorf("cannot insert %s: %w", c.Key, ir.ErrExists)
			}
		case Delete, Replace:
			if cur == nil || !ir.Equal(cur, c.From) {
				return nil, fmt.Errorf("cannot patch %s: value differs from %q", c.Key, c.From.Text())
			}
			if c.Kind == Delete {
				remove(parent, key)
				continue
			}
			set(parent, key, c.To.Clone())
		}
	}
	return res, nil
}

// locate finds the object holding the field at key.  Keys are tried whole
// first since flattened keys contain the separator themselves.
func locate(doc *ir.Node, key string, create bool) (*ir.Node, string, error) {
	if ir.Get(doc, key) != nil || !strings.Contains(key, ir.PathSep) {
		return doc, key, nil
	}
	head, rest, _ := strings.Cut(key, ir.PathSep)
	sub := ir.Get(doc, head)
	if sub == nil || sub.Type != ir.ObjectType {
		if create {
			return doc, key, nil
		}
		return nil, "", fmt.Errorf("cannot patch %s: no such field", key)
	}
	return locate(sub, rest, create)
}

func remove(y *ir.Node, key string) {
	i := slices.Index(y.Fields, key)
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	for j := i; j < len(y.Values); j++ {
		y.Values[j].ParentIndex = j
	}
}

func set(y *ir.Node, key string, v *ir.Node) {
	i := slices.Index(y.Fields, key)
	v.Parent = y
	v.ParentIndex = i
	v.ParentField = key
	y.Values[i] = v
}

// Reverse returns the changes undoing changes.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{Key: c.Key, From: c.To, To: c.From}
		switch c.Kind {
		case Insert:
			r.Kind = Delete
		case Delete:
			r.Kind = Insert
		default:
			r.Kind = Replace
		}
		res[len(changes)-1-i] = r
	}
	return res
}

// MergePatch returns the JSON merge patch (RFC 7386) turning from into to.
func MergePatch(from, to *ir.Node) ([]byte, error) {
	a, err := from.MarshalJSON()
	if err != nil {
		return nil, err
	}
	b, err := to.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(a, b)
}
