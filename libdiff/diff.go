package libdiff

import (
	"github.com/JonMackey/HexLoaderUtility/ir"
)

// Diff returns the changes turning from into to.  Deletes and replaces come
// in from's key order, followed by inserts in to's key order.  Objects on
// both sides are compared field by field; a leaf replaced by an object or
// the reverse is a single replace.
func Diff(from, to *ir.Node) []Change {
	return diff("", from, to, nil)
}

func diff(prefix string, from, to *ir.Node, res []Change) []Change {
	for k, fv := range from.All() {
		key := prefix + k
		tv := ir.Get(to, k)
		switch {
		case tv == nil:
			res = append(res, MakeDiff(key, fv, nil))
		case fv.Type == ir.ObjectType && tv.Type == ir.ObjectType:
			res = diff(key+ir.PathSep, fv, tv, res)
		case !ir.Equal(fv, tv):
			res = append(res, MakeDiff(key, fv, tv))
		}
	}
	for k, tv := range to.All() {
		if ir.Get(from, k) == nil {
			res = append(res, MakeDiff(prefix+k, nil, tv))
		}
	}
	return res
}
