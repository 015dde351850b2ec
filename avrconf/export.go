package avrconf

import (
	"github.com/JonMackey/HexLoaderUtility/debug"
	"github.com/JonMackey/HexLoaderUtility/ir"
)

// Export returns a standalone copy of the part described by desc with its
// parent chain merged in, or nil if no part has that description.
func (f *ConfigFile) Export(desc string) *ir.Node {
	id, ok := f.IDForDesc(desc, false)
	if !ok {
		return nil
	}
	return f.ExportID(id)
}

// ExportID is Export by part identifier.
//
// Ancestors are applied nearest first and never replace a field that is
// already present.  The walk follows each ancestor's own parent field and
// ends at an ancestor without one, at a parent that names no part, at an
// identifier already visited, or after the maximum parent depth.
func (f *ConfigFile) ExportID(id string) *ir.Node {
	stored := ir.Get(f.root, id)
	if stored == nil || stored.Type != ir.ObjectType {
		return nil
	}
	res := stored.Clone()
	visited := map[string]bool{id: true}
	parent, ok := ir.GetString(stored, parentField)
	for depth := 0; ok; depth++ {
		if visited[parent] {
			f.log.Warn("parent cycle", "id", id, "parent", parent)
			break
		}
		if depth >= f.maxDepth {
			f.log.Warn("parent chain too deep", "id", id, "depth", depth)
			break
		}
		anc := ir.Get(f.root, parent)
		if anc == nil {
			f.log.Debug("dangling parent", "id", id, "parent", parent)
			break
		}
		visited[parent] = true
		n := ir.Apply(res, anc)
		if debug.Resolve() {
			debug.Logf("%s: applied %d fields from %s\n", id, n, parent)
		}
		parent, ok = ir.GetString(anc, parentField)
	}
	return res
}

// Apply adds to dst every field of src that dst lacks.
func Apply(src, dst *ir.Node) {
	ir.Apply(dst, src)
}

// ApplyWithPrefix adds to dst every field of src, with its key prefixed by
// prefix and '.', that dst lacks.
func ApplyWithPrefix(src, dst *ir.Node, prefix string) {
	ir.ApplyWithPrefix(dst, src, prefix)
}
