package libdiff

import (
	"fmt"

	"github.com/JonMackey/HexLoaderUtility/ir"
)

// Change is the change of one field.  From is nil for an insert and To is
// nil for a delete.  Key is the dotted path of the field.
type Change struct {
	Key  string
	Kind Kind
	From *ir.Node
	To   *ir.Node
}

func MakeDiff(key string, from, to *ir.Node) Change {
	switch {
	case from == nil:
		return Change{Key: key, Kind: Insert, To: to.Clone()}
	case to == nil:
		return Change{Key: key, Kind: Delete, From: from.Clone()}
	default:
		return Change{Key: key, Kind: Replace, From: from.Clone(), To: to.Clone()}
	}
}

// String renders c on one line.  Replaced strings show an inline
// character diff.
func (c Change) String() string {
	switch c.Kind {
	case Insert:
		return fmt.Sprintf("+%s=%s", c.Key, text(c.To))
	case Delete:
		return fmt.Sprintf("-%s=%s", c.Key, text(c.From))
	default:
		if c.From.Type == ir.StringType && c.To.Type == ir.StringType {
			return fmt.Sprintf("~%s=%s", c.Key, DiffString(c.From.String, c.To.String))
		}
		return fmt.Sprintf("~%s=%s -> %s", c.Key, text(c.From), text(c.To))
	}
}

func text(y *ir.Node) string {
	if y.Type == ir.ObjectType {
		return fmt.Sprintf("{%d fields}", y.Len())
	}
	return y.Text()
}
