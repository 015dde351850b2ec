package eval

import (
	"strings"

	"github.com/JonMackey/HexLoaderUtility/ir"
	"github.com/JonMackey/HexLoaderUtility/token"
)

type Env map[string]any

// RecordEnv builds the evaluation environment of a flattened record.  A
// leaf key which is also the prefix of other keys keeps its leaf value.
func RecordEnv(rec *ir.Node) Env {
	env := Env{}
	for k, v := range rec.All() {
		parts := strings.Split(k, ir.PathSep)
		m := map[string]any(env)
		for _, p := range parts[:len(parts)-1] {
			sub, ok := m[p].(map[string]any)
			if !ok {
				if _, leaf := m[p]; leaf {
					m = nil
					break
				}
				sub = map[string]any{}
				m[p] = sub
			}
			m = sub
		}
		if m != nil {
			m[parts[len(parts)-1]] = ToAny(v)
		}
	}
	return env
}

// ToAny converts y to plain Go values.  Numbers that cannot be read are
// kept as their text.
func ToAny(y *ir.Node) any {
	switch y.Type {
	case ir.NumberType:
		v, err := token.NumberValue(y.Number)
		if err != nil {
			return y.Number
		}
		return int(v)
	case ir.ObjectType:
		res := make(map[string]any, y.Len())
		for k, v := range y.All() {
			res[k] = ToAny(v)
		}
		return res
	default:
		return y.String
	}
}
