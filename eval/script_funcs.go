package eval

import (
	"fmt"
	"os"

	"github.com/JonMackey/HexLoaderUtility/ir"

	"github.com/expr-lang/expr"
)

// exprOpts binds get and has to rec.  Compiling with a nil rec only checks
// the expression.
func exprOpts(rec *ir.Node) []expr.Option {
	return []expr.Option{
		expr.AsBool(),
		expr.AllowUndefinedVariables(),
		expr.DisableBuiltin("get"),
		expr.Function("get", func(params ...any) (any, error) {
			v := ir.Get(rec, params[0].(string))
			if v == nil {
				return nil, nil
			}
			return ToAny(v), nil
		},
			new(func(string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			return ir.Get(rec, params[0].(string)) != nil, nil
		},
			new(func(string) bool)),
		expr.Function("hex", func(params ...any) (any, error) {
			n, ok := params[0].(int)
			if !ok {
				return nil, fmt.Errorf("hex: expected a number, got %T", params[0])
			}
			return fmt.Sprintf("0x%x", n), nil
		},
			new(func(int) string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
