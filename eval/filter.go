package eval

import (
	"fmt"

	"github.com/JonMackey/HexLoaderUtility/debug"
	"github.com/JonMackey/HexLoaderUtility/ir"

	"github.com/expr-lang/expr"
)

// Filter is a boolean expression over records.  A Filter may be used from
// several goroutines.
type Filter struct {
	code string
}

// Compile checks code and returns its Filter.
func Compile(code string) (*Filter, error) {
	if _, err := expr.Compile(code, exprOpts(nil)...); err != nil {
		return nil, fmt.Errorf("could not compile %q: %w", code, err)
	}
	return &Filter{code: code}, nil
}

func (f *Filter) String() string {
	return f.code
}

// Match reports whether rec satisfies f.  An expression which cannot be
// evaluated on rec, such as "flash.size > 0" on a part without flash, does
// not match.
func (f *Filter) Match(rec *ir.Node) (bool, error) {
	prg, err := expr.Compile(f.code, exprOpts(rec)...)
	if err != nil {
		return false, fmt.Errorf("could not compile %q: %w", f.code, err)
	}
	res, err := expr.Run(prg, RecordEnv(rec))
	if err != nil {
		if debug.Resolve() {
			debug.Logf("filter %q on %s: %v\n", f.code, id(rec), err)
		}
		return false, nil
	}
	ok, _ := res.(bool)
	if debug.Resolve() {
		debug.Logf("filter %q on %s -> %t\n", f.code, id(rec), ok)
	}
	return ok, nil
}

func id(rec *ir.Node) string {
	s, _ := ir.GetString(rec, "id")
	return s
}
