// Package eval evaluates boolean expressions over part records.
//
// Expressions use github.com/expr-lang/expr syntax.  Flattened keys are
// nested, so a record holding "flash.size" is seen as
//
//	flash.size > 8192 && desc startsWith "ATmega"
//
// Numbers are integers; strings are strings.  The functions get(key) and
// has(key) look up a flattened key as written in the file, so they also
// reach fields named like a function.
//
// An expression which fails on a record, usually because it reads a field
// the record lacks, does not match it.  Optional chaining gives a default:
//
//	(flash?.size ?? 0) < 8192
package eval
