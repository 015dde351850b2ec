// Package token provides tokenization support for the avrdude.conf dialect.
//
// [Cursor] is a mark/rewind capable byte cursor over a fully buffered
// document.  [Tokenizer] builds on it to produce bare tokens together with
// the reserved character (one of '=', '"', ';') or the first
// non-whitespace, non-comment character that follows them.
//
// Two comment forms are skipped between tokens: '#' to end of line, and the
// C forms "/* ... */" and "// ...".
//
// Numbers are read by [Tokenizer.ReadUInt32], which returns the canonical
// text of the literal rather than its value, so the radix and a leading '~'
// survive for later export.
package token
