package token

import (
	"github.com/JonMackey/HexLoaderUtility/debug"
)

// Tokenizer reads bare tokens, quoted strings and numeric values from a
// Cursor.
type Tokenizer struct {
	*Cursor
}

func NewTokenizer(d []byte) *Tokenizer {
	return &Tokenizer{Cursor: NewCursor(d)}
}

// SkipComments skips whitespace and both comment forms, returning the
// first byte that is neither.
func (t *Tokenizer) SkipComments() byte {
	for {
		ch := t.SkipWhitespaceAndHashComments()
		if ch != '/' {
			return ch
		}
		off := t.Offset()
		ch = t.SkipWhitespaceAndComments()
		if t.Offset() == off {
			return ch
		}
	}
}

// Next returns the next token and the byte following it.
//
// A token ends at a reserved character ('=', '"', ';'), which is returned
// without being consumed, or at whitespace, in which case the first byte
// after any further whitespace and comments is returned.  The returned
// byte is 0 at the end of input.
//
//	"part parent"           -> "part", 'p'
//	"parent \"name\""       -> "parent", '"'
//	"part # c\n\tid ="      -> "part", 'i'
//	"id = \"x\""            -> "id", '='
//	"# c\n\t;"              -> "", ';'
func (t *Tokenizer) Next() (string, byte) {
	tok, ch := t.next()
	if debug.Tokens() {
		debug.Logf("token %q term %s at %s\n", tok, CharString(ch), t.Pos())
	}
	return tok, ch
}

func (t *Tokenizer) next() (string, byte) {
	ch := t.SkipComments()
	start := t.Offset()
	for ch != 0 {
		switch ch {
		case '=', '"', ';':
			return t.Slice(start, t.Offset()), ch
		case ' ', '\t', '\n', '\r':
			tok := t.Slice(start, t.Offset())
			return tok, t.SkipComments()
		}
		ch = t.Cursor.Next()
	}
	return t.Slice(start, t.Offset()), 0
}

// SkipValue is called with the cursor on an assignment operator.  It scans
// to the terminating ';', ignoring any ';' inside quotes or comments, and
// leaves the cursor on the byte after it.
//
// terminated is false if the input ended before a ';' was found.
func (t *Tokenizer) SkipValue() (terminated bool, err error) {
	t.Advance()
	for {
		switch t.SkipComments() {
		case 0:
			return false, nil
		case '"':
			if err := t.SkipQuoted(); err != nil {
				return false, err
			}
		case ';':
			t.Advance()
			return true, nil
		default:
			t.Advance()
		}
	}
}
