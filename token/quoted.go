package token

import "strings"

// ReadQuoted is called with the cursor on an opening quote.  It returns the
// quoted text and leaves the cursor on the byte after the closing quote.
//
// `\"` and `\\` are unescaped, any other escape is kept verbatim.  A newline
// or the end of input before the closing quote is an error.
func (t *Tokenizer) ReadQuoted() (string, error) {
	b := &strings.Builder{}
	err := t.scanQuoted(func(ch byte, esc bool) {
		if esc && ch != '"' && ch != '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(ch)
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// SkipQuoted is ReadQuoted without collecting the text.
func (t *Tokenizer) SkipQuoted() error {
	return t.scanQuoted(func(byte, bool) {})
}

func (t *Tokenizer) scanQuoted(f func(ch byte, esc bool)) error {
	open := t.Pos()
	esc := false
	for ch := t.Cursor.Next(); ch != 0; ch = t.Cursor.Next() {
		if esc {
			f(ch, true)
			esc = false
			continue
		}
		switch ch {
		case '"':
			t.Advance()
			return nil
		case '\n':
			return NewTokenizeErr(ErrQuoteNotClosed, open)
		case '\\':
			esc = true
		default:
			f(ch, false)
		}
	}
	return NewTokenizeErr(ErrQuoteNotClosed, open)
}
