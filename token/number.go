package token

import (
	"fmt"
	"strconv"
	"strings"
)

// maxHexSegments bounds the space separated "0x" groups that are joined into
// a single value, as in "signature = 0x1e 0x95 0x0f;".
const maxHexSegments = 4

// ReadUInt32 is called with the cursor just past an assignment operator.  It
// reads an unsigned 32 bit literal and returns its canonical text together
// with the byte that follows it.  The cursor is left on that byte, which
// must be ';' or ErrUnterminatedValue is returned.
//
// Hex literals render as lowercase "0x" hex and decimal literals as plain
// decimal.  A leading '~' is kept verbatim in front of the rendered value.
func (t *Tokenizer) ReadUInt32() (string, byte, error) {
	var (
		not   bool
		isHex bool
		value uint32
	)
	ch := t.SkipComments()
	if ch == '~' {
		not = true
		t.Advance()
		ch = t.SkipComments()
	}
	if ch == '0' {
		t.PushMark()
		x := t.Cursor.Next()
		isHex = x == 'x' || x == 'X'
		t.PopMark(!isHex)
		ch = t.Cursor.Next()
	}
	if isHex {
		for seg := 1; ; seg++ {
			for ; isHexDigit(ch); ch = t.Cursor.Next() {
				value = value<<4 | uint32(hexVal(ch))
			}
			ch = t.SkipWhitespace()
			if seg == maxHexSegments || !t.acceptHexPrefix() {
				break
			}
			ch = t.Curr()
		}
	} else {
		for ; ch >= '0' && ch <= '9'; ch = t.Cursor.Next() {
			value = value*10 + uint32(ch-'0')
		}
		ch = t.SkipWhitespace()
	}
	if ch != ';' {
		return "", ch, NewTokenizeErr(ErrUnterminatedValue, t.Pos())
	}
	return FormatUInt32(value, isHex, not), ch, nil
}

// acceptHexPrefix consumes "0x" if the cursor is on one.
func (t *Tokenizer) acceptHexPrefix() bool {
	if t.Curr() != '0' {
		return false
	}
	switch t.Peek() {
	case 'x', 'X':
		t.Advance()
		t.Advance()
		return true
	}
	return false
}

// FormatUInt32 renders a value in canonical numeric text.
func FormatUInt32(v uint32, hex, not bool) string {
	var s string
	if hex {
		s = "0x" + strconv.FormatUint(uint64(v), 16)
	} else {
		s = strconv.FormatUint(uint64(v), 10)
	}
	if not {
		return "~" + s
	}
	return s
}

// ParseUInt32 parses canonical numeric text.  The returned value does not
// have the bitwise not applied; not reports whether the text carried it.
func ParseUInt32(text string) (v uint32, hex, not bool, err error) {
	s := text
	if rest, ok := strings.CutPrefix(s, "~"); ok {
		not = true
		s = rest
	}
	base := 10
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		hex = true
		base = 16
		s = s[2:]
	}
	u, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, false, false, fmt.Errorf("invalid number %q: %w", text, err)
	}
	return uint32(u), hex, not, nil
}

// NumberValue returns the value of canonical numeric text with any bitwise
// not applied.
func NumberValue(text string) (uint32, error) {
	v, _, not, err := ParseUInt32(text)
	if err != nil {
		return 0, err
	}
	if not {
		v = ^v
	}
	return v, nil
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func hexVal(ch byte) byte {
	switch {
	case ch >= 'a':
		return ch - 'a' + 10
	case ch >= 'A':
		return ch - 'A' + 10
	}
	return ch - '0'
}
