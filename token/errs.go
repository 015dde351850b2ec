package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedValue = errors.New("unterminated value")
	ErrQuoteNotClosed    = errors.New("quote not closed")
	ErrUnexpectedChar    = errors.New("unexpected character")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

// ExpectedErr reports that what was expected but ch was found.
func ExpectedErr(what string, ch byte, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w: expected %s, got %s", ErrUnexpectedChar, what, CharString(ch)), p)
}

// CharString renders a terminator character for messages.
func CharString(ch byte) string {
	if ch == 0 {
		return "end of input"
	}
	return fmt.Sprintf("%q", rune(ch))
}
