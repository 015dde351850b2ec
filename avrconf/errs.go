package avrconf

import (
	"errors"

	"github.com/JonMackey/HexLoaderUtility/token"
)

var (
	ErrUnterminatedValue = token.ErrUnterminatedValue
	ErrQuoteNotClosed    = token.ErrQuoteNotClosed
	ErrUnexpectedChar    = token.ErrUnexpectedChar

	ErrValue             = errors.New("unexpected value at top level")
	ErrReservedChar      = errors.New("reserved character used as entry name")
	ErrEmptyEntry        = errors.New("empty entry")
	ErrInvalidEntryType  = errors.New("invalid entry type")
	ErrMissingParentName = errors.New("missing parent name")
	ErrMissingMemoryType = errors.New("missing memory type")
	ErrEmptyID           = errors.New("empty id")
	ErrEmptyDesc         = errors.New("empty desc")
	ErrMissingEntryKey   = errors.New("missing entry id or desc")
)

// ErrorCode identifies the first error met while reading a file.
type ErrorCode uint8

const (
	NoErr ErrorCode = iota
	UnterminatedValueErr
	QuoteNotClosedErr
	ValueErr
	ReservedCharErr
	EmptyEntryErr
	InvalidEntryTypeErr
	MissingParentNameErr
	MissingMemoryTypeErr
	EmptyIDErr
	EmptyDescErr
	UnexpectedCharErr
	MissingEntryKeyErr
	FileErr
)

var codeErrs = []struct {
	code ErrorCode
	err  error
}{
	{UnterminatedValueErr, ErrUnterminatedValue},
	{QuoteNotClosedErr, ErrQuoteNotClosed},
	{ValueErr, ErrValue},
	{ReservedCharErr, ErrReservedChar},
	{EmptyEntryErr, ErrEmptyEntry},
	{InvalidEntryTypeErr, ErrInvalidEntryType},
	{MissingParentNameErr, ErrMissingParentName},
	{MissingMemoryTypeErr, ErrMissingMemoryType},
	{EmptyIDErr, ErrEmptyID},
	{EmptyDescErr, ErrEmptyDesc},
	{UnexpectedCharErr, ErrUnexpectedChar},
	{MissingEntryKeyErr, ErrMissingEntryKey},
}

// Code maps an error returned by this package onto its ErrorCode.  Errors
// that are not syntax errors, such as a file that cannot be read, map to
// FileErr.
func Code(err error) ErrorCode {
	if err == nil {
		return NoErr
	}
	for _, ce := range codeErrs {
		if errors.Is(err, ce.err) {
			return ce.code
		}
	}
	return FileErr
}

func (c ErrorCode) String() string {
	switch c {
	case NoErr:
		return "no error"
	case FileErr:
		return "file error"
	}
	for _, ce := range codeErrs {
		if ce.code == c {
			return ce.err.Error()
		}
	}
	return "<unknown error code>"
}
