package format

import (
	"errors"
	"fmt"
)

// Format is an output format for documents.
type Format int

const (
	FlatFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

var formatNames = [...]string{
	FlatFormat: "flat",
	YAMLFormat: "yaml",
	JSONFormat: "json",
}

// ParseFormat accepts a format name or its first letter.
func ParseFormat(v string) (Format, error) {
	for f, name := range formatNames {
		if v == name || v == name[:1] {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("<format %d>", int(f))
	}
	return formatNames[f]
}

// Suffix returns the file name extension of documents in format f.
func (f Format) Suffix() string {
	if f == FlatFormat {
		return ".txt"
	}
	return "." + f.String()
}

func (f Format) MarshalText() ([]byte, error) {
	if f < 0 || int(f) >= len(formatNames) {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(formatNames[f]), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}
