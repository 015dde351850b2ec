package format

import (
	"errors"
	"testing"
)

type formatTest struct {
	in     string
	out    Format
	suffix string
}

func TestParseFormat(t *testing.T) {
	fts := []formatTest{
		{in: "f", out: FlatFormat, suffix: ".txt"},
		{in: "flat", out: FlatFormat, suffix: ".txt"},
		{in: "y", out: YAMLFormat, suffix: ".yaml"},
		{in: "yaml", out: YAMLFormat, suffix: ".yaml"},
		{in: "j", out: JSONFormat, suffix: ".json"},
		{in: "json", out: JSONFormat, suffix: ".json"},
	}
	for _, ft := range fts {
		got, err := ParseFormat(ft.in)
		if err != nil {
			t.Errorf("%q: %v", ft.in, err)
			continue
		}
		if got != ft.out {
			t.Errorf("%q: got %s want %s", ft.in, got, ft.out)
		}
		if s := got.Suffix(); s != ft.suffix {
			t.Errorf("%q: suffix %s", ft.in, s)
		}
	}
	for _, bad := range []string{"toml", "", "js"} {
		if _, err := ParseFormat(bad); !errors.Is(err, ErrBadFormat) {
			t.Errorf("%q: expected ErrBadFormat, got %v", bad, err)
		}
	}
}

func TestFormatText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("json")); err != nil {
		t.Fatal(err)
	}
	d, err := f.MarshalText()
	if err != nil || string(d) != "json" {
		t.Errorf("got %q, %v", d, err)
	}
	if _, err := Format(7).MarshalText(); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}
