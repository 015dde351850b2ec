package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/JonMackey/HexLoaderUtility/encode"
	"github.com/JonMackey/HexLoaderUtility/ir"
	"github.com/JonMackey/HexLoaderUtility/libdiff"

	"github.com/google/go-cmp/cmp"
)

func TestWriteChanges(t *testing.T) {
	a := ir.NewObject()
	a.Insert("id", ir.FromString("t85"))
	a.Insert("resetdelay", ir.FromNumber("5"))
	b := ir.NewObject()
	b.Insert("id", ir.FromString("t85"))
	b.Insert("flash.size", ir.FromNumber("8192"))
	buf := &bytes.Buffer{}
	if err := writeChanges(buf, libdiff.Diff(a, b), nil); err != nil {
		t.Fatal(err)
	}
	want := "-resetdelay=5\n+flash.size=8192\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWriteChangesColored(t *testing.T) {
	a := ir.NewObject()
	a.Insert("resetdelay", ir.FromNumber("5"))
	a.Insert("stk500_devcode", ir.FromNumber("0x14"))
	b := ir.NewObject()
	b.Insert("resetdelay", ir.FromNumber("3"))
	b.Insert("flash.size", ir.FromNumber("8192"))
	c := encode.NewColors()
	for attr, tag := range map[encode.ColorAttr]string{
		encode.InsertColor:  "ins",
		encode.DeleteColor:  "del",
		encode.ReplaceColor: "rep",
	} {
		c.Set(attr, func(s string, _ ...any) string { return tag + ":" + s })
	}
	buf := &bytes.Buffer{}
	if err := writeChanges(buf, libdiff.Diff(a, b), c); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"rep:~resetdelay=5 -> 3",
		"del:-stk500_devcode=0x14",
		"ins:+flash.size=8192",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
