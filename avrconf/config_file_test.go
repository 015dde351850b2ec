package avrconf

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/JonMackey/HexLoaderUtility/ir"
	"github.com/JonMackey/HexLoaderUtility/token"

	"github.com/google/go-cmp/cmp"
)

func quiet() Option {
	return WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func mustRead(t *testing.T, conf string, opts ...Option) *ConfigFile {
	t.Helper()
	f := New(append([]Option{quiet()}, opts...)...)
	if err := f.Read([]byte(conf)); err != nil {
		t.Fatalf("read: %v", err)
	}
	return f
}

// fields renders a record as key=value lines for comparison.
func fields(y *ir.Node) []string {
	if y == nil {
		return nil
	}
	var res []string
	for k, v := range y.All() {
		res = append(res, k+"="+v.Text())
	}
	return res
}

func TestReadSample(t *testing.T) {
	f := mustRead(t, sampleConf)
	if diff := cmp.Diff([]string{"m328", "m328p", "m328pb"}, f.Parts()); diff != "" {
		t.Errorf("parts (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"ATmega328", "ATmega328P", "ATmega328PB"}, f.Descs()); diff != "" {
		t.Errorf("descs (-want +got):\n%s", diff)
	}
	want := []string{
		"id=m328",
		"desc=ATmega328",
		"signature=0x1e9514",
		"chip_erase_delay=9000",
		"resetdelay=5",
		"eeprom.page_size=4",
		"eeprom.size=1024",
		"eeprom.min_write_delay=3600",
		"flash.size=32768",
		"flash.page_size=128",
		"flash.readsize=256",
	}
	if diff := cmp.Diff(want, fields(ir.Get(f.Root(), "m328"))); diff != "" {
		t.Errorf("m328 (-want +got):\n%s", diff)
	}
	if f.Err() != nil || f.Code() != NoErr {
		t.Errorf("err %v code %s", f.Err(), f.Code())
	}
}

func TestExportInherits(t *testing.T) {
	f := mustRead(t, sampleConf)
	want := []string{
		"parent=m328p",
		"id=m328pb",
		"desc=ATmega328PB",
		"signature=0x1e9516",
		"eeprom.size=0x800",
		"chip_erase_delay=9000",
		"resetdelay=5",
		"eeprom.page_size=4",
		"eeprom.min_write_delay=3600",
		"flash.size=32768",
		"flash.page_size=128",
		"flash.readsize=256",
	}
	got := f.Export("atmega328pb")
	if diff := cmp.Diff(want, fields(got)); diff != "" {
		t.Errorf("export (-want +got):\n%s", diff)
	}
	if got.Parent != nil {
		t.Error("exported record is attached")
	}
	got.Insert("extra", ir.FromString("x"))
	if ir.Get(ir.Get(f.Root(), "m328pb"), "extra") != nil {
		t.Error("export shares storage with the document")
	}
	if f.Export("ATmega8") != nil {
		t.Error("unknown desc exported")
	}
	if !ir.Equal(f.ExportID("m328pb"), f.Export("ATmega328PB")) {
		t.Error("ExportID differs from Export")
	}
}

func TestExportNearestWins(t *testing.T) {
	f := mustRead(t, `
part id = "A"; desc = "a"; x = 1; y = 2; ;
part parent "A" id = "B"; desc = "b"; ;
part parent "B" id = "C"; desc = "c"; ;
`, func(f *ConfigFile) {
		f.partKeys["x"] = Number
		f.partKeys["y"] = Number
	})
	f2 := mustRead(t, `
part id = "A"; desc = "a"; x = 1; y = 2; ;
part parent "A" id = "B"; desc = "b"; x = 9; ;
part parent "B" id = "C"; desc = "c"; ;
`, func(f *ConfigFile) {
		f.partKeys["x"] = Number
		f.partKeys["y"] = Number
	})
	c := f2.Export("c")
	if x := ir.Get(c, "x"); x == nil || x.Text() != "9" {
		t.Errorf("x = %v", fields(c))
	}
	if y := ir.Get(c, "y"); y == nil || y.Text() != "2" {
		t.Errorf("y = %v", fields(c))
	}
	if x := ir.Get(f.Export("c"), "x"); x == nil || x.Text() != "1" {
		t.Errorf("x through two levels = %v", fields(f.Export("c")))
	}
}

func TestExportCycle(t *testing.T) {
	f := mustRead(t, `
part parent "B" id = "A"; desc = "a"; resetdelay = 1; ;
part parent "A" id = "B"; desc = "b"; signature = 2; ;
`)
	got := f.Export("a")
	want := []string{"parent=B", "id=A", "desc=a", "resetdelay=1", "signature=2"}
	if diff := cmp.Diff(want, fields(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestExportDepth(t *testing.T) {
	conf := `
part id = "p0"; desc = "d0"; resetdelay = 1; ;
part parent "p0" id = "p1"; desc = "d1"; ;
part parent "p1" id = "p2"; desc = "d2"; ;
`
	f := mustRead(t, conf, WithMaxParentDepth(1))
	if ir.Get(f.Export("d2"), "resetdelay") != nil {
		t.Error("depth limit not applied")
	}
	f = mustRead(t, conf)
	if ir.Get(f.Export("d2"), "resetdelay") == nil {
		t.Error("inherited field missing")
	}
}

func TestExportDanglingParent(t *testing.T) {
	f := mustRead(t, `part parent "nowhere" id = "x"; desc = "X"; ;`)
	want := []string{"parent=nowhere", "id=x", "desc=X"}
	if diff := cmp.Diff(want, fields(f.Export("X"))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestIDForDesc(t *testing.T) {
	f := mustRead(t, sampleConf)
	for _, desc := range []string{"ATmega328P", "atmega328p", "ATMEGA328P"} {
		id, ok := f.IDForDesc(desc, false)
		if !ok || id != "m328p" {
			t.Errorf("IDForDesc(%q) = %q, %t", desc, id, ok)
		}
	}
	id, ok := f.IDForDesc("ATmega328P", true)
	if !ok || id != "m328p." {
		t.Fatalf("IDForDesc with delimiter = %q, %t", id, ok)
	}
	if f.Root().GetPath(id, ir.ObjectType) != ir.Get(f.Root(), "m328p") {
		t.Error("delimited id is not a path to the part")
	}
	if y := f.Root().GetPath(id+"flash.size", ir.NumberType); y != nil {
		t.Errorf("flash.size is not stored on m328p, got %s", y.Text())
	}
	if y := f.Root().GetPath("m328.flash.size", ir.NumberType); y == nil || y.Text() != "32768" {
		t.Error("m328.flash.size not found")
	}
	if _, ok := f.IDForDesc("ATtiny85", false); ok {
		t.Error("unknown desc found")
	}
}

func TestDuplicates(t *testing.T) {
	f := mustRead(t, `
part id = "a"; desc = "First"; resetdelay = 1; ;
part id = "a"; desc = "Second"; resetdelay = 2; ;
part id = "b"; desc = "first"; ;
part id = "c"; id = "d"; desc = "Third"; ;
`)
	if diff := cmp.Diff([]string{"a", "b", "c"}, f.Parts()); diff != "" {
		t.Errorf("parts (-want +got):\n%s", diff)
	}
	if _, ok := f.IDForDesc("second", false); ok {
		t.Error("desc of a dropped part was indexed")
	}
	if id, _ := f.IDForDesc("FIRST", false); id != "a" {
		t.Errorf("first desc maps to %q", id)
	}
	if id, _ := f.IDForDesc("third", false); id != "c" {
		t.Errorf("third maps to %q", id)
	}
}

func TestRegions(t *testing.T) {
	conf := `part id = "x"; desc = "X";
	memory "flash" size = 0x8000; ;
	memory "eeprom" size = 512; ;
	memory "efuse" size = 1; ;
;`
	f := mustRead(t, conf)
	want := []string{"id=x", "desc=X", "flash.size=0x8000", "eeprom.size=512"}
	if diff := cmp.Diff(want, fields(f.Export("X"))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	f = mustRead(t, conf, WithRegions("efuse"))
	want = []string{"id=x", "desc=X", "efuse.size=1"}
	if diff := cmp.Diff(want, fields(f.Export("X"))); diff != "" {
		t.Errorf("with regions (-want +got):\n%s", diff)
	}
}

func TestReadReplaces(t *testing.T) {
	f := mustRead(t, sampleConf)
	if err := f.Read([]byte(`part id = "t85"; desc = "ATtiny85"; ;`)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"t85"}, f.Parts()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, ok := f.IDForDesc("ATmega328P", false); ok {
		t.Error("index kept entries of the previous read")
	}
}

type errTest struct {
	in   string
	code ErrorCode
}

func TestReadErrors(t *testing.T) {
	ets := []errTest{
		{in: `part id = "x"; desc = "X"; signature = 0x1e 0x95 0x0f 0x01 0x02; ;`, code: UnterminatedValueErr},
		{in: `part id = "x"; desc = "X"; resetdelay = 5 6; ;`, code: UnterminatedValueErr},
		{in: "part id = \"x;\n desc = \"X\"; ;", code: QuoteNotClosedErr},
		{in: `part id = "x"; desc = "X`, code: QuoteNotClosedErr},
		{in: `default_parallel = "/dev/parport0"`, code: ValueErr},
		{in: `"part" id = "x"; ;`, code: ReservedCharErr},
		{in: `;`, code: EmptyEntryErr},
		{in: `board id = "x"; ;`, code: InvalidEntryTypeErr},
		{in: `part parent id = "x"; ;`, code: MissingParentNameErr},
		{in: `programmer parent ;`, code: MissingParentNameErr},
		{in: `part id = "x"; desc = "X"; memory flash size = 1; ; ;`, code: MissingMemoryTypeErr},
		{in: `part id = ""; desc = "X"; ;`, code: EmptyIDErr},
		{in: `part id = "x"; desc = ""; ;`, code: EmptyDescErr},
		{in: `part id = "x"; desc "X"; ;`, code: UnexpectedCharErr},
		{in: `programmer usbasp thing ;`, code: UnexpectedCharErr},
		{in: `part id = "x"; desc = "X"; memory "flash" { size = 1024; } ;`, code: UnexpectedCharErr},
		{in: `part id = "x"; desc = "X"; memory "lfuse" { size = 1; } ;`, code: UnexpectedCharErr},
		{in: `part id = "x"; ;`, code: MissingEntryKeyErr},
		{in: `part desc = "X"; ;`, code: MissingEntryKeyErr},
	}
	for _, et := range ets {
		f := New(quiet())
		err := f.Read([]byte(et.in))
		if Code(err) != et.code {
			t.Errorf("%q: code %s (%v) want %s", et.in, Code(err), err, et.code)
			continue
		}
		if f.Code() != et.code || !errors.Is(f.Err(), err) {
			t.Errorf("%q: kept code %s", et.in, f.Code())
		}
		if len(f.Parts()) != 0 || f.Root().Len() != 0 {
			t.Errorf("%q: parts retained after error: %v", et.in, f.Parts())
		}
	}
}

func TestReadErrorPos(t *testing.T) {
	f := New(quiet())
	err := f.Read([]byte("part id = \"x\"; desc = \"X\";\n  resetdelay = 1 2;\n;"))
	var te *token.TokenizeErr
	if !errors.As(err, &te) {
		t.Fatalf("expected TokenizeErr, got %v", err)
	}
	if l := te.Pos.Line(); l != 2 {
		t.Errorf("line %d", l)
	}
}

func TestReadErrorKeepsNothing(t *testing.T) {
	f := mustRead(t, sampleConf)
	if err := f.Read([]byte(sampleConf + "\npart id = \"y\";\n")); err == nil {
		t.Fatal("expected error")
	}
	if f.Export("ATmega328P") != nil || len(f.Parts()) != 0 {
		t.Error("parts retained after failed read")
	}
}

func TestSkipped(t *testing.T) {
	f := mustRead(t, `
default_bitclock = 0.0;
programmer parent "pickit2" id = "pk2"; desc = "x"; type = "pickit2"; ;
programmer id = "dragon"; desc = "AVR Dragon"; ;
part id = "x"; desc = "X"; ;
`)
	if diff := cmp.Diff([]string{"x"}, f.Parts()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, ok := f.IDForDesc("AVR Dragon", false); ok {
		t.Error("programmer indexed")
	}
}

func TestTruncatedEntries(t *testing.T) {
	f := mustRead(t, `part id = "x"; desc = "X"; ;
programmer id = "p"; desc = "P"; type = "x"`)
	if diff := cmp.Diff([]string{"x"}, f.Parts()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDump(t *testing.T) {
	f := mustRead(t, `part id = "x"; desc = "X"; signature = 0x1e 0x93 0x0b; memory "flash" size = 8192; ; ;`)
	buf := &bytes.Buffer{}
	if err := f.Dump(buf); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"###########",
		"#### x ####",
		"###########",
		"id=x",
		"desc=X",
		"signature=0x1e930b",
		"flash.size=8192",
		"",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestApply(t *testing.T) {
	src := ir.NewObject()
	src.Insert("size", ir.FromNumber("1"))
	dst := ir.NewObject()
	dst.Insert("id", ir.FromString("x"))
	ApplyWithPrefix(src, dst, "flash")
	Apply(src, dst)
	want := []string{"id=x", "flash.size=1", "size=1"}
	if diff := cmp.Diff(want, fields(dst)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestErrorCodeString(t *testing.T) {
	if s := EmptyIDErr.String(); s != ErrEmptyID.Error() {
		t.Errorf("got %q", s)
	}
	if s := NoErr.String(); s != "no error" {
		t.Errorf("got %q", s)
	}
	if c := Code(errors.New("disk on fire")); c != FileErr {
		t.Errorf("got %s", c)
	}
}
