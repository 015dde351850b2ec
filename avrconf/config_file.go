package avrconf

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"strings"

	"github.com/JonMackey/HexLoaderUtility/encode"
	"github.com/JonMackey/HexLoaderUtility/ir"
)

// ConfigFile holds the parts read from one avrdude.conf file.
//
// A ConfigFile is not safe for concurrent use while reading.  Once a read
// has completed the document is only read, and values returned by Export
// never share storage with it.
type ConfigFile struct {
	root     *ir.Node
	descToID map[string]string

	partKeys   map[string]FieldRole
	memoryKeys map[string]FieldRole
	regions    []string
	maxDepth   int
	log        *slog.Logger

	path string
	err  error
}

func New(opts ...Option) *ConfigFile {
	f := &ConfigFile{
		root:       ir.NewObject(),
		descToID:   map[string]string{},
		partKeys:   maps.Clone(PartFields),
		memoryKeys: maps.Clone(MemoryFields),
		regions:    DefaultRegions,
		maxDepth:   DefaultMaxParentDepth,
	}
	for _, o := range opts {
		o(f)
	}
	if f.log == nil {
		f.log = slog.Default()
	}
	return f
}

// ReadFile reads and parses the file at path.
func (f *ConfigFile) ReadFile(path string) error {
	f.path = path
	d, err := os.ReadFile(path)
	if err != nil {
		f.reset(err)
		return fmt.Errorf("could not read %q: %w", path, err)
	}
	if err := f.Read(d); err != nil {
		return fmt.Errorf("error parsing %s: %w", path, err)
	}
	return nil
}

// Read parses d, replacing anything read before.  Parsing stops at the
// first error, which is returned and kept (see Err and Code).  After an
// error the document is empty.
func (f *ConfigFile) Read(d []byte) error {
	r := newReader(f, d)
	if err := r.readEntries(); err != nil {
		f.reset(err)
		f.log.Debug("parse failed", "path", f.path, "code", Code(err), "error", err)
		return err
	}
	f.root = r.root
	f.descToID = r.descToID
	f.err = nil
	f.log.Debug("parsed", "path", f.path, "parts", f.root.Len())
	return nil
}

func (f *ConfigFile) reset(err error) {
	f.root = ir.NewObject()
	f.descToID = map[string]string{}
	f.err = err
}

// Err returns the error of the last read, if any.
func (f *ConfigFile) Err() error {
	return f.err
}

// Code returns the error code of the last read.
func (f *ConfigFile) Code() ErrorCode {
	return Code(f.err)
}

func (f *ConfigFile) Path() string {
	return f.path
}

// Root returns the document holding every retained part, keyed by
// identifier.  It must not be modified.
func (f *ConfigFile) Root() *ir.Node {
	return f.root
}

// Parts returns the part identifiers in file order.
func (f *ConfigFile) Parts() []string {
	return append([]string(nil), f.root.Fields...)
}

// Descs returns the part descriptions in file order.
func (f *ConfigFile) Descs() []string {
	res := make([]string, 0, f.root.Len())
	for _, part := range f.root.All() {
		desc, _ := ir.GetString(part, "desc")
		res = append(res, desc)
	}
	return res
}

// IDForDesc returns the identifier of the part described by desc, compared
// without regard to case.  With appendDelimiter the identifier is followed
// by the path separator, making it a path into Root.
func (f *ConfigFile) IDForDesc(desc string, appendDelimiter bool) (string, bool) {
	id, ok := f.descToID[strings.ToLower(desc)]
	if !ok {
		return "", false
	}
	if appendDelimiter {
		id += ir.PathSep
	}
	return id, true
}

// Dump writes the whole document in the flattened text form.
func (f *ConfigFile) Dump(w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(f.root, w, opts...)
}
