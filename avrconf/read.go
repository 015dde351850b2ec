package avrconf

import (
	"fmt"
	"slices"
	"strings"

	"github.com/JonMackey/HexLoaderUtility/debug"
	"github.com/JonMackey/HexLoaderUtility/ir"
	"github.com/JonMackey/HexLoaderUtility/token"
)

type entryType int

const (
	invalidEntry entryType = iota
	partEntry
	programmerEntry
)

func entryTypeOf(tok string) entryType {
	switch tok {
	case "part":
		return partEntry
	case "programmer":
		return programmerEntry
	default:
		return invalidEntry
	}
}

// reader holds the state of one pass over a file.  Its document only
// replaces the ConfigFile's once the whole pass has succeeded.
type reader struct {
	*token.Tokenizer
	f        *ConfigFile
	root     *ir.Node
	descToID map[string]string
}

func newReader(f *ConfigFile, d []byte) *reader {
	return &reader{
		Tokenizer: token.NewTokenizer(d),
		f:         f,
		root:      ir.NewObject(),
		descToID:  map[string]string{},
	}
}

func (r *reader) errAt(err error, pos *token.Pos) error {
	return token.NewTokenizeErr(err, pos)
}

// readEntries reads top level entries until the end of input or the first
// error.  Only part entries are kept.  Programmer entries and bare
// key/values outside of any entry are skipped.
func (r *reader) readEntries() error {
	for {
		pos := r.Pos()
		tok, ch := r.Next()
		switch ch {
		case 0:
			return nil
		case '=':
			terminated, err := r.SkipValue()
			if err != nil {
				return err
			}
			if !terminated {
				return r.errAt(fmt.Errorf("%w: %q", ErrValue, tok), pos)
			}
			r.f.log.Debug("skipped top level value", "key", tok)
		case '"':
			return r.errAt(ErrReservedChar, r.Pos())
		case ';':
			return r.errAt(ErrEmptyEntry, r.Pos())
		default:
			switch entryTypeOf(tok) {
			case partEntry:
				if err := r.readPart(); err != nil {
					return err
				}
			case programmerEntry:
				if err := r.skipEntry(); err != nil {
					return err
				}
			default:
				return r.errAt(fmt.Errorf("%w: %q", ErrInvalidEntryType, tok), pos)
			}
		}
	}
}

// readPart reads the fields of a part entry, keeping those listed in the
// part field table, and stores the part once its closing ';' is read.
func (r *reader) readPart() error {
	start := r.Pos()
	entry := ir.NewObject()
	var id, desc string

	tok, ch := r.Next()
	if tok == parentField {
		if ch != '"' {
			return r.errAt(ErrMissingParentName, r.Pos())
		}
		name, err := r.ReadQuoted()
		if err != nil {
			return err
		}
		entry.Insert(parentField, ir.FromString(name))
		tok, ch = r.Next()
	}
fields:
	for ; ch != 0; tok, ch = r.Next() {
		role, ok := r.f.partKeys[tok]
		if !ok {
			switch ch {
			case '=':
				if _, err := r.SkipValue(); err != nil {
					return err
				}
				continue
			case ';':
				r.Advance()
				break fields
			default:
				return token.ExpectedErr("'=' or ';'", ch, r.Pos())
			}
		}
		switch role {
		case NestedMemory:
			if ch != '"' {
				return r.errAt(ErrMissingMemoryType, r.Pos())
			}
			name, err := r.ReadQuoted()
			if err != nil {
				return err
			}
			if !slices.Contains(r.f.regions, name) {
				r.f.log.Debug("skipping memory region", "region", name, "offset", r.Offset())
				if err := r.skipEntry(); err != nil {
					return err
				}
				continue
			}
			region, err := r.readMemory()
			if err != nil {
				return err
			}
			ir.ApplyWithPrefix(entry, region, name)
		case Identifier, Description, GenericString:
			pos := r.Pos()
			v, err := r.readString(ch)
			if err != nil {
				return err
			}
			switch role {
			case Identifier:
				if v == "" {
					return r.errAt(ErrEmptyID, pos)
				}
				if id == "" {
					id = v
				}
			case Description:
				if v == "" {
					return r.errAt(ErrEmptyDesc, pos)
				}
				if desc == "" {
					desc = v
				}
			}
			entry.Insert(tok, ir.FromString(v))
		case Number:
			v, err := r.readNumber(ch)
			if err != nil {
				return err
			}
			entry.Insert(tok, ir.FromNumber(v))
		}
	}
	if id == "" || desc == "" {
		return r.errAt(fmt.Errorf("%w (id=%q desc=%q)", ErrMissingEntryKey, id, desc), start)
	}
	r.register(id, desc, entry)
	return nil
}

func (r *reader) register(id, desc string, entry *ir.Node) {
	if !r.root.Insert(id, entry) {
		r.f.log.Warn("duplicate part id ignored", "id", id, "desc", desc)
		return
	}
	lc := strings.ToLower(desc)
	if prev, ok := r.descToID[lc]; ok {
		r.f.log.Warn("duplicate part desc", "desc", desc, "id", id, "first", prev)
		return
	}
	r.descToID[lc] = id
	if debug.Records() {
		debug.Logf("part %s (%s) with %d fields\n", id, desc, entry.Len())
	}
}

// readMemory reads the fields of a memory region, keeping those listed in
// the memory field table.  Nothing is returned on error.
func (r *reader) readMemory() (*ir.Node, error) {
	region := ir.NewObject()
	for tok, ch := r.Next(); ch != 0; tok, ch = r.Next() {
		switch ch {
		case '=':
			if _, ok := r.f.memoryKeys[tok]; !ok {
				if _, err := r.SkipValue(); err != nil {
					return nil, err
				}
				continue
			}
			v, err := r.readNumber(ch)
			if err != nil {
				return nil, err
			}
			region.Insert(tok, ir.FromNumber(v))
		case ';':
			r.Advance()
			return region, nil
		default:
			return nil, token.ExpectedErr("'=' or ';'", ch, r.Pos())
		}
	}
	return region, nil
}

// readString reads `= "value";` with the cursor on the '='.
func (r *reader) readString(ch byte) (string, error) {
	if ch != '=' {
		return "", token.ExpectedErr("'='", ch, r.Pos())
	}
	r.Advance()
	if ch = r.SkipComments(); ch != '"' {
		return "", token.ExpectedErr("'\"'", ch, r.Pos())
	}
	v, err := r.ReadQuoted()
	if err != nil {
		return "", err
	}
	if ch = r.SkipComments(); ch != ';' {
		return "", token.ExpectedErr("';'", ch, r.Pos())
	}
	r.Advance()
	return v, nil
}

// readNumber reads `= number;` with the cursor on the '='.
func (r *reader) readNumber(ch byte) (string, error) {
	if ch != '=' {
		return "", token.ExpectedErr("'='", ch, r.Pos())
	}
	r.Advance()
	v, _, err := r.ReadUInt32()
	if err != nil {
		return "", err
	}
	r.Advance()
	return v, nil
}

// skipEntry skips an entry that is not kept: a programmer, or a memory
// region that is not retained.  The syntax is still checked so that an error
// inside it is not hidden.
func (r *reader) skipEntry() error {
	tok, ch := r.Next()
	if tok == parentField {
		if ch != '"' {
			return r.errAt(ErrMissingParentName, r.Pos())
		}
		if err := r.SkipQuoted(); err != nil {
			return err
		}
		_, ch = r.Next()
	}
	for ; ch != 0; _, ch = r.Next() {
		switch ch {
		case '=':
			terminated, err := r.SkipValue()
			if err != nil {
				return err
			}
			if !terminated {
				return nil
			}
		case ';':
			r.Advance()
			return nil
		default:
			return token.ExpectedErr("'=' or ';'", ch, r.Pos())
		}
	}
	return nil
}
