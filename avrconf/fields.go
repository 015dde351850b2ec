package avrconf

// FieldRole says how a retained field is read and what it is used for.
type FieldRole int

const (
	Identifier FieldRole = iota
	Description
	GenericString
	Number
	NestedMemory
)

func (r FieldRole) String() string {
	switch r {
	case Identifier:
		return "identifier"
	case Description:
		return "description"
	case GenericString:
		return "string"
	case Number:
		return "number"
	case NestedMemory:
		return "memory"
	default:
		return "<unknown role>"
	}
}

// PartFields lists the part fields that are retained.  The parent clause
// that may follow the "part" keyword is retained as the string field
// "parent".
var PartFields = map[string]FieldRole{
	"id":               Identifier,
	"desc":             Description,
	"signature":        Number,
	"chip_erase_delay": Number,
	"resetdelay":       Number,
	"stk500_devcode":   Number,
	"memory":           NestedMemory,
}

// MemoryFields lists the memory region fields that are retained.
var MemoryFields = map[string]FieldRole{
	"min_write_delay": Number,
	"delay":           Number,
	"blocksize":       Number,
	"size":            Number,
	"page_size":       Number,
	"readsize":        Number,
}

// DefaultRegions names the memory regions that are flattened into a part.
var DefaultRegions = []string{"flash", "eeprom"}

const parentField = "parent"
