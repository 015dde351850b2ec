package ir

// Type is the kind of a document node.
type Type int

const (
	StringType Type = iota
	NumberType
	ObjectType
)

var typeNames = [...]string{
	StringType: "string",
	NumberType: "number",
	ObjectType: "object",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "<unknown type>"
	}
	return typeNames[t]
}

// IsLeaf reports whether nodes of type t hold text rather than fields.
func (t Type) IsLeaf() bool {
	return t != ObjectType
}
