package libdiff

// Kind is the kind of a single field change.
type Kind int

const (
	Insert Kind = iota
	Delete
	Replace
)

const (
	InsertTag  = "!insert"
	DeleteTag  = "!delete"
	ReplaceTag = "!replace"
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return InsertTag
	case Delete:
		return DeleteTag
	case Replace:
		return ReplaceTag
	default:
		return "!unknown"
	}
}
