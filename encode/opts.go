package encode

import "github.com/JonMackey/HexLoaderUtility/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// EncodeIndent sets the nesting indent of yaml and json output.  Values
// below 1 keep the default of 2.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) {
		if n > 0 {
			es.indent = n
		}
	}
}
