// Package format names the output formats documents can be encoded in: the
// flattened text form used for diagnostics, YAML and JSON.
package format
