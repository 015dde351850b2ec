package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens  bool
	Records bool
	Resolve bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("AVRCONF_DEBUG_TOKENS")
	d.Records = boolEnv("AVRCONF_DEBUG_RECORDS")
	d.Resolve = boolEnv("AVRCONF_DEBUG_RESOLVE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Records() bool {
	return d.Records
}
func Resolve() bool {
	return d.Resolve
}

// Logf writes a debug message to stderr.  Maps and slices are rendered as
// indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, map[string]string, []any, []string:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
