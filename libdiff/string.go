package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString renders the character diff of two strings inline, with
// deletions as [-text-] and insertions as {+text+}.  When more than half of
// the shorter string changed, the whole values are shown instead.
func DiffString(from, to string) string {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	diffSize := 0
	buf := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			diffSize += len(d.Text)
			buf.WriteString("{+" + d.Text + "+}")
		case diffpatch.DiffDelete:
			diffSize += len(d.Text)
			buf.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffEqual:
			buf.WriteString(d.Text)
		}
	}
	if diffSize == 0 {
		return from
	}
	if diffSize > min(len(from), len(to))/2 {
		return "[-" + from + "-]{+" + to + "+}"
	}
	return buf.String()
}
