package treedump

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/verdantlang/treewalk/walk"
)

// Diff compares the dumps of a and b and returns the merged text with
// removals wrapped in [- -] and insertions in [+ +]. Structurally equal
// trees yield the empty string.
func Diff[N any](shape walk.Shape[N], a, b N) string {
	before, after := Dump(shape, a), Dump(shape, b)
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, true)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-")
			sb.WriteString(d.Text)
			sb.WriteString("-]")
		case diffmatchpatch.DiffInsert:
			sb.WriteString("[+")
			sb.WriteString(d.Text)
			sb.WriteString("+]")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
