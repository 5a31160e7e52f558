package treedump_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verdantlang/treewalk/tools/treedump"
	"github.com/verdantlang/treewalk/tree"
)

var shape = tree.Shape{}

func sample() *tree.Node {
	return tree.New("BinOp",
		tree.F("op", "+"),
		tree.F("left", tree.New("Num", tree.F("value", 1))),
		tree.F("right", tree.New("Num", tree.F("value", 2))),
	)
}

func TestDump(t *testing.T) {
	got := treedump.Dump(shape, sample())

	want := strings.Join([]string{
		"BinOp",
		"  op: +",
		"  left:",
		"    Num",
		"      value: 1",
		"  right:",
		"    Num",
		"      value: 2",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestDumpLists(t *testing.T) {
	n := tree.New("Block", tree.F("body", []any{
		tree.New("Num", tree.F("value", 1)),
		"leaf",
		tree.Null,
	}))
	got := treedump.Dump(shape, n)

	assert.Contains(t, got, "body: [3]")
	assert.Contains(t, got, "leaf")
	assert.Contains(t, got, "null")
}

func TestDumpDeterministic(t *testing.T) {
	assert.Equal(t, treedump.Dump(shape, sample()), treedump.Dump(shape, sample()))
}

func TestPrinterColorOff(t *testing.T) {
	var sb strings.Builder
	p := treedump.NewPrinter[*tree.Node](shape, &sb)
	p.Color(false)
	p.Print(sample())
	assert.NotContains(t, sb.String(), "\x1b[", "color escapes in non-color output")
}

func TestDiffEqualTrees(t *testing.T) {
	assert.Empty(t, treedump.Diff(shape, sample(), sample()))
}

func TestDiffChangedLeaf(t *testing.T) {
	a := sample()
	b := sample()
	left, _ := b.Get("left")
	left.(*tree.Node).Set("value", 9)

	d := treedump.Diff(shape, a, b)
	assert.Contains(t, d, "[-")
	assert.Contains(t, d, "[+")
	assert.Contains(t, d, "9")
}
