package walk_test

import (
	"github.com/verdantlang/treewalk/tree"
)

// A small vocabulary for exercising the engine. The engine itself never
// learns these kinds; they exist only in the tests.

var shape = tree.Shape{}

func num(v int) *tree.Node {
	return tree.New("Num", tree.F("value", v))
}

func binOp(op string, left, right *tree.Node) *tree.Node {
	return tree.New("BinOp", tree.F("op", op), tree.F("left", left), tree.F("right", right))
}

func ret(arg *tree.Node) *tree.Node {
	return tree.New("Return", tree.F("arg", arg))
}

func block(body ...any) *tree.Node {
	return tree.New("Block", tree.F("body", body))
}
