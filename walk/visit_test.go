package walk_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/verdantlang/treewalk/tree"
	"github.com/verdantlang/treewalk/walk"
)

func TestEveryNodeVisitedOnce(t *testing.T) {
	// Nine nodes; the list mixes in a leaf that must be skipped.
	root := block(
		binOp("+", num(1), num(2)),
		"a stray leaf",
		ret(num(3)),
		binOp("*", num(4), num(5)),
	)
	seen := make(map[*tree.Node]int)
	v := walk.NewVisitor[*tree.Node](shape)
	v.Fallback(func(v *walk.Visitor[*tree.Node], n *tree.Node) {
		seen[n]++
		v.VisitChildren(n)
	})
	v.Visit(root)

	const wantNodes = 9
	if len(seen) != wantNodes {
		t.Errorf("visited %d distinct nodes; want %d", len(seen), wantNodes)
	}
	for n, count := range seen {
		if count != 1 {
			t.Errorf("%s node visited %d times; want 1", n.Kind(), count)
		}
	}
}

func TestTraversalOrder(t *testing.T) {
	// Field order first, then list order.
	root := binOp("+",
		block(num(1), num(2)),
		num(3),
	)

	var values []int
	v := walk.NewVisitor[*tree.Node](shape)
	v.Handle("Num", func(_ *walk.Visitor[*tree.Node], n *tree.Node) {
		val, _ := n.Get("value")
		values = append(values, val.(int))
	})
	v.Visit(root)

	if want := []int{1, 2, 3}; !slices.Equal(values, want) {
		t.Errorf("visit order = %v; want %v", values, want)
	}
}

func TestHandlerControlsRecursion(t *testing.T) {
	root := ret(ret(num(1)))

	// Without an explicit VisitChildren call the handler prunes the
	// subtree: the inner Return and the Num are never dispatched.
	visited := 0
	v := walk.NewVisitor[*tree.Node](shape)
	v.Handle("Return", func(_ *walk.Visitor[*tree.Node], _ *tree.Node) {
		visited++
	})
	v.Visit(root)
	if visited != 1 {
		t.Errorf("pruning handler ran %d times; want 1", visited)
	}

	// With the hook invoked, recursion resumes on the engine's terms.
	visited = 0
	v.Handle("Return", func(v *walk.Visitor[*tree.Node], n *tree.Node) {
		visited++
		v.VisitChildren(n)
	})
	v.Visit(root)
	if visited != 2 {
		t.Errorf("recursing handler ran %d times; want 2", visited)
	}
}

func TestHandlerChoosesOrder(t *testing.T) {
	root := ret(num(7))

	var trace []string
	v := walk.NewVisitor[*tree.Node](shape)
	v.Handle("Return", func(v *walk.Visitor[*tree.Node], n *tree.Node) {
		trace = append(trace, "enter Return")
		v.VisitChildren(n)
		trace = append(trace, "exit Return")
	})
	v.Handle("Num", func(_ *walk.Visitor[*tree.Node], _ *tree.Node) {
		trace = append(trace, "Num")
	})
	v.Visit(root)

	want := []string{"enter Return", "Num", "exit Return"}
	if !slices.Equal(trace, want) {
		t.Errorf("trace = %v; want %v", trace, want)
	}
}

func TestUnconstructedKindIsLegal(t *testing.T) {
	v := walk.NewVisitor[*tree.Node](shape)
	v.Handle("NeverBuilt", func(_ *walk.Visitor[*tree.Node], _ *tree.Node) {
		t.Error("handler for unconstructed kind ran")
	})
	v.Visit(binOp("+", num(1), num(2)))
}

func TestNullAndNilSkipped(t *testing.T) {
	root := tree.New("Opt",
		tree.F("present", num(1)),
		tree.F("empty", tree.Null),
		tree.F("unset", (*tree.Node)(nil)),
		tree.F("items", []any{tree.Null, num(2), nil}),
	)

	count := 0
	v := walk.NewVisitor[*tree.Node](shape)
	v.Handle("Num", func(_ *walk.Visitor[*tree.Node], _ *tree.Node) {
		count++
	})
	v.Visit(root)
	if count != 2 {
		t.Errorf("visited %d Num nodes; want 2", count)
	}
}

// A tree representation defined outside this module, walked through its
// own shape. No shared base type.

type calcExpr interface{}

type calcLit struct {
	val int
}

type calcAdd struct {
	left, right calcExpr
}

type calcShape struct{}

func (calcShape) Kind(e calcExpr) string {
	switch e.(type) {
	case *calcLit:
		return "Lit"
	case *calcAdd:
		return "Add"
	}
	return "?"
}

func (calcShape) Fields(e calcExpr) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		switch e := e.(type) {
		case *calcLit:
			yield("val", e.val)
		case *calcAdd:
			if !yield("left", e.left) {
				return
			}
			yield("right", e.right)
		}
	}
}

func (calcShape) Node(v any) (calcExpr, bool) {
	switch v.(type) {
	case *calcLit, *calcAdd:
		return v, true
	}
	return nil, false
}

func (calcShape) List(v any) ([]any, bool) {
	l, ok := v.([]any)
	return l, ok
}

func TestForeignTree(t *testing.T) {
	root := &calcAdd{
		left:  &calcAdd{left: &calcLit{val: 1}, right: &calcLit{val: 2}},
		right: &calcLit{val: 3},
	}

	sum := 0
	v := walk.NewVisitor[calcExpr](calcShape{})
	v.Handle("Lit", func(_ *walk.Visitor[calcExpr], n calcExpr) {
		sum += n.(*calcLit).val
	})
	v.Visit(root)

	if sum != 6 {
		t.Errorf("sum over foreign tree = %d; want 6", sum)
	}
}
