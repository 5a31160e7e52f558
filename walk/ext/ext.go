// Package ext provides small ready-made passes built on the walk
// engine: predicates-to-deletions, whole-tree replacement, and node
// collection. They double as reference material for writing passes.
package ext

import "github.com/verdantlang/treewalk/walk"

// Filter removes every node below root for which pred returns true.
// Children of a removed node are not visited. The returned bool is
// false when root itself matched and was deleted.
func Filter[N any](shape walk.MutableShape[N], root N, pred func(N) bool) (N, bool) {
	t := walk.NewTransformer(shape)
	t.Fallback(func(t *walk.Transformer[N], n N) walk.Edit[N] {
		if pred(n) {
			return walk.Delete[N]()
		}
		t.VisitChildren(n)
		return walk.Keep(n)
	})
	return t.Rewrite(root)
}

// Map replaces every node with fn's result, children first, and returns
// the rewritten root. fn must return a node for every input; use Filter
// or a hand-built Transformer when nodes may disappear.
func Map[N any](shape walk.MutableShape[N], root N, fn func(N) N) N {
	t := walk.NewTransformer(shape)
	t.Fallback(func(t *walk.Transformer[N], n N) walk.Edit[N] {
		t.VisitChildren(n)
		return walk.Keep(fn(n))
	})
	out, _ := t.Rewrite(root)
	return out
}

// Collect returns every node of the given kind reachable from root, in
// traversal order. Matching nodes nested under other matches are
// included.
func Collect[N any](shape walk.Shape[N], root N, kind string) []N {
	var out []N
	v := walk.NewVisitor(shape)
	v.Handle(kind, func(v *walk.Visitor[N], n N) {
		out = append(out, n)
		v.VisitChildren(n)
	})
	v.Visit(root)
	return out
}

// Count returns the number of nodes reachable from root, root included.
func Count[N any](shape walk.Shape[N], root N) int {
	count := 0
	v := walk.NewVisitor(shape)
	v.Fallback(func(v *walk.Visitor[N], n N) {
		count++
		v.VisitChildren(n)
	})
	v.Visit(root)
	return count
}
