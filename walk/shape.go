// Package walk implements generic traversal and in-place rewriting of
// tree-shaped intermediate representations.
//
// The engine never sees a concrete node type. It is parameterized over
// a [Shape]: a capability that enumerates a node's named fields and
// decides which field values count as child nodes. Any tree
// representation implementing the shape contract can be walked,
// including ones defined outside this module; tree.Shape is the stock
// implementation for the built-in node type.
//
// Handlers are registered per kind tag. A node whose kind has no
// handler gets the generic fallback, which recurses into children (and,
// for [Transformer], keeps the node). A handler that wants the default
// recursion as part of its own work calls VisitChildren itself; the
// engine forces no pre- or post-order beyond that choice.
package walk

import "iter"

// Shape exposes a tree representation to the engine. Implementations
// must be pure queries: enumeration has no side effects, and the same
// node always yields the same fields in the same order.
type Shape[N any] interface {
	// Kind returns the node's type tag, the key handlers are dispatched on.
	Kind(n N) string
	// Fields enumerates n's named fields in declaration order.
	Fields(n N) iter.Seq2[string, any]
	// Node reports whether a field value counts as a child node.
	Node(v any) (N, bool)
	// List reports whether a field value is an ordered sequence.
	List(v any) ([]any, bool)
}

// MutableShape extends Shape with the write side used by [Transformer].
type MutableShape[N any] interface {
	Shape[N]

	// SetField stores v in an existing field of n.
	SetField(n N, name string, v any)
	// DeleteField removes the field from n entirely. The field must be
	// present; deleting an absent field is a contract violation.
	DeleteField(n N, name string)
	// Null returns the representation's explicit "no value" marker,
	// stored by the [SetNull] outcome. It must be distinguishable from
	// every node and from an absent field.
	Null() any
}
