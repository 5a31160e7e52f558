package walk

// Rewriter is a mutating handler for one node kind. Its Edit decides
// what happens to the visited node's slot in the parent. A rewriter
// that wants the default recursion as part of its work calls
// t.VisitChildren(n) itself before (or after) building its result.
type Rewriter[N any] func(t *Transformer[N], n N) Edit[N]

// Transformer walks a tree and applies each handler's Edit to the
// node's slot in its parent: replace, delete, set the explicit null, or
// splice into the owning list. Nodes with no handler get the fallback,
// which rewrites children in place and keeps the node.
//
// Each node is visited at most once per traversal. Repeating a
// traversal over an already rewritten tree is legal but not guaranteed
// idempotent; that depends on the handlers.
//
// A Transformer value is not safe for concurrent use; distinct
// transformers over disjoint trees are independent.
type Transformer[N any] struct {
	shape    MutableShape[N]
	handlers map[string]Rewriter[N]
	fallback Rewriter[N]
}

// NewTransformer returns a transformer over the given shape. Until
// handlers are registered, Rewrite returns a structurally unchanged
// tree.
func NewTransformer[N any](shape MutableShape[N]) *Transformer[N] {
	return &Transformer[N]{
		shape:    shape,
		handlers: make(map[string]Rewriter[N]),
		fallback: func(t *Transformer[N], n N) Edit[N] {
			t.VisitChildren(n)
			return Keep(n)
		},
	}
}

// Handle registers r for nodes of the given kind, replacing any earlier
// registration. Registering a kind the producer never constructs is
// legal and simply unused.
func (t *Transformer[N]) Handle(kind string, r Rewriter[N]) {
	t.handlers[kind] = r
}

// Fallback replaces the generic fallback run for kinds with no handler.
func (t *Transformer[N]) Fallback(r Rewriter[N]) {
	t.fallback = r
}

// Visit dispatches n to the rewriter for its kind, or to the fallback,
// and returns the resulting Edit. The caller owns applying the edit to
// n's slot; Rewrite does that for the root.
func (t *Transformer[N]) Visit(n N) Edit[N] {
	if r, ok := t.handlers[t.shape.Kind(n)]; ok {
		return r(t, n)
	}
	return t.fallback(t, n)
}

// VisitChildren visits every child of n and applies the resulting edits
// to n's own fields in place. n itself is untouched; whatever edit n's
// own handler returns is its parent's concern.
//
// Sequence fields are rebuilt: the new sequence is assembled in full
// and stored wholesale, so handlers never observe a half-edited list.
// Single-child fields are deleted, set to the shape's null marker, or
// overwritten per the child's edit. Leaves and absent fields are left
// untouched. A splice outcome for a single-child field has no owning
// list to flatten into and panics.
func (t *Transformer[N]) VisitChildren(n N) {
	// Snapshot the enumeration first: applying a delete while ranging
	// over it would skip fields.
	type slot struct {
		name  string
		value any
	}
	var slots []slot
	for name, value := range t.shape.Fields(n) {
		slots = append(slots, slot{name, value})
	}

	for _, s := range slots {
		if list, ok := t.shape.List(s.value); ok {
			t.shape.SetField(n, s.name, t.rebuild(list))
			continue
		}
		c, ok := t.shape.Node(s.value)
		if !ok {
			continue
		}
		switch e := t.Visit(c); e.op {
		case OpKeep:
			t.shape.SetField(n, s.name, e.node)
		case OpDelete:
			t.shape.DeleteField(n, s.name)
		case OpNull:
			t.shape.SetField(n, s.name, t.shape.Null())
		case OpSplice:
			panic("walk: splice edit for single-child field " + s.name)
		}
	}
}

// rebuild assembles the replacement for one sequence field. Node
// elements are visited and their edits applied; non-node elements copy
// through unchanged.
func (t *Transformer[N]) rebuild(old []any) []any {
	rebuilt := make([]any, 0, len(old))
	for _, el := range old {
		c, ok := t.shape.Node(el)
		if !ok {
			rebuilt = append(rebuilt, el)
			continue
		}
		switch e := t.Visit(c); e.op {
		case OpKeep:
			rebuilt = append(rebuilt, e.node)
		case OpDelete:
			// Contributes nothing.
		case OpNull:
			rebuilt = append(rebuilt, t.shape.Null())
		case OpSplice:
			for _, m := range e.nodes {
				rebuilt = append(rebuilt, m)
			}
		}
	}
	return rebuilt
}

// Rewrite visits the tree rooted at root and interprets the root's own
// edit: the kept (possibly replacement) root and true, or the zero node
// and false when the root was deleted or set to null. The root has no
// owning list, so a splice outcome at the root panics.
func (t *Transformer[N]) Rewrite(root N) (N, bool) {
	switch e := t.Visit(root); e.op {
	case OpKeep:
		return e.node, true
	case OpSplice:
		panic("walk: splice edit at root")
	default:
		var zero N
		return zero, false
	}
}
